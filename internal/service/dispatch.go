package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/sanjjiiev/Smart-Sheild/internal/domain"
	"github.com/sanjjiiev/Smart-Sheild/internal/geo"
	"github.com/sanjjiiev/Smart-Sheild/internal/route"
	"github.com/sanjjiiev/Smart-Sheild/pkg/e"
)

type dispatchService struct {
	ambulances  AmbulanceDirectory
	hospitals   HospitalDirectory
	accidents   AccidentRepository
	vehicles    ContactDirectory
	alerts      AlertQueue
	logger      *slog.Logger
	stepTimeout time.Duration
}

func NewDispatchService(
	ambulances AmbulanceDirectory,
	hospitals HospitalDirectory,
	accidents AccidentRepository,
	vehicles ContactDirectory,
	alerts AlertQueue,
	logger *slog.Logger,
	stepTimeout time.Duration,
) DispatchService {
	if stepTimeout <= 0 {
		stepTimeout = 5 * time.Second
	}
	return &dispatchService{
		ambulances:  ambulances,
		hospitals:   hospitals,
		accidents:   accidents,
		vehicles:    vehicles,
		alerts:      alerts,
		logger:      logger,
		stepTimeout: stepTimeout,
	}
}

// Dispatch runs the pipeline for one reading: nearest ambulance, nearest
// hospital from the same origin, route link, accident insert, contact lookup,
// alert enqueue. Any failure before the insert aborts with nothing recorded;
// any failure after it leaves the record in place.
func (s *dispatchService) Dispatch(ctx context.Context, reading domain.TelemetryReading) error {
	const op = "service.Dispatch"

	log := s.logger.With(
		slog.String("reading_id", reading.ReadingID.String()),
		slog.String("vehicle_no", reading.VehicleNo),
	)
	log.Info("dispatch started",
		slog.Float64("lat", reading.Location.Lat),
		slog.Float64("lng", reading.Location.Lng),
	)

	if !reading.Location.Valid() {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidCoordinates)
	}

	fleet, err := s.listAmbulances(ctx)
	if err != nil {
		log.Warn("ambulance registry unavailable, dispatch aborted", slog.Any("error", err))
		return fmt.Errorf("%s: %w", op, e.ErrDirectoryUnavailable)
	}

	ambulance, err := geo.Nearest(reading.Location, fleet)
	if err != nil {
		log.Warn("no ambulance available, dispatch aborted")
		return fmt.Errorf("%s: ambulance: %w", op, err)
	}

	hospital, err := geo.Nearest(reading.Location, s.hospitals.All())
	if err != nil {
		log.Warn("no hospital available, dispatch aborted")
		return fmt.Errorf("%s: hospital: %w", op, err)
	}

	link := route.Link(ambulance.Location, hospital.Location, reading.Location)

	record := &domain.AccidentRecord{
		AccVehicleNo: reading.VehicleNo,
		AmbVehicleNo: ambulance.VehicleNo,
		AccLocation:  reading.Location,
		HospitalLoc:  hospital.Location,
		Status:       domain.AccidentPending,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.createRecord(ctx, record); err != nil {
		// No record means no alert either: never notify an unrecorded accident.
		log.Error("accident insert failed, dispatch aborted", slog.Any("error", err))
		return fmt.Errorf("%s: %w", op, err)
	}

	log.Info("accident recorded",
		slog.Int64("accident_id", record.ID),
		slog.String("amb_vehicle_num", ambulance.VehicleNo),
		slog.String("hospital", hospital.Name),
	)

	contacts, err := s.findContacts(ctx, reading.VehicleNo)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			// Unregistered vehicle. The record already exists, nothing left to do.
			log.Warn("no owner information found, alert skipped")
			return nil
		}
		log.Error("contact lookup failed, alert skipped", slog.Any("error", err))
		return fmt.Errorf("%s: %w", op, err)
	}

	recipients := contacts.Recipients()
	if len(recipients) == 0 {
		log.Warn("owner record has no emails, alert skipped")
		return nil
	}

	alert := domain.AccidentAlert{
		ReadingID:    reading.ReadingID,
		AccidentID:   record.ID,
		AccVehicleNo: record.AccVehicleNo,
		AmbVehicleNo: record.AmbVehicleNo,
		RouteLink:    link,
		Recipients:   recipients,
		CreatedAt:    record.CreatedAt,
	}
	if err := s.enqueueAlert(ctx, alert); err != nil {
		// Best effort: the record stays, the alert is lost.
		log.Error("alert enqueue failed", slog.Any("error", err))
		return nil
	}

	log.Info("alert enqueued", slog.Int("recipients", len(recipients)))
	return nil
}

func (s *dispatchService) listAmbulances(ctx context.Context) ([]domain.Ambulance, error) {
	ctx, cancel := context.WithTimeout(ctx, s.stepTimeout)
	defer cancel()
	return s.ambulances.List(ctx)
}

func (s *dispatchService) createRecord(ctx context.Context, record *domain.AccidentRecord) error {
	ctx, cancel := context.WithTimeout(ctx, s.stepTimeout)
	defer cancel()
	return s.accidents.Create(ctx, record)
}

func (s *dispatchService) findContacts(ctx context.Context, vehicleNo string) (*domain.VehicleContacts, error) {
	ctx, cancel := context.WithTimeout(ctx, s.stepTimeout)
	defer cancel()
	return s.vehicles.FindContacts(ctx, vehicleNo)
}

func (s *dispatchService) enqueueAlert(ctx context.Context, alert domain.AccidentAlert) error {
	ctx, cancel := context.WithTimeout(ctx, s.stepTimeout)
	defer cancel()
	return s.alerts.Enqueue(ctx, alert)
}
