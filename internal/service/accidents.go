package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/sanjjiiev/Smart-Sheild/internal/domain"
	"github.com/sanjjiiev/Smart-Sheild/pkg/e"
)

type accidentQueryService struct {
	accidents AccidentRepository
	zones     ZoneCache
	logger    *slog.Logger
	zoneTTL   time.Duration
}

func NewAccidentQueryService(
	accidents AccidentRepository,
	zones ZoneCache,
	logger *slog.Logger,
	zoneTTL time.Duration,
) AccidentQueryService {
	if zoneTTL <= 0 {
		zoneTTL = 10 * time.Second
	}
	return &accidentQueryService{
		accidents: accidents,
		zones:     zones,
		logger:    logger,
		zoneTTL:   zoneTTL,
	}
}

func (s *accidentQueryService) ListPending(ctx context.Context) ([]*domain.AccidentRecord, error) {
	return s.accidents.ListPending(ctx)
}

// PendingZones serves the map view through the short-TTL cache. Cache errors
// fall back to the store; a stale map beats a broken one.
func (s *accidentQueryService) PendingZones(ctx context.Context) ([]domain.AccidentZone, error) {
	const op = "service.PendingZones"

	if s.zones != nil {
		cached, err := s.zones.Get(ctx)
		if err != nil {
			s.logger.Warn("zone cache read failed", slog.String("op", op), slog.Any("error", err))
		} else if cached != nil {
			return cached, nil
		}
	}

	records, err := s.accidents.ListPending(ctx)
	if err != nil {
		return nil, err
	}

	zones := make([]domain.AccidentZone, 0, len(records))
	for _, rec := range records {
		zones = append(zones, domain.AccidentZone{
			AccidentID: rec.ID,
			Latitude:   rec.AccLocation.Lat,
			Longitude:  rec.AccLocation.Lng,
		})
	}

	if s.zones != nil {
		if err := s.zones.Set(ctx, zones, s.zoneTTL); err != nil {
			s.logger.Warn("zone cache write failed", slog.String("op", op), slog.Any("error", err))
		}
	}

	return zones, nil
}

// Submit records an accident reported over HTTP. The server assigns id,
// status and timestamp; locations arrive as "lat,lng" strings.
func (s *accidentQueryService) Submit(ctx context.Context, req domain.SubmitAccidentRequest) (*domain.AccidentRecord, error) {
	const op = "service.SubmitAccident"

	accLoc, err := domain.ParseCoordinate(req.AccLoc)
	if err != nil {
		return nil, fmt.Errorf("%s: acc_loc: %w", op, e.ErrInvalidCoordinates)
	}
	hospitalLoc, err := domain.ParseCoordinate(req.HospitalLoc)
	if err != nil {
		return nil, fmt.Errorf("%s: hospital_loc: %w", op, e.ErrInvalidCoordinates)
	}

	record := &domain.AccidentRecord{
		AccVehicleNo: req.AccVehicleNum,
		AmbVehicleNo: req.AmbVehicleNum,
		AccLocation:  accLoc,
		HospitalLoc:  hospitalLoc,
		Status:       domain.AccidentPending,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.accidents.Create(ctx, record); err != nil {
		return nil, err
	}

	s.logger.Info("accident report saved",
		slog.Int64("accident_id", record.ID),
		slog.String("acc_vehicle_num", record.AccVehicleNo),
	)
	return record, nil
}
