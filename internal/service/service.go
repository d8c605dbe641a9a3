package service

import (
	"context"
	"time"

	"github.com/sanjjiiev/Smart-Sheild/internal/domain"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go

// DispatchService drives one telemetry reading to completion.
type DispatchService interface {
	Dispatch(ctx context.Context, reading domain.TelemetryReading) error
}

// AccidentQueryService is the dashboard-facing read/write surface.
type AccidentQueryService interface {
	ListPending(ctx context.Context) ([]*domain.AccidentRecord, error)
	PendingZones(ctx context.Context) ([]domain.AccidentZone, error)
	Submit(ctx context.Context, req domain.SubmitAccidentRequest) (*domain.AccidentRecord, error)
}

// Collaborators behind narrow interfaces so the pipeline is testable without
// Postgres, Redis or a hospital file.

type AmbulanceDirectory interface {
	List(ctx context.Context) ([]domain.Ambulance, error)
}

type HospitalDirectory interface {
	All() []domain.Hospital
}

type ContactDirectory interface {
	FindContacts(ctx context.Context, vehicleNo string) (*domain.VehicleContacts, error)
}

type AccidentRepository interface {
	Create(ctx context.Context, record *domain.AccidentRecord) error
	ListPending(ctx context.Context) ([]*domain.AccidentRecord, error)
}

type AlertQueue interface {
	Enqueue(ctx context.Context, alert domain.AccidentAlert) error
}

type ZoneCache interface {
	Get(ctx context.Context) ([]domain.AccidentZone, error)
	Set(ctx context.Context, zones []domain.AccidentZone, ttl time.Duration) error
}

type Service struct {
	DispatchService      DispatchService
	AccidentQueryService AccidentQueryService
}

func NewService(dispatch DispatchService, query AccidentQueryService) *Service {
	return &Service{
		DispatchService:      dispatch,
		AccidentQueryService: query,
	}
}
