package postgres

import (
	"context"

	"github.com/sanjjiiev/Smart-Sheild/internal/domain"
)

type AccidentRepository interface {
	Create(ctx context.Context, record *domain.AccidentRecord) error
	ListPending(ctx context.Context) ([]*domain.AccidentRecord, error)
}

type AmbulanceRepository interface {
	List(ctx context.Context) ([]domain.Ambulance, error)
}

type VehicleRepository interface {
	FindContacts(ctx context.Context, vehicleNo string) (*domain.VehicleContacts, error)
}

func (p *Postgres) Accidents() AccidentRepository  { return p.AccidentRepo }
func (p *Postgres) Ambulances() AmbulanceRepository { return p.AmbulanceRepo }
func (p *Postgres) Vehicles() VehicleRepository     { return p.VehicleRepo }
