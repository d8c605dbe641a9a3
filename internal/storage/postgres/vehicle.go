package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sanjjiiev/Smart-Sheild/internal/domain"
	"github.com/sanjjiiev/Smart-Sheild/pkg/e"
)

type VehicleRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewVehicleRepo(pool *pgxpool.Pool, logger *slog.Logger) *VehicleRepo {
	return &VehicleRepo{pool: pool, logger: logger}
}

// FindContacts looks up the registered owner and emergency emails for a
// vehicle. Unregistered vehicles yield e.ErrNotFound.
func (p *VehicleRepo) FindContacts(ctx context.Context, vehicleNo string) (*domain.VehicleContacts, error) {
	const op = "postgres.Vehicle.FindContacts"

	if vehicleNo == "" {
		return nil, fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}

	const query = `
		SELECT vehicle_no, COALESCE(owner_name, ''), COALESCE(owner_email, ''),
		       COALESCE(emergency_email1, ''), COALESCE(emergency_email2, '')
		FROM vehicles
		WHERE vehicle_no = $1
	`

	var (
		contacts domain.VehicleContacts
		em1, em2 string
	)
	err := p.pool.QueryRow(ctx, query, vehicleNo).Scan(
		&contacts.VehicleNo,
		&contacts.OwnerName,
		&contacts.OwnerEmail,
		&em1,
		&em2,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db queryrow scan failed",
			slog.String("op", op),
			slog.Any("error", err),
			slog.String("vehicle_no", vehicleNo),
		)
		return nil, e.WrapError(ctx, op, err)
	}

	if em1 != "" {
		contacts.EmergencyEmails = append(contacts.EmergencyEmails, em1)
	}
	if em2 != "" {
		contacts.EmergencyEmails = append(contacts.EmergencyEmails, em2)
	}

	return &contacts, nil
}
