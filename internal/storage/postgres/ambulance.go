package postgres

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sanjjiiev/Smart-Sheild/internal/domain"
	"github.com/sanjjiiev/Smart-Sheild/pkg/e"
)

type AmbulanceRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewAmbulanceRepo(pool *pgxpool.Pool, logger *slog.Logger) *AmbulanceRepo {
	return &AmbulanceRepo{pool: pool, logger: logger}
}

// List returns a full snapshot of the registry. Dispatch takes a fresh
// snapshot per reading, so fleet changes apply on the next line.
func (p *AmbulanceRepo) List(ctx context.Context) ([]domain.Ambulance, error) {
	const op = "postgres.Ambulance.List"

	const query = `
		SELECT vehicle_no, COALESCE(email, ''), lat, lng
		FROM ambulances
	`

	rows, err := p.pool.Query(ctx, query)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	ambulances := make([]domain.Ambulance, 0, 16)
	for rows.Next() {
		var a domain.Ambulance
		if err := rows.Scan(&a.VehicleNo, &a.Email, &a.Location.Lat, &a.Location.Lng); err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		ambulances = append(ambulances, a)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return ambulances, nil
}
