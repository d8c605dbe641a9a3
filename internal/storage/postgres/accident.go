package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sanjjiiev/Smart-Sheild/internal/domain"
	"github.com/sanjjiiev/Smart-Sheild/pkg/e"
)

type AccidentRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewAccidentRepo(pool *pgxpool.Pool, logger *slog.Logger) *AccidentRepo {
	return &AccidentRepo{pool: pool, logger: logger}
}

// Create inserts the record and fills in the store-assigned id. The id
// sequence is owned by Postgres; callers never pick ids.
func (p *AccidentRepo) Create(ctx context.Context, record *domain.AccidentRecord) error {
	const op = "postgres.Accident.Create"

	if record == nil {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}
	if !record.AccLocation.Valid() || !record.HospitalLoc.Valid() {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidCoordinates)
	}
	if record.Status == "" {
		record.Status = domain.AccidentPending
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}

	const query = `
		INSERT INTO accidents (acc_vehicle_num, amb_vehicle_num, acc_lat, acc_lng, hospital_lat, hospital_lng, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING accident_id
	`

	err := p.pool.QueryRow(ctx, query,
		record.AccVehicleNo,
		record.AmbVehicleNo,
		record.AccLocation.Lat,
		record.AccLocation.Lng,
		record.HospitalLoc.Lat,
		record.HospitalLoc.Lng,
		record.Status,
		record.CreatedAt,
	).Scan(&record.ID)
	if err != nil {
		p.logger.Error("db insert failed",
			slog.String("op", op),
			slog.Any("error", err),
			slog.String("acc_vehicle_num", record.AccVehicleNo),
		)
		return e.WrapError(ctx, op, err)
	}

	return nil
}

// ListPending returns pending records in insertion order.
func (p *AccidentRepo) ListPending(ctx context.Context) ([]*domain.AccidentRecord, error) {
	const op = "postgres.Accident.ListPending"

	const query = `
		SELECT accident_id, acc_vehicle_num, amb_vehicle_num, acc_lat, acc_lng, hospital_lat, hospital_lng, status, created_at
		FROM accidents
		WHERE status = 'pending'
		ORDER BY accident_id
	`

	rows, err := p.pool.Query(ctx, query)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	var records []*domain.AccidentRecord
	for rows.Next() {
		var rec domain.AccidentRecord
		if err := rows.Scan(
			&rec.ID,
			&rec.AccVehicleNo,
			&rec.AmbVehicleNo,
			&rec.AccLocation.Lat,
			&rec.AccLocation.Lng,
			&rec.HospitalLoc.Lat,
			&rec.HospitalLoc.Lng,
			&rec.Status,
			&rec.CreatedAt,
		); err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		records = append(records, &rec)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return records, nil
}
