package postgres

import (
	"context"

	"github.com/sanjjiiev/Smart-Sheild/pkg/e"
)

// Bootstrap creates the three tables if they do not exist yet. Foreign keys
// set-null on delete so accident history survives registry cleanups.
func (p *Postgres) Bootstrap(ctx context.Context) error {
	const op = "storage.pg.Bootstrap"

	const query = `
CREATE TABLE IF NOT EXISTS vehicles (
    vehicle_no       VARCHAR(255) PRIMARY KEY,
    owner_name       VARCHAR(100),
    owner_email      VARCHAR(100),
    emergency_email1 VARCHAR(100),
    emergency_email2 VARCHAR(100)
);

CREATE TABLE IF NOT EXISTS ambulances (
    vehicle_no VARCHAR(100) PRIMARY KEY,
    email      VARCHAR(100),
    lat        DOUBLE PRECISION NOT NULL,
    lng        DOUBLE PRECISION NOT NULL
);

CREATE TABLE IF NOT EXISTS accidents (
    accident_id     SERIAL PRIMARY KEY,
    acc_vehicle_num VARCHAR(255) REFERENCES vehicles(vehicle_no) ON DELETE SET NULL,
    amb_vehicle_num VARCHAR(100) REFERENCES ambulances(vehicle_no) ON DELETE SET NULL,
    acc_lat         DOUBLE PRECISION NOT NULL,
    acc_lng         DOUBLE PRECISION NOT NULL,
    hospital_lat    DOUBLE PRECISION NOT NULL,
    hospital_lng    DOUBLE PRECISION NOT NULL,
    status          VARCHAR(100) NOT NULL DEFAULT 'pending',
    created_at      TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
`

	if _, err := p.Pool.Exec(ctx, query); err != nil {
		return e.WrapError(ctx, op, err)
	}
	return nil
}
