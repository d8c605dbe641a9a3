package domain

import (
	"time"

	"github.com/google/uuid"
)

// TelemetryReading is one decoded sensor report. ReadingID exists only for
// log/alert correlation; readings themselves are never persisted.
type TelemetryReading struct {
	ReadingID  uuid.UUID  `json:"reading_id"`
	Location   Coordinate `json:"location"`
	VehicleNo  string     `json:"vehicle_no"`
	ReceivedAt time.Time  `json:"received_at"`
}
