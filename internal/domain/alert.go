package domain

import (
	"time"

	"github.com/google/uuid"
)

// AccidentAlert is the notification payload queued after an accident record
// has been persisted. Delivery is best effort.
type AccidentAlert struct {
	ReadingID    uuid.UUID `json:"reading_id"`
	AccidentID   int64     `json:"accident_id"`
	AccVehicleNo string    `json:"acc_vehicle_num"`
	AmbVehicleNo string    `json:"amb_vehicle_num"`
	RouteLink    string    `json:"route_link"`
	Recipients   []string  `json:"recipients"`
	CreatedAt    time.Time `json:"created_at"`
}
