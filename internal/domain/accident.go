package domain

import "time"

type AccidentStatus string

const (
	AccidentPending  AccidentStatus = "pending"
	AccidentResolved AccidentStatus = "resolved"
)

// AccidentRecord is one dispatch decision. The id is assigned by the store on
// insert; Status starts at pending and is only mutated by the external
// resolution workflow.
type AccidentRecord struct {
	ID           int64          `json:"accident_id"`
	AccVehicleNo string         `json:"acc_vehicle_num"`
	AmbVehicleNo string         `json:"amb_vehicle_num"`
	AccLocation  Coordinate     `json:"acc_loc"`
	HospitalLoc  Coordinate     `json:"hospital_loc"`
	Status       AccidentStatus `json:"status"`
	CreatedAt    time.Time      `json:"created_at"`
}

// AccidentZone is the map-view projection of a pending accident.
type AccidentZone struct {
	AccidentID int64   `json:"accident_id"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
}

type SubmitAccidentRequest struct {
	AccVehicleNum string `json:"acc_vehicle_num" validate:"required,vehicle_no"`
	AmbVehicleNum string `json:"amb_vehicle_num" validate:"required,vehicle_no"`
	AccLoc        string `json:"acc_loc" validate:"required"`
	HospitalLoc   string `json:"hospital_loc" validate:"required"`
}
