package validator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// Plate format is permissive on purpose: the registry is the source of truth,
// this only rejects obvious garbage.
var vehicleNoRe = regexp.MustCompile(`^[A-Za-z0-9-]{2,32}$`)

func RegisterCustomValidations(validate *validator.Validate) {
	validate.RegisterValidation("lat", validateLat)
	validate.RegisterValidation("lng", validateLng)
	validate.RegisterValidation("vehicle_no", validateVehicleNo)
}

func validateLat(fl validator.FieldLevel) bool {
	lat := fl.Field().Float()
	return lat >= -90.0 && lat <= 90.0
}

func validateLng(fl validator.FieldLevel) bool {
	lng := fl.Field().Float()
	return lng >= -180.0 && lng <= 180.0
}

func validateVehicleNo(fl validator.FieldLevel) bool {
	return vehicleNoRe.MatchString(fl.Field().String())
}
