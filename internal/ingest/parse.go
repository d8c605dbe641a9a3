package ingest

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sanjjiiev/Smart-Sheild/internal/domain"
)

// ErrParse marks a malformed telemetry line. The reading is discarded and the
// stream keeps going.
var ErrParse = errors.New("malformed telemetry line")

// Some sensor firmware echoes this framing prefix before the payload.
const framingPrefix = "Received: "

// ParseReading decodes one "<lat>,<lng>,<vehicleNo>" line into a validated
// reading. Exactly three comma fields after trimming; coordinates must be
// finite numbers within valid ranges.
func ParseReading(raw string) (domain.TelemetryReading, error) {
	line := strings.TrimSpace(raw)
	line = strings.TrimPrefix(line, framingPrefix)
	line = strings.TrimSpace(line)

	parts := strings.Split(line, ",")
	if len(parts) != 3 {
		return domain.TelemetryReading{}, fmt.Errorf("%w: expected 3 fields, got %d in %q", ErrParse, len(parts), line)
	}

	lat, err := parseFinite(parts[0])
	if err != nil {
		return domain.TelemetryReading{}, fmt.Errorf("%w: latitude: %v", ErrParse, err)
	}
	lng, err := parseFinite(parts[1])
	if err != nil {
		return domain.TelemetryReading{}, fmt.Errorf("%w: longitude: %v", ErrParse, err)
	}

	loc := domain.Coordinate{Lat: lat, Lng: lng}
	if !loc.Valid() {
		return domain.TelemetryReading{}, fmt.Errorf("%w: coordinate out of range: %s", ErrParse, loc)
	}

	vehicleNo := strings.TrimSpace(parts[2])
	if vehicleNo == "" {
		return domain.TelemetryReading{}, fmt.Errorf("%w: empty vehicle number", ErrParse)
	}

	return domain.TelemetryReading{
		ReadingID:  uuid.New(),
		Location:   loc,
		VehicleNo:  vehicleNo,
		ReceivedAt: time.Now().UTC(),
	}, nil
}

func parseFinite(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("non-finite value %q", s)
	}
	return v, nil
}
