package geo

import (
	"math"

	"github.com/sanjjiiev/Smart-Sheild/internal/domain"
	"github.com/sanjjiiev/Smart-Sheild/pkg/e"
)

// Mean Earth radius in kilometers.
const earthRadiusKM = 6371.0

// Distance returns the great-circle distance between a and b in kilometers
// using the haversine formula on a spherical Earth.
func Distance(a, b domain.Coordinate) float64 {
	dLat := deg2rad(b.Lat - a.Lat)
	dLng := deg2rad(b.Lng - a.Lng)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(deg2rad(a.Lat))*math.Cos(deg2rad(b.Lat))*
			math.Sin(dLng/2)*math.Sin(dLng/2)

	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKM * c
}

func deg2rad(deg float64) float64 {
	return deg * math.Pi / 180.0
}

type Locatable interface {
	Coord() domain.Coordinate
}

// Nearest returns the candidate closest to origin. Only a strictly smaller
// distance replaces the current pick, so on ties the earliest-scanned
// candidate wins. Empty input yields e.ErrNoCandidates.
func Nearest[T Locatable](origin domain.Coordinate, candidates []T) (T, error) {
	var zero T
	if len(candidates) == 0 {
		return zero, e.ErrNoCandidates
	}

	best := candidates[0]
	bestDist := Distance(origin, best.Coord())
	for _, c := range candidates[1:] {
		if d := Distance(origin, c.Coord()); d < bestDist {
			best = c
			bestDist = d
		}
	}
	return best, nil
}
