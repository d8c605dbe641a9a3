package geo_test

import (
	"errors"
	"math"
	"testing"

	"github.com/sanjjiiev/Smart-Sheild/internal/domain"
	"github.com/sanjjiiev/Smart-Sheild/internal/geo"
	"github.com/sanjjiiev/Smart-Sheild/pkg/e"
)

func TestDistance_Symmetry(t *testing.T) {
	t.Parallel()

	pairs := [][2]domain.Coordinate{
		{{Lat: 55.75, Lng: 37.61}, {Lat: 59.93, Lng: 30.33}},
		{{Lat: -33.86, Lng: 151.2}, {Lat: 51.5, Lng: -0.12}},
		{{Lat: 0, Lng: 179.9}, {Lat: 0, Lng: -179.9}},
		{{Lat: 90, Lng: 0}, {Lat: -90, Lng: 0}},
	}

	for _, p := range pairs {
		ab := geo.Distance(p[0], p[1])
		ba := geo.Distance(p[1], p[0])
		if math.Abs(ab-ba) > 1e-9 {
			t.Fatalf("distance not symmetric: %v vs %v for %+v", ab, ba, p)
		}
		if ab < 0 {
			t.Fatalf("negative distance %v for %+v", ab, p)
		}
	}
}

func TestDistance_Identity(t *testing.T) {
	t.Parallel()

	c := domain.Coordinate{Lat: 13.0827, Lng: 80.2707}
	if d := geo.Distance(c, c); d > 1e-9 {
		t.Fatalf("expected zero distance, got %v", d)
	}
}

func TestDistance_KnownValues(t *testing.T) {
	t.Parallel()

	// One degree of longitude on the equator is ~111.19 km for R=6371.
	d := geo.Distance(domain.Coordinate{Lat: 0, Lng: 0}, domain.Coordinate{Lat: 0, Lng: 1})
	if math.Abs(d-111.19) > 0.5 {
		t.Fatalf("expected ~111.19 km, got %v", d)
	}

	d = geo.Distance(domain.Coordinate{Lat: 0, Lng: 0}, domain.Coordinate{Lat: 1, Lng: 0})
	if math.Abs(d-111.19) > 0.5 {
		t.Fatalf("expected ~111.19 km, got %v", d)
	}
}

func TestNearest_FirstAtMinimumWins(t *testing.T) {
	t.Parallel()

	origin := domain.Coordinate{Lat: 0, Lng: 0}
	candidates := []domain.Ambulance{
		{VehicleNo: "C1", Location: domain.Coordinate{Lat: 0, Lng: 5}},
		{VehicleNo: "C2", Location: domain.Coordinate{Lat: 0, Lng: 3}},
		{VehicleNo: "C3", Location: domain.Coordinate{Lat: 0, Lng: -3}}, // same distance as C2
	}

	got, err := geo.Nearest(origin, candidates)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.VehicleNo != "C2" {
		t.Fatalf("expected earliest candidate at minimum (C2), got %s", got.VehicleNo)
	}
}

func TestNearest_SingleCandidate(t *testing.T) {
	t.Parallel()

	origin := domain.Coordinate{Lat: 10, Lng: 10}
	got, err := geo.Nearest(origin, []domain.Hospital{
		{Name: "General", Location: domain.Coordinate{Lat: 20, Lng: 20}},
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.Name != "General" {
		t.Fatalf("unexpected pick: %+v", got)
	}
}

func TestNearest_Empty(t *testing.T) {
	t.Parallel()

	_, err := geo.Nearest(domain.Coordinate{}, []domain.Ambulance{})
	if !errors.Is(err, e.ErrNoCandidates) {
		t.Fatalf("expected ErrNoCandidates, got %v", err)
	}
}
