package route

import (
	"net/url"

	"github.com/sanjjiiev/Smart-Sheild/internal/domain"
)

const directionsBase = "https://www.google.com/maps/dir/"

// Link builds the externally-consumable routing URL sent with alerts:
// ambulance as origin, hospital as destination, accident site as waypoint.
// Turn-by-turn navigation is the mapping service's problem, not ours.
func Link(ambulance, hospital, accident domain.Coordinate) string {
	q := url.Values{}
	q.Set("api", "1")
	q.Set("origin", ambulance.String())
	q.Set("destination", hospital.String())
	q.Set("waypoints", accident.String())
	q.Set("travelmode", "driving")
	return directionsBase + "?" + q.Encode()
}
