package hospitals

import (
	"encoding/json"
	"log/slog"
	"os"

	"github.com/sanjjiiev/Smart-Sheild/internal/domain"
	"github.com/sanjjiiev/Smart-Sheild/pkg/e"
)

// Directory is the static hospital list, loaded once at process start and
// read-only afterwards.
type Directory struct {
	list []domain.Hospital
}

type fileEntry struct {
	Name     string `json:"name"`
	Location *struct {
		Latitude  *float64 `json:"latitude"`
		Longitude *float64 `json:"longitude"`
	} `json:"location"`
}

// Load reads the hospital list from a JSON file. Entries with missing or
// out-of-range coordinates are skipped with a warning, not fatal to the load.
func Load(path string, logger *slog.Logger) (*Directory, error) {
	const op = "hospitals.Load"

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	var entries []fileEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, e.Wrap(op, err)
	}

	list := make([]domain.Hospital, 0, len(entries))
	for _, entry := range entries {
		if entry.Location == nil || entry.Location.Latitude == nil || entry.Location.Longitude == nil {
			logger.Warn("hospital entry missing coordinates, skipped",
				slog.String("op", op),
				slog.String("name", entry.Name),
			)
			continue
		}
		loc := domain.Coordinate{Lat: *entry.Location.Latitude, Lng: *entry.Location.Longitude}
		if !loc.Valid() {
			logger.Warn("hospital entry has out-of-range coordinates, skipped",
				slog.String("op", op),
				slog.String("name", entry.Name),
			)
			continue
		}
		list = append(list, domain.Hospital{Name: entry.Name, Location: loc})
	}

	logger.Info("hospital directory loaded",
		slog.String("path", path),
		slog.Int("hospitals", len(list)),
		slog.Int("skipped", len(entries)-len(list)),
	)

	return &Directory{list: list}, nil
}

// All returns the loaded hospitals. Callers must treat the slice as read-only.
func (d *Directory) All() []domain.Hospital {
	return d.list
}
