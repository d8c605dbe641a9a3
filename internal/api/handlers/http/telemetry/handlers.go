package telemetry

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// LatestReader exposes the most recent raw telemetry line.
type LatestReader interface {
	Latest() (string, bool)
}

type Handler struct {
	logger *slog.Logger
	Latest LatestReader
}

func NewHandler(logger *slog.Logger, latest LatestReader) *Handler {
	return &Handler{
		logger: logger,
		Latest: latest,
	}
}

// TelemetryLatest reports the last line seen on the wire, parsed or not.
func (h *Handler) TelemetryLatest(w http.ResponseWriter, r *http.Request) {
	line, ok := h.Latest.Latest()
	if !ok {
		line = "no data yet"
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(map[string]string{"message": line}); err != nil {
		h.logger.Error("json encode failed", slog.Any("error", err))
	}
}
