package accidents

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/sanjjiiev/Smart-Sheild/internal/domain"
	"github.com/sanjjiiev/Smart-Sheild/pkg/validator"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type AccidentQueries interface {
	ListPending(ctx context.Context) ([]*domain.AccidentRecord, error)
	PendingZones(ctx context.Context) ([]domain.AccidentZone, error)
	Submit(ctx context.Context, req domain.SubmitAccidentRequest) (*domain.AccidentRecord, error)
}

type Handler struct {
	logger    *slog.Logger
	Accidents AccidentQueries
}

func NewHandler(logger *slog.Logger, accidents AccidentQueries) *Handler {
	return &Handler{
		logger:    logger,
		Accidents: accidents,
	}
}

// AccidentZones serves the map view: pending accidents reduced to id plus
// coordinates.
func (h *Handler) AccidentZones(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("AccidentZones", slog.String("remote", r.RemoteAddr))

	zones, err := h.Accidents.PendingZones(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	if zones == nil {
		zones = []domain.AccidentZone{}
	}

	l.Info("zones listed", slog.Int("count", len(zones)))
	h.writeJSON(w, http.StatusOK, zones)
}

// AccidentList serves the full pending rows for the dashboard table.
func (h *Handler) AccidentList(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("AccidentList", slog.String("remote", r.RemoteAddr))

	records, err := h.Accidents.ListPending(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	if records == nil {
		records = []*domain.AccidentRecord{}
	}

	l.Info("accidents listed", slog.Int("count", len(records)))
	h.writeJSON(w, http.StatusOK, records)
}

func (h *Handler) AccidentSubmit(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("AccidentSubmit", slog.String("remote", r.RemoteAddr))

	var req domain.SubmitAccidentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	if err := validator.ValidateStruct(&req); err != nil {
		l.Warn("validation failed", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	record, err := h.Accidents.Submit(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("accident submitted",
		slog.Int64("accident_id", record.ID),
		slog.String("acc_vehicle_num", record.AccVehicleNo),
	)
	h.writeJSON(w, http.StatusOK, map[string]string{"message": "Accident reported successfully"})
}
