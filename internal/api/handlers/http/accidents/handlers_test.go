package accidents_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"log/slog"

	"github.com/golang/mock/gomock"

	"github.com/sanjjiiev/Smart-Sheild/internal/api/handlers/http/accidents"
	mock_accidents "github.com/sanjjiiev/Smart-Sheild/internal/api/handlers/http/accidents/mocks"
	"github.com/sanjjiiev/Smart-Sheild/internal/domain"
	"github.com/sanjjiiev/Smart-Sheild/pkg/e"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

func decodeJSON[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json response: %v, body=%s", err, rr.Body.String())
	}
	return out
}

func TestAccidentZones_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_accidents.NewMockAccidentQueries(ctrl)
	h := accidents.NewHandler(newTestLogger(), svc)

	svc.EXPECT().
		PendingZones(gomock.Any()).
		Return([]domain.AccidentZone{
			{AccidentID: 1, Latitude: 12.97, Longitude: 77.59},
			{AccidentID: 2, Latitude: 13.00, Longitude: 77.60},
		}, nil).
		Times(1)

	req := httptest.NewRequest(http.MethodGet, "/accidents", nil)
	rr := httptest.NewRecorder()

	h.AccidentZones(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d, body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}

	got := decodeJSON[[]domain.AccidentZone](t, rr)
	if len(got) != 2 || got[0].AccidentID != 1 || got[1].Longitude != 77.60 {
		t.Fatalf("unexpected zones: %+v", got)
	}
}

func TestAccidentZones_EmptyIsJSONArray(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_accidents.NewMockAccidentQueries(ctrl)
	h := accidents.NewHandler(newTestLogger(), svc)

	svc.EXPECT().
		PendingZones(gomock.Any()).
		Return(nil, nil).
		Times(1)

	rr := httptest.NewRecorder()
	h.AccidentZones(rr, httptest.NewRequest(http.MethodGet, "/accidents", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d", http.StatusOK, rr.Code)
	}

	got := decodeJSON[[]domain.AccidentZone](t, rr)
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty array, got %+v, body=%s", got, rr.Body.String())
	}
}

func TestAccidentZones_ServiceError_500(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_accidents.NewMockAccidentQueries(ctrl)
	h := accidents.NewHandler(newTestLogger(), svc)

	svc.EXPECT().
		PendingZones(gomock.Any()).
		Return(nil, errors.New("db down")).
		Times(1)

	rr := httptest.NewRecorder()
	h.AccidentZones(rr, httptest.NewRequest(http.MethodGet, "/accidents", nil))

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected %d got %d, body=%s", http.StatusInternalServerError, rr.Code, rr.Body.String())
	}
}

func TestAccidentList_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_accidents.NewMockAccidentQueries(ctrl)
	h := accidents.NewHandler(newTestLogger(), svc)

	svc.EXPECT().
		ListPending(gomock.Any()).
		Return([]*domain.AccidentRecord{
			{
				ID:           7,
				AccVehicleNo: "TN01AB1234",
				AmbVehicleNo: "AMB-01",
				AccLocation:  domain.Coordinate{Lat: 12.97, Lng: 77.59},
				HospitalLoc:  domain.Coordinate{Lat: 13.00, Lng: 77.60},
				Status:       domain.AccidentPending,
			},
		}, nil).
		Times(1)

	rr := httptest.NewRecorder()
	h.AccidentList(rr, httptest.NewRequest(http.MethodGet, "/api/accidents", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d, body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}

	got := decodeJSON[[]*domain.AccidentRecord](t, rr)
	if len(got) != 1 || got[0].ID != 7 || got[0].Status != domain.AccidentPending {
		t.Fatalf("unexpected records: %+v", got)
	}
}

func TestAccidentSubmit_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_accidents.NewMockAccidentQueries(ctrl)
	h := accidents.NewHandler(newTestLogger(), svc)

	wantReq := domain.SubmitAccidentRequest{
		AccVehicleNum: "TN01AB1234",
		AmbVehicleNum: "AMB-01",
		AccLoc:        "12.97,77.59",
		HospitalLoc:   "13.00,77.60",
	}

	svc.EXPECT().
		Submit(gomock.Any(), wantReq).
		Return(&domain.AccidentRecord{ID: 42, AccVehicleNo: "TN01AB1234"}, nil).
		Times(1)

	body := `{"acc_vehicle_num":"TN01AB1234","amb_vehicle_num":"AMB-01","acc_loc":"12.97,77.59","hospital_loc":"13.00,77.60"}`
	req := httptest.NewRequest(http.MethodPost, "/submit-accident", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()

	h.AccidentSubmit(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d, body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}

	got := decodeJSON[map[string]string](t, rr)
	if got["message"] == "" {
		t.Fatalf("expected a message, body=%s", rr.Body.String())
	}
}

func TestAccidentSubmit_InvalidJSON_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := accidents.NewHandler(newTestLogger(), mock_accidents.NewMockAccidentQueries(ctrl))

	req := httptest.NewRequest(http.MethodPost, "/submit-accident", bytes.NewBufferString("{bad json"))
	rr := httptest.NewRecorder()

	h.AccidentSubmit(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d, body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
}

func TestAccidentSubmit_MissingFields_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := accidents.NewHandler(newTestLogger(), mock_accidents.NewMockAccidentQueries(ctrl))

	body := `{"acc_vehicle_num":"TN01AB1234"}`
	req := httptest.NewRequest(http.MethodPost, "/submit-accident", bytes.NewBufferString(body))
	rr := httptest.NewRecorder()

	h.AccidentSubmit(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d, body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
}

func TestAccidentSubmit_BadCoordinates_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_accidents.NewMockAccidentQueries(ctrl)
	h := accidents.NewHandler(newTestLogger(), svc)

	svc.EXPECT().
		Submit(gomock.Any(), gomock.Any()).
		Return(nil, e.Wrap("service.Submit", e.ErrInvalidCoordinates)).
		Times(1)

	body := `{"acc_vehicle_num":"TN01AB1234","amb_vehicle_num":"AMB-01","acc_loc":"not-a-coord","hospital_loc":"13.00,77.60"}`
	req := httptest.NewRequest(http.MethodPost, "/submit-accident", bytes.NewBufferString(body))
	rr := httptest.NewRecorder()

	h.AccidentSubmit(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d, body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
}

func TestAccidentSubmit_StoreError_500(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_accidents.NewMockAccidentQueries(ctrl)
	h := accidents.NewHandler(newTestLogger(), svc)

	svc.EXPECT().
		Submit(gomock.Any(), gomock.Any()).
		Return(nil, e.Wrap("service.Submit", e.ErrPersistence)).
		Times(1)

	body := `{"acc_vehicle_num":"TN01AB1234","amb_vehicle_num":"AMB-01","acc_loc":"12.97,77.59","hospital_loc":"13.00,77.60"}`
	req := httptest.NewRequest(http.MethodPost, "/submit-accident", bytes.NewBufferString(body))
	rr := httptest.NewRecorder()

	h.AccidentSubmit(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected %d got %d, body=%s", http.StatusInternalServerError, rr.Code, rr.Body.String())
	}
}
