package ngo_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"github.com/hetpatoliya0206/ZeroWaste-Connect/internal/api/handlers/http/ngo"
	mock_ngo "github.com/hetpatoliya0206/ZeroWaste-Connect/internal/api/handlers/http/ngo/mocks"
	"github.com/hetpatoliya0206/ZeroWaste-Connect/internal/domain"
	"github.com/hetpatoliya0206/ZeroWaste-Connect/pkg/e"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

func addChiURLParam(r *http.Request, key, val string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, val)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func decodeJSON[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json response: %v, body=%s", err, rr.Body.String())
	}
	return out
}

func newHandler(t *testing.T) (*ngo.Handler, *mock_ngo.MockDonationCollector, *mock_ngo.MockCapacityResetter, *mock_ngo.MockDashboardGetter) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	donations := mock_ngo.NewMockDonationCollector(ctrl)
	accounts := mock_ngo.NewMockCapacityResetter(ctrl)
	stats := mock_ngo.NewMockDashboardGetter(ctrl)

	return ngo.NewHandler(newTestLogger(), donations, accounts, stats), donations, accounts, stats
}

func TestDonationCollect_OK(t *testing.T) {
	t.Parallel()

	h, donations, _, _ := newHandler(t)

	id := uuid.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/donations/"+id.String()+"/collect", bytes.NewBufferString(`{"ngo_name":"Helping Hands"}`))
	req.Header.Set("Content-Type", "application/json")
	req = addChiURLParam(req, "id", id.String())
	rr := httptest.NewRecorder()

	donations.EXPECT().
		Collect(gomock.Any(), id, "Helping Hands").
		Return(nil).
		Times(1)

	h.DonationCollect(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d, body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}

	got := decodeJSON[map[string]string](t, rr)
	if got["status"] != "collected" {
		t.Fatalf("expected status=collected got=%s", got["status"])
	}
}

func TestDonationCollect_InvalidID_400(t *testing.T) {
	t.Parallel()

	h, _, _, _ := newHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/donations/bad/collect", bytes.NewBufferString(`{"ngo_name":"Helping Hands"}`))
	req = addChiURLParam(req, "id", "not-a-uuid")
	rr := httptest.NewRecorder()

	h.DonationCollect(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d, body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
}

func TestDonationCollect_MissingName_400(t *testing.T) {
	t.Parallel()

	h, _, _, _ := newHandler(t)

	id := uuid.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/donations/"+id.String()+"/collect", bytes.NewBufferString(`{}`))
	req = addChiURLParam(req, "id", id.String())
	rr := httptest.NewRecorder()

	h.DonationCollect(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d, body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
}

func TestDonationCollect_WrongNGO_403(t *testing.T) {
	t.Parallel()

	h, donations, _, _ := newHandler(t)

	id := uuid.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/donations/"+id.String()+"/collect", bytes.NewBufferString(`{"ngo_name":"Other NGO"}`))
	req = addChiURLParam(req, "id", id.String())
	rr := httptest.NewRecorder()

	donations.EXPECT().
		Collect(gomock.Any(), id, "Other NGO").
		Return(e.Wrap("not the assignee", e.ErrUnauthorized)).
		Times(1)

	h.DonationCollect(rr, req)

	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected %d got %d, body=%s", http.StatusForbidden, rr.Code, rr.Body.String())
	}
}

func TestDonationCollect_AlreadyCollected_409(t *testing.T) {
	t.Parallel()

	h, donations, _, _ := newHandler(t)

	id := uuid.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/donations/"+id.String()+"/collect", bytes.NewBufferString(`{"ngo_name":"Helping Hands"}`))
	req = addChiURLParam(req, "id", id.String())
	rr := httptest.NewRecorder()

	donations.EXPECT().
		Collect(gomock.Any(), id, "Helping Hands").
		Return(e.Wrap("double collect", e.ErrAlreadyCollected)).
		Times(1)

	h.DonationCollect(rr, req)

	if rr.Code != http.StatusConflict {
		t.Fatalf("expected %d got %d, body=%s", http.StatusConflict, rr.Code, rr.Body.String())
	}
}

func TestCapacityReset_OK_204(t *testing.T) {
	t.Parallel()

	h, _, accounts, _ := newHandler(t)

	req := httptest.NewRequest(http.MethodPut, "/api/v1/ngos/Helping%20Hands/capacity", bytes.NewBufferString(`{"capacity":100}`))
	req = addChiURLParam(req, "name", "Helping Hands")
	rr := httptest.NewRecorder()

	accounts.EXPECT().
		ResetCapacity(gomock.Any(), "Helping Hands", 100).
		Return(nil).
		Times(1)

	h.CapacityReset(rr, req)

	if rr.Code != http.StatusNoContent {
		t.Fatalf("expected %d got %d, body=%s", http.StatusNoContent, rr.Code, rr.Body.String())
	}
	if rr.Body.Len() != 0 {
		t.Fatalf("expected empty body, got=%q", rr.Body.String())
	}
}

func TestCapacityReset_Negative_400(t *testing.T) {
	t.Parallel()

	h, _, _, _ := newHandler(t)

	req := httptest.NewRequest(http.MethodPut, "/api/v1/ngos/Helping%20Hands/capacity", bytes.NewBufferString(`{"capacity":-5}`))
	req = addChiURLParam(req, "name", "Helping Hands")
	rr := httptest.NewRecorder()

	h.CapacityReset(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d, body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
}

func TestCapacityReset_UnknownNGO_404(t *testing.T) {
	t.Parallel()

	h, _, accounts, _ := newHandler(t)

	req := httptest.NewRequest(http.MethodPut, "/api/v1/ngos/Nobody/capacity", bytes.NewBufferString(`{"capacity":100}`))
	req = addChiURLParam(req, "name", "Nobody")
	rr := httptest.NewRecorder()

	accounts.EXPECT().
		ResetCapacity(gomock.Any(), "Nobody", 100).
		Return(e.Wrap("ngo lookup", e.ErrNotFound)).
		Times(1)

	h.CapacityReset(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected %d got %d, body=%s", http.StatusNotFound, rr.Code, rr.Body.String())
	}
}

func TestDashboard_OK(t *testing.T) {
	t.Parallel()

	h, _, _, stats := newHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/ngos/Helping%20Hands/dashboard", nil)
	req = addChiURLParam(req, "name", "Helping Hands")
	rr := httptest.NewRecorder()

	want := &domain.NGODashboard{
		NGOName:          "Helping Hands",
		Capacity:         40,
		BaselineCapacity: 50,
		UtilizationPct:   20,
		TotalDonations:   3,
		TotalAssigned:    1,
		TotalCollected:   2,
	}

	stats.EXPECT().
		NGODashboard(gomock.Any(), "Helping Hands").
		Return(want, nil).
		Times(1)

	h.Dashboard(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d, body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}

	got := decodeJSON[domain.NGODashboard](t, rr)
	if got.NGOName != "Helping Hands" || got.UtilizationPct != 20 {
		t.Fatalf("unexpected dashboard: %+v", got)
	}
}

func TestDashboard_UnknownNGO_404(t *testing.T) {
	t.Parallel()

	h, _, _, stats := newHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/ngos/Nobody/dashboard", nil)
	req = addChiURLParam(req, "name", "Nobody")
	rr := httptest.NewRecorder()

	stats.EXPECT().
		NGODashboard(gomock.Any(), "Nobody").
		Return(nil, e.Wrap("ngo lookup", e.ErrNotFound)).
		Times(1)

	h.Dashboard(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected %d got %d, body=%s", http.StatusNotFound, rr.Code, rr.Body.String())
	}
}
