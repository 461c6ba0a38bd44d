package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/yerevantaxi/tycoon/internal/engine"
	"github.com/yerevantaxi/tycoon/internal/save"
	"github.com/yerevantaxi/tycoon/internal/tycoon"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testRouter(t *testing.T) (*chi.Mux, *engine.Engine) {
	t.Helper()
	clock := engine.NewFakeClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	eng := engine.New(context.Background(), discardLogger(), clock, save.NewMemoryStore())

	admin, err := NewAdminAuth("hunter2")
	if err != nil {
		t.Fatalf("admin auth: %v", err)
	}

	r := chi.NewRouter()
	addRoutes(r, discardLogger(), eng, NewBroker(), nil, admin)
	return r, eng
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any, out any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if out != nil {
		json.NewDecoder(w.Body).Decode(out)
	}
	return w
}

func TestGameStateFresh(t *testing.T) {
	r, _ := testRouter(t)

	var resp GameStateResponse
	w := doJSON(t, r, http.MethodGet, "/api/game/state", nil, &resp)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	if resp.Balance != 0 || resp.TotalEarnings != 0 {
		t.Errorf("fresh state has progress: %+v", resp)
	}
	if resp.Multiplier.Prestige != 1 || resp.Multiplier.Total != 1 {
		t.Errorf("fresh multiplier = %+v, want 1", resp.Multiplier)
	}
	if resp.ClickValue != 1 {
		t.Errorf("fresh click value = %v, want 1", resp.ClickValue)
	}
	if len(resp.Upgrades) != len(tycoon.ShopUpgradeIDs) {
		t.Errorf("upgrades = %d entries, want %d", len(resp.Upgrades), len(tycoon.ShopUpgradeIDs))
	}
	if resp.Milestone.NextTarget != 1000 {
		t.Errorf("first milestone target = %v, want 1000", resp.Milestone.NextTarget)
	}
}

func TestClickCreditsValue(t *testing.T) {
	r, _ := testRouter(t)

	var resp ClickResponse
	w := doJSON(t, r, http.MethodPost, "/api/game/click", nil, &resp)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if resp.Credited != 1 || resp.TotalClicks != 1 {
		t.Errorf("click = %+v, want credited 1, totalClicks 1", resp)
	}
}

func TestPurchaseFlow(t *testing.T) {
	r, eng := testRouter(t)

	// Broke: purchase is a no-op reported as conflict.
	var resp PurchaseResponse
	w := doJSON(t, r, http.MethodPost, "/api/game/purchase",
		PurchaseRequest{ID: "walking_map"}, &resp)
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", w.Code)
	}
	if resp.Bought != 0 {
		t.Errorf("bought = %d, want 0", resp.Bought)
	}

	eng.Credit(context.Background(), 10)

	w = doJSON(t, r, http.MethodPost, "/api/game/purchase",
		PurchaseRequest{ID: "walking_map"}, &resp)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if resp.Bought != 1 || resp.TotalSpent != 10 || resp.Level != 1 {
		t.Errorf("purchase = %+v", resp)
	}
	if resp.NextPrice != 11 {
		t.Errorf("next price = %v, want 11", resp.NextPrice)
	}
}

func TestPurchaseUnknownUpgrade(t *testing.T) {
	r, _ := testRouter(t)
	w := doJSON(t, r, http.MethodPost, "/api/game/purchase",
		PurchaseRequest{ID: "marshrutka"}, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestRebirthGate(t *testing.T) {
	r, eng := testRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/game/rebirth", nil, nil)
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409 below the gate, got %d", w.Code)
	}

	eng.Credit(context.Background(), 2_500_000)

	var resp RebirthResponse
	w = doJSON(t, r, http.MethodPost, "/api/game/rebirth", nil, &resp)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if resp.LicensesGranted != 2 || resp.GoldenLicenses != 2 {
		t.Errorf("rebirth = %+v, want 2 licenses", resp)
	}
}

func TestPrestigeDoubles(t *testing.T) {
	r, _ := testRouter(t)

	var resp PrestigeResponse
	w := doJSON(t, r, http.MethodPost, "/api/game/prestige", nil, &resp)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if resp.PrestigeMultiplier != 2 {
		t.Errorf("prestige = %v, want 2", resp.PrestigeMultiplier)
	}
}

func TestOfflineClaimOnce(t *testing.T) {
	clock := engine.NewFakeClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	store := save.NewMemoryStore()
	snap := tycoon.DefaultSnapshot(clock.Now().Unix() - 100)
	snap.UpgradeLevels["walking_map"] = 25 // 5 AMD/s
	store.Seed(snap)
	eng := engine.New(context.Background(), discardLogger(), clock, store)

	r := chi.NewRouter()
	addRoutes(r, discardLogger(), eng, NewBroker(), nil, nil)

	var resp OfflineClaimResponse
	w := doJSON(t, r, http.MethodPost, "/api/game/offline/claim", nil, &resp)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if resp.Earnings != 500 || resp.Seconds != 100 {
		t.Errorf("claim = %+v, want 500 over 100s", resp)
	}

	doJSON(t, r, http.MethodPost, "/api/game/offline/claim", nil, &resp)
	if resp.Earnings != 0 {
		t.Errorf("second claim credited %v", resp.Earnings)
	}
}

func TestAdminAuthFlow(t *testing.T) {
	r, _ := testRouter(t)

	// Guarded route without a session.
	w := doJSON(t, r, http.MethodPost, "/api/admin/boost",
		BoostRequest{Kind: "speed", DurationMs: 60000}, nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without session, got %d", w.Code)
	}

	// Wrong password.
	w = doJSON(t, r, http.MethodPost, "/api/admin/login",
		AdminLoginRequest{Password: "wrong"}, nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for bad password, got %d", w.Code)
	}

	// Correct login yields a session cookie.
	w = doJSON(t, r, http.MethodPost, "/api/admin/login",
		AdminLoginRequest{Password: "hunter2"}, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 login, got %d", w.Code)
	}
	cookies := w.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("login set no cookie")
	}

	body, _ := json.Marshal(BoostRequest{Kind: "rush", DurationMs: 30000})
	req := httptest.NewRequest(http.MethodPost, "/api/admin/boost", bytes.NewReader(body))
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 boost, got %d: %s", rec.Code, rec.Body.String())
	}

	var boost BoostResponse
	json.NewDecoder(rec.Body).Decode(&boost)
	if boost.Kind != "rush" || boost.RemainingMs != 30000 {
		t.Errorf("boost = %+v, want rush 30000ms", boost)
	}

	// The boost shows up in the player state.
	var state GameStateResponse
	doJSON(t, r, http.MethodGet, "/api/game/state", nil, &state)
	if state.RushHourLeftMs != 30000 {
		t.Errorf("rushHourLeftMs = %d, want 30000", state.RushHourLeftMs)
	}
	if state.Multiplier.RushFactor != 5 {
		t.Errorf("rush factor = %v, want 5", state.Multiplier.RushFactor)
	}
}

func TestBoostRejectsBadKind(t *testing.T) {
	r, _ := testRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/admin/login",
		AdminLoginRequest{Password: "hunter2"}, nil)
	cookies := w.Result().Cookies()

	body, _ := json.Marshal(BoostRequest{Kind: "turbo", DurationMs: 1000})
	req := httptest.NewRequest(http.MethodPost, "/api/admin/boost", bytes.NewReader(body))
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestHealthWithoutStorage(t *testing.T) {
	r, _ := testRouter(t)
	w := doJSON(t, r, http.MethodGet, "/healthz", nil, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestOpenAPIServes(t *testing.T) {
	r, _ := testRouter(t)

	var spec map[string]any
	w := doJSON(t, r, http.MethodGet, "/openapi.json", nil, &spec)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if _, ok := spec["openapi"]; !ok {
		t.Error("missing openapi version field")
	}
	paths, _ := spec["paths"].(map[string]any)
	for _, p := range []string{"/api/game/state", "/api/game/click", "/api/game/purchase"} {
		if _, ok := paths[p]; !ok {
			t.Errorf("spec missing path %s", p)
		}
	}
}
