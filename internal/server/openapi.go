package server

import (
	"encoding/json"
	"net/http"

	openapi "github.com/swaggest/openapi-go"
	"github.com/swaggest/openapi-go/openapi3"
)

// ErrorResponse is returned for all error responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

func newOpenAPISpec() *openapi3.Spec {
	r := openapi3.NewReflector()
	r.Spec.Info.Title = "Taxi Tycoon API"
	r.Spec.Info.Version = "0.1.0"
	r.Spec.Info.WithDescription("Backend API for the taxi idle game economy engine.")

	// GET /healthz
	getHealthz, _ := r.NewOperationContext(http.MethodGet, "/healthz")
	getHealthz.SetSummary("Health check")
	getHealthz.SetDescription("Returns the health status of the save storage.")
	getHealthz.AddRespStructure(HealthResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	getHealthz.AddRespStructure(HealthResponse{}, openapi.WithHTTPStatus(http.StatusServiceUnavailable))
	_ = r.AddOperation(getHealthz)

	// GET /api/game/state
	getState, _ := r.NewOperationContext(http.MethodGet, "/api/game/state")
	getState.SetSummary("Get game state")
	getState.SetDescription("Returns balance, rates, multiplier breakdown, milestone progress, boosts and upgrades.")
	getState.AddRespStructure(GameStateResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(getState)

	// POST /api/game/click
	postClick, _ := r.NewOperationContext(http.MethodPost, "/api/game/click")
	postClick.SetSummary("Taxi click")
	postClick.SetDescription("Applies one click: credits the click value and reports any fresh achievement unlock.")
	postClick.AddRespStructure(ClickResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(postClick)

	// POST /api/game/purchase
	postPurchase, _ := r.NewOperationContext(http.MethodPost, "/api/game/purchase")
	postPurchase.SetSummary("Buy upgrade levels")
	postPurchase.SetDescription("Buys up to count levels, stopping at the first unaffordable unit. Zero bought returns 409.")
	postPurchase.AddReqStructure(PurchaseRequest{})
	postPurchase.AddRespStructure(PurchaseResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postPurchase.AddRespStructure(PurchaseResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
	postPurchase.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(postPurchase)

	// POST /api/game/prestige
	postPrestige, _ := r.NewOperationContext(http.MethodPost, "/api/game/prestige")
	postPrestige.SetSummary("Prestige reset")
	postPrestige.SetDescription("Wipes progress and doubles the permanent prestige multiplier. Irreversible.")
	postPrestige.AddRespStructure(PrestigeResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(postPrestige)

	// POST /api/game/rebirth
	postRebirth, _ := r.NewOperationContext(http.MethodPost, "/api/game/rebirth")
	postRebirth.SetSummary("Rebirth")
	postRebirth.SetDescription("Grants one Golden License per 1M lifetime earnings, then wipes progress. 409 below the gate.")
	postRebirth.AddRespStructure(RebirthResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postRebirth.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
	_ = r.AddOperation(postRebirth)

	// POST /api/game/offline/claim
	postOffline, _ := r.NewOperationContext(http.MethodPost, "/api/game/offline/claim")
	postOffline.SetSummary("Claim offline earnings")
	postOffline.SetDescription("Credits the offline catch-up computed at boot. One-shot; later calls return zero.")
	postOffline.AddRespStructure(OfflineClaimResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(postOffline)

	// GET /api/game/events
	getEvents, _ := r.NewOperationContext(http.MethodGet, "/api/game/events")
	getEvents.SetSummary("SSE event stream")
	getEvents.SetDescription("Server-Sent Events stream of achievement, milestone and rebirth events.")
	getEvents.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusOK),
		openapi.WithContentType("text/event-stream"))
	_ = r.AddOperation(getEvents)

	// GET /ws/meter
	getMeter, _ := r.NewOperationContext(http.MethodGet, "/ws/meter")
	getMeter.SetSummary("Live balance meter")
	getMeter.SetDescription("Upgrades to a WebSocket pushing one balance/income frame per second.")
	getMeter.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusSwitchingProtocols),
		openapi.WithContentType("text/plain"))
	_ = r.AddOperation(getMeter)

	// POST /api/admin/boost
	postBoost, _ := r.NewOperationContext(http.MethodPost, "/api/admin/boost")
	postBoost.SetSummary("Grant a boost")
	postBoost.SetDescription("Arms a time-boxed speed (2x) or rush (5x) boost. Requires admin session.")
	postBoost.AddReqStructure(BoostRequest{})
	postBoost.AddRespStructure(BoostResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postBoost.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	_ = r.AddOperation(postBoost)

	return r.Spec
}

func handleOpenAPI() http.HandlerFunc {
	spec := newOpenAPISpec()
	data, _ := json.Marshal(spec)

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Write(data)
	}
}
