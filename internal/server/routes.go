package server

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/swaggest/swgui/v5emb"

	"github.com/yerevantaxi/tycoon/internal/engine"
)

func addRoutes(r chi.Router, logger *slog.Logger, eng *engine.Engine, broker *Broker, storage Pinger, admin *AdminAuth) {
	r.Get("/openapi.json", handleOpenAPI())
	r.Mount("/docs", v5emb.New("Taxi Tycoon API", "/openapi.json", "/docs"))
	r.Get("/healthz", handleHealth(logger, storage))
	r.Get("/ws/meter", handleMeter(logger, eng))

	// Player routes — the presentation layer drives the engine here.
	r.Route("/api/game", func(r chi.Router) {
		r.Get("/state", handleGameState(eng))
		r.Post("/click", handleClick(eng, broker))
		r.Post("/purchase", handlePurchase(eng))
		r.Post("/prestige", handlePrestige(eng))
		r.Post("/rebirth", handleRebirth(eng, broker))
		r.Post("/offline/claim", handleOfflineClaim(eng))
		r.Get("/events", handleEvents(broker))
	})

	// Admin routes — disabled unless ADMIN_PASSWORD is configured.
	if admin != nil {
		r.Route("/api/admin", func(r chi.Router) {
			r.Post("/login", handleAdminLogin(admin))
			r.Post("/logout", handleAdminLogout(admin))

			r.Group(func(r chi.Router) {
				r.Use(adminAuthMiddleware(admin))
				r.Post("/boost", handleBoost(eng))
				r.Post("/reset", handleAdminReset(eng))
				r.Get("/save", handleAdminSave(eng))
			})
		})
	}
}
