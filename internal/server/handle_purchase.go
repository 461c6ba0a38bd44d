package server

import (
	"errors"
	"net/http"

	"github.com/yerevantaxi/tycoon/internal/engine"
)

type PurchaseRequest struct {
	ID    string `json:"id"`
	Count int    `json:"count,omitempty"`
}

type PurchaseResponse struct {
	Bought     int     `json:"bought"`
	TotalSpent float64 `json:"totalSpent"`
	Level      int     `json:"level"`
	NextPrice  float64 `json:"nextPrice"`
}

func handlePurchase(eng *engine.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req PurchaseRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if req.ID == "" {
			writeError(w, http.StatusBadRequest, "upgrade id is required")
			return
		}
		if req.Count <= 0 {
			req.Count = 1
		}

		res, err := eng.PurchaseBatch(r.Context(), req.ID, req.Count)
		if errors.Is(err, engine.ErrUnknownUpgrade) {
			writeError(w, http.StatusNotFound, "unknown upgrade id")
			return
		}
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		// Insufficient balance is a partial-success record, not an
		// error: zero bought means nothing changed.
		status := http.StatusOK
		if res.Bought == 0 {
			status = http.StatusConflict
		}
		writeJSON(w, status, PurchaseResponse{
			Bought:     res.Bought,
			TotalSpent: res.TotalSpent,
			Level:      res.Level,
			NextPrice:  res.NextPrice,
		})
	}
}
