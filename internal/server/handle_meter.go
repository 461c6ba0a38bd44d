package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/yerevantaxi/tycoon/internal/engine"
)

// MeterFrame is the compact per-second frame pushed over the
// websocket for the live balance meter.
type MeterFrame struct {
	Balance             float64 `json:"balance"`
	IdleIncomePerSecond float64 `json:"idleIncomePerSecond"`
	ClickValue          float64 `json:"clickValue"`
	MilestoneProgress   float64 `json:"milestoneProgress"`
	SpeedBoostLeftMs    int64   `json:"speedBoostLeftMs"`
	RushHourLeftMs      int64   `json:"rushHourLeftMs"`
}

func handleMeter(logger *slog.Logger, eng *engine.Engine) http.HandlerFunc {
	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     func(r *http.Request) bool { return true },
	}

	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logger.Error("websocket upgrade failed", "error", err)
			return
		}
		defer conn.Close()

		// Drain client frames so close messages are processed.
		go func() {
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()

		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()

		for {
			select {
			case <-r.Context().Done():
				return
			case <-ticker.C:
				v := eng.View()
				frame := MeterFrame{
					Balance:             v.Balance,
					IdleIncomePerSecond: v.IdleIncomePerSecond,
					ClickValue:          v.ClickValue,
					MilestoneProgress:   v.MilestoneProgress,
					SpeedBoostLeftMs:    v.SpeedBoostLeftMs,
					RushHourLeftMs:      v.RushHourLeftMs,
				}
				conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
				if err := conn.WriteJSON(frame); err != nil {
					logger.Debug("websocket write failed", "error", err)
					return
				}
			}
		}
	}
}
