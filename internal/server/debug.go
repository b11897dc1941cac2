package server

import (
	"encoding/json"
	"net/http"

	"github.com/sigmafes/sigsnakes/internal/engine"
)

// DebugHandler отдает живое состояние симуляции для отладки
type DebugHandler struct {
	Engine *engine.GameService
}

func NewDebugHandler(e *engine.GameService) *DebugHandler {
	return &DebugHandler{Engine: e}
}

func (h *DebugHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/debug/state", h.handleState)
}

type debugSnake struct {
	ID         string `json:"id"`
	Length     int    `json:"length"`
	Alive      bool   `json:"alive"`
	Paused     bool   `json:"paused"`
	Score      int    `json:"score"`
	SpeedBoost int    `json:"speedBoost"`
	Invincible int    `json:"invincible"`
}

type debugState struct {
	Tick        int64        `json:"tick"`
	Connections int          `json:"connections"`
	FoodCount   int          `json:"foodCount"`
	Snakes      []debugSnake `json:"snakes"`
}

func (h *DebugHandler) handleState(w http.ResponseWriter, r *http.Request) {
	st := h.Engine.State
	st.RLock()

	out := debugState{
		Tick:        st.Tick,
		Connections: h.Engine.Hub.SubscriberCount(),
		FoodCount:   len(st.Food),
	}
	for id, s := range st.Snakes {
		out.Snakes = append(out.Snakes, debugSnake{
			ID:         id,
			Length:     len(s.Body),
			Alive:      s.Alive,
			Paused:     s.Paused,
			Score:      s.Score(),
			SpeedBoost: s.SpeedBoost,
			Invincible: s.Invincible,
		})
	}
	st.RUnlock()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(out)
}
