package actions

import (
	"github.com/sigmafes/sigsnakes/internal/engine/handlers"
	"github.com/sigmafes/sigsnakes/pkg/api"
)

// HandlePause включает/выключает паузу. Направление НЕ сбрасывается:
// после снятия паузы змейка продолжает движение.
// Эхо "paused" уходит только отправителю.
func HandlePause(ctx handlers.Context, p api.PausePayload) (handlers.Result, error) {
	st := ctx.State
	st.Lock()
	ctx.Actor.Paused = p.Paused
	st.Unlock()

	return handlers.Result{
		Reply: &api.ServerResponse{Type: "paused", Paused: api.BoolPtr(p.Paused)},
	}, nil
}
