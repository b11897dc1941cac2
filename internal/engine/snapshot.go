package engine

import (
	"github.com/sigmafes/sigsnakes/pkg/api"
)

// BuildSnapshotFor собирает персональный слепок мира для одного получателя.
// eventType - "init" (с yourId) или "update".
func (gs *GameService) BuildSnapshotFor(connID, eventType string) *api.ServerResponse {
	gs.State.RLock()
	defer gs.State.RUnlock()
	return gs.buildSnapshotLocked(connID, eventType)
}

// buildSnapshotLocked - тело сборки. Caller must hold State lock
// (хватает RLock; Connect зовет под write-lock, чтобы init ушел
// раньше любого update).
func (gs *GameService) buildSnapshotLocked(connID, eventType string) *api.ServerResponse {
	st := gs.State

	snakes := make(map[string]api.SnakeView, len(st.Snakes))
	colors := make(map[string]string, len(st.Snakes))
	shapes := make(map[string]string, len(st.Snakes))

	for id, s := range st.Snakes {
		body := make([]api.PositionView, len(s.Body))
		for i, seg := range s.Body {
			body[i] = api.PositionView{X: seg.X, Y: seg.Y}
		}
		snakes[id] = api.SnakeView{
			Body:        body,
			Alive:       s.Alive,
			Paused:      s.Paused,
			Color:       s.Color,
			Shape:       s.Shape,
			SpeedBoost:  s.SpeedBoost,
			Invincible:  s.Invincible,
			ApplesEaten: s.Score(),
		}
		colors[id] = s.Color
		shapes[id] = s.Shape
	}

	apples := make([]api.FoodView, len(st.Food))
	for i, f := range st.Food {
		apples[i] = api.FoodView{X: f.Position.X, Y: f.Position.Y, Kind: f.Kind.String()}
	}

	resp := &api.ServerResponse{
		Type:         eventType,
		Snakes:       snakes,
		Apples:       apples,
		Usernames:    gs.Registry.Usernames(),
		PlayerColors: colors,
		PlayerShapes: shapes,
	}

	// Персонализация: собственный счет получателя
	if own, ok := st.Snakes[connID]; ok {
		resp.ApplesEaten = api.IntPtr(own.Score())
	}
	if eventType == "init" {
		resp.YourID = connID
	}
	return resp
}

// BroadcastUpdate шлет каждому подключенному его персональный "update".
// Вызывается тикером раз в тик и внеочередно (revive, disconnect),
// чтобы изменение было видно без лага ввода.
func (gs *GameService) BroadcastUpdate() {
	gs.State.RLock()
	ids := make([]string, 0, len(gs.State.Snakes))
	for id := range gs.State.Snakes {
		ids = append(ids, id)
	}
	gs.State.RUnlock()

	for _, id := range ids {
		gs.Hub.SendTo(id, *gs.BuildSnapshotFor(id, "update"))
	}
}
