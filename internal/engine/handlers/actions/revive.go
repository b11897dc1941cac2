package actions

import (
	"github.com/sigmafes/sigsnakes/internal/engine/handlers"
)

// HandleRevive заменяет мертвую змейку свежей с сохранением identity,
// косметики и счета. Живую змейку команда молча игнорирует.
//
// PushState: возрожденная змейка должна стать видимой немедленно,
// не дожидаясь следующего тика.
func HandleRevive(ctx handlers.Context) (handlers.Result, error) {
	st := ctx.State
	st.Lock()

	s, ok := st.Snakes[ctx.ConnID]
	if !ok || s.Alive {
		st.Unlock()
		return handlers.EmptyResult(), nil
	}
	st.RespawnSnake(s)
	st.Unlock()

	return handlers.Result{PushState: true}, nil
}
