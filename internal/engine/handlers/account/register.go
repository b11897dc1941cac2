package account

import (
	"errors"

	"github.com/sigmafes/sigsnakes/internal/accounts"
	"github.com/sigmafes/sigsnakes/internal/engine/handlers"
	"github.com/sigmafes/sigsnakes/pkg/api"
)

// HandleRegister заводит новый аккаунт с нулевым счетом.
// Регистрация НЕ логинит: клиент после register-success шлет login сам.
func HandleRegister(ctx handlers.Context, p api.CredentialsPayload) (handlers.Result, error) {
	if err := ctx.Registry.Register(p.Username, p.Password); err != nil {
		if errors.Is(err, accounts.ErrUserExists) {
			return handlers.Result{}, errors.New("username already taken")
		}
		// ErrBadUsername и прочее: текст ошибки уже описывает ограничение
		return handlers.Result{}, err
	}

	return handlers.Result{
		Reply: &api.ServerResponse{Type: "register-success"},
	}, nil
}

// HandleSaveProgress сбрасывает текущий счет в хранилище по запросу клиента
func HandleSaveProgress(ctx handlers.Context) (handlers.Result, error) {
	if err := ctx.Registry.SaveScore(ctx.ConnID, ctx.Actor.Score()); err != nil {
		return handlers.Result{}, err
	}
	return handlers.Result{
		Reply: &api.ServerResponse{Type: "save-success"},
	}, nil
}
