package account

import (
	"errors"

	"github.com/sigmafes/sigsnakes/internal/engine/handlers"
	"github.com/sigmafes/sigsnakes/pkg/api"
)

// HandleLogin сверяет учетные данные через хранилище и привязывает
// соединение к аккаунту. Счет змейки сидируется из сохраненного значения.
//
// Хендлер блокируется на bcrypt и диске, но выполняется в горутине
// соединения и state-lock при этом не держит: тик не ждет.
func HandleLogin(ctx handlers.Context, p api.CredentialsPayload) (handlers.Result, error) {
	acc, err := ctx.Registry.Login(ctx.ConnID, p.Username, p.Password)
	if err != nil {
		return handlers.Result{}, errors.New("invalid username or password")
	}

	ctx.Actor.SetScore(acc.Apples)

	return handlers.Result{
		Reply: &api.ServerResponse{
			Type:        "login-success",
			Username:    acc.Username,
			ApplesEaten: api.IntPtr(acc.Apples),
			OwnedColors: acc.OwnedColors,
			OwnedShapes: acc.OwnedShapes,
		},
		PushState: true,
	}, nil
}

// HandleAutoLogin - проверка сохраненной сессии клиента.
// Провал означает устаревшие данные в localStorage: клиент по событию
// auto-login-fail обязан их очистить.
func HandleAutoLogin(ctx handlers.Context, p api.AutoLoginPayload) (handlers.Result, error) {
	acc, err := ctx.Registry.AutoLogin(ctx.ConnID, p.Username, p.Apples)
	if err != nil {
		return handlers.Result{}, errors.New("stale session")
	}

	ctx.Actor.SetScore(acc.Apples)

	return handlers.Result{
		Reply: &api.ServerResponse{
			Type:        "auto-login-success",
			Username:    acc.Username,
			ApplesEaten: api.IntPtr(acc.Apples),
			OwnedColors: acc.OwnedColors,
			OwnedShapes: acc.OwnedShapes,
		},
		PushState: true,
	}, nil
}

// HandleLogout отвязывает соединение от аккаунта без ответа.
// Змейка продолжает играть как гость.
func HandleLogout(ctx handlers.Context) (handlers.Result, error) {
	ctx.Registry.Logout(ctx.ConnID)
	return handlers.EmptyResult(), nil
}
