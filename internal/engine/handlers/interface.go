package handlers

import (
	"encoding/json"

	"github.com/sigmafes/sigsnakes/internal/domain"
	"github.com/sigmafes/sigsnakes/internal/network"
	"github.com/sigmafes/sigsnakes/internal/session"
	"github.com/sigmafes/sigsnakes/pkg/api"
)

// Context передает хендлеру состояние игры.
// Мы передаем ссылки, чтобы хендлер мог менять состояние (мутировать данные).
type Context struct {
	State    *domain.GameState
	Registry *session.Registry
	Hub      *network.Broadcaster

	// ConnID - соединение-инициатор, Actor - его змейка
	ConnID string
	Actor  *domain.Snake
}

// Result - результат выполнения команды. Хендлер НЕ шлет в сеть напрямую,
// он возвращает данные, а рассылкой занимается сервис.
type Result struct {
	// Reply уходит только инициатору (login-success, paused, ...)
	Reply *api.ServerResponse

	// Broadcast уходит всем подключенным (чат)
	Broadcast *api.ServerResponse

	// PushState - запросить немедленный внеочередной снапшот всем,
	// не дожидаясь следующего тика (revive, логин)
	PushState bool
}

// HandlerFunc - это контракт для любой команды (direction, login, etc).
type HandlerFunc func(ctx Context, payload json.RawMessage) (Result, error)

// EmptyResult - вспомогательная функция для пустого успешного ответа
func EmptyResult() Result {
	return Result{}
}
