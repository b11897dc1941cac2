package admin

import (
	"errors"
	"strconv"
	"strings"

	"github.com/sigmafes/sigsnakes/internal/engine/handlers"
	"github.com/sigmafes/sigsnakes/pkg/api"
)

// Ошибки команд модерации
var (
	ErrNotAllowed     = errors.New("not allowed")
	ErrUnknownCommand = errors.New("unknown command")
	ErrBadArgument    = errors.New("bad argument")
)

// HandleCommand разбирает чат-команды модерации:
//
//	!add <n>    - добавить себе n яблок
//	!remove <n> - снять с себя n яблок (не ниже нуля)
//	!say <text> - анонс от имени сервера
//
// Доступ определяется ролью сессии (Role.CanModerate), а не сравнением
// с конкретным именем пользователя.
func HandleCommand(ctx handlers.Context, text string) (handlers.Result, error) {
	if !ctx.Registry.CanModerate(ctx.ConnID) {
		return handlers.Result{}, ErrNotAllowed
	}

	fields := strings.Fields(text)
	switch fields[0] {
	case "!add", "!remove":
		if len(fields) != 2 {
			return handlers.Result{}, ErrBadArgument
		}
		n, err := strconv.Atoi(fields[1])
		if err != nil || n < 0 {
			return handlers.Result{}, ErrBadArgument
		}
		if fields[0] == "!remove" {
			n = -n
		}
		ctx.Actor.AddScore(n)
		return handlers.Result{PushState: true}, nil

	case "!say":
		msg := strings.TrimSpace(strings.TrimPrefix(text, "!say"))
		if msg == "" {
			return handlers.Result{}, ErrBadArgument
		}
		return handlers.Result{
			Broadcast: &api.ServerResponse{
				Type:     "chat-message",
				Username: "SERVER",
				Message:  msg,
			},
		}, nil

	default:
		return handlers.Result{}, ErrUnknownCommand
	}
}
