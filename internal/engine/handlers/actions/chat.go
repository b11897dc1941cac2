package actions

import (
	"strings"

	"github.com/sigmafes/sigsnakes/internal/engine/handlers"
	"github.com/sigmafes/sigsnakes/internal/engine/handlers/admin"
	"github.com/sigmafes/sigsnakes/pkg/api"
)

// HandleChat ретранслирует сообщение всем подключенным.
// Гости пишут под именем "Guest". Строки, начинающиеся с "!",
// уходят в обработчик команд модерации.
func HandleChat(ctx handlers.Context, p api.ChatPayload) (handlers.Result, error) {
	if strings.HasPrefix(p.Text, "!") {
		return admin.HandleCommand(ctx, p.Text)
	}

	name := "Guest"
	if s, ok := ctx.Registry.Session(ctx.ConnID); ok {
		name = s.Username
	}

	return handlers.Result{
		Broadcast: &api.ServerResponse{
			Type:     "chat-message",
			Username: name,
			Message:  p.Text,
		},
	}, nil
}
