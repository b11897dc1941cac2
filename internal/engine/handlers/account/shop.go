package account

import (
	"github.com/sigmafes/sigsnakes/internal/engine/handlers"
	"github.com/sigmafes/sigsnakes/internal/session"
	"github.com/sigmafes/sigsnakes/pkg/api"
)

// Магазин косметики. Покупка требует логина: гостю некуда сохранять
// владение. Неудача любой проверки оставляет счет и коллекцию нетронутыми.

func HandleBuyColor(ctx handlers.Context, p api.ColorPayload) (handlers.Result, error) {
	if err := ctx.Registry.BuyColor(ctx.ConnID, ctx.Actor, p.Color); err != nil {
		return handlers.Result{}, err
	}
	return handlers.Result{
		Reply: &api.ServerResponse{Type: "buy-color-success"},
	}, nil
}

func HandleBuyShape(ctx handlers.Context, p api.ShapePayload) (handlers.Result, error) {
	if err := ctx.Registry.BuyShape(ctx.ConnID, ctx.Actor, p.Shape); err != nil {
		return handlers.Result{}, err
	}
	return handlers.Result{
		Reply: &api.ServerResponse{Type: "buy-shape-success"},
	}, nil
}

// HandleUseColor активирует цвет. Базовые цвета комнаты доступны всем,
// остальные - только купившим.
func HandleUseColor(ctx handlers.Context, p api.ColorPayload) (handlers.Result, error) {
	if !ctx.Registry.OwnsColor(ctx.ConnID, p.Color) {
		return handlers.Result{}, session.ErrNotOwned
	}

	st := ctx.State
	st.Lock()
	ctx.Actor.Color = p.Color
	st.Unlock()

	return handlers.Result{
		Reply:     &api.ServerResponse{Type: "use-color-success"},
		PushState: true,
	}, nil
}

func HandleUseShape(ctx handlers.Context, p api.ShapePayload) (handlers.Result, error) {
	if !ctx.Registry.OwnsShape(ctx.ConnID, p.Shape) {
		return handlers.Result{}, session.ErrNotOwned
	}

	st := ctx.State
	st.Lock()
	ctx.Actor.Shape = p.Shape
	st.Unlock()

	return handlers.Result{
		Reply:     &api.ServerResponse{Type: "use-shape-success"},
		PushState: true,
	}, nil
}
