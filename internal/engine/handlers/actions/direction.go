package actions

import (
	"github.com/sigmafes/sigsnakes/internal/domain"
	"github.com/sigmafes/sigsnakes/internal/engine/handlers"
	"github.com/sigmafes/sigsnakes/pkg/api"
)

// HandleDirection применяет ввод направления. Ответа по протоколу нет:
// отвергнутый ввод просто не меняет направление.
//
// Две проверки:
//  1. запрет реверса (мгновенный разворот на 180)
//  2. анти-суицид: направление, следующая клетка которого лежит в
//     собственном теле, отклоняется. Закрывает эксплойт с быстрым
//     двойным нажатием между тиками.
//
// Принятый вектор перезаписывает прежний сразу, но движение происходит
// только внутри тика: последний принятый ввод за тик побеждает.
func HandleDirection(ctx handlers.Context, p api.DirectionPayload) (handlers.Result, error) {
	dir := domain.Direction{X: p.X, Y: p.Y}

	st := ctx.State
	st.Lock()
	defer st.Unlock()

	s := ctx.Actor
	if !s.Alive || s.Paused {
		return handlers.EmptyResult(), nil
	}
	if dir.IsOpposite(s.Direction) {
		return handlers.EmptyResult(), nil
	}
	if s.OccupiesTails(s.Head().Shift(dir)) {
		return handlers.EmptyResult(), nil
	}

	s.Direction = dir
	return handlers.EmptyResult(), nil
}
