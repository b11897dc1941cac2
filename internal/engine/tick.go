package engine

import (
	"sort"

	"github.com/sigmafes/sigsnakes/internal/domain"
)

// tick выполняет один синхронный проход симуляции.
//
// Исправление исторического бага: решения о коллизиях принимаются против
// ЗАМОРОЖЕННОГО пред-тикового снапшота чужих тел, а не против уже
// сдвинутых змеек. Лобовое столкновение убивает обоих независимо от
// порядка обхода мапы. Для детерминизма дележки еды змейки обходятся
// в отсортированном по id порядке.
func (gs *GameService) tick() {
	st := gs.State
	st.Lock()
	defer st.Unlock()

	st.Tick++

	// 1. Досыпаем еду до максимума
	st.ReplenishFood()

	// 2. Замороженный пред-тиковый мир
	frozen := st.LivingBodies()

	ids := make([]string, 0, len(st.Snakes))
	for id := range st.Snakes {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	// 3. Двигаем каждую змейку. Стоящие (нулевой вектор), мертвые и
	// на паузе пропускаются целиком - они не двигаются, не умирают
	// и их эффекты не тают.
	for _, id := range ids {
		s := st.Snakes[id]
		if !s.Alive || s.Paused || s.Direction.IsZero() {
			continue
		}

		gs.advanceSnake(s, frozen)

		if s.SpeedBoost > 0 {
			s.SpeedBoost--
		}
		if s.Invincible > 0 {
			s.Invincible--
		}
	}
}

// advanceSnake проходит 1 или 2 клетки (под speed boost).
// Под-шаги последовательны: смерть на первом отменяет второй,
// еда может быть съедена на обоих.
func (gs *GameService) advanceSnake(s *domain.Snake, frozen map[string][]domain.Position) {
	steps := s.StepSize()
	for i := 0; i < steps && s.Alive; i++ {
		next := s.Head().Shift(s.Direction)
		out := Resolve(s, next, frozen, gs.State.Food, gs.State.TileCount)

		switch out.Kind {
		case OutcomeWallDeath, OutcomeSelfDeath, OutcomeOtherDeath:
			s.Alive = false

		case OutcomeFed:
			s.GrowHead(next)
			gs.State.RemoveFoodAt(next)
			gs.applyFoodEffect(s, out.Food)

		case OutcomeMoved:
			s.GrowHead(next)
			s.DropTail()
		}
	}
}

// applyFoodEffect применяет эффект съеденного яблока.
// Голова уже добавлена, хвост не снят - любая еда дает +1 к длине;
// double добавляет еще один сегмент в хвост.
func (gs *GameService) applyFoodEffect(s *domain.Snake, kind domain.FoodKind) {
	switch kind {
	case domain.FoodNormal:
		s.AddScore(domain.ScoreNormal)

	case domain.FoodDouble:
		s.AddScore(domain.ScoreDouble)
		s.Body = append(s.Body, s.Body[len(s.Body)-1])

	case domain.FoodSpeed:
		s.AddScore(gs.Cfg.SpeedFoodScore)
		s.SpeedBoost = domain.SpeedBoostTicks

	case domain.FoodInvincible:
		s.Invincible = domain.InvincibleTicks
	}
}
