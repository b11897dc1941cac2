package engine

import (
	"github.com/sigmafes/sigsnakes/internal/domain"
)

// OutcomeKind - классификация одного шага змейки
type OutcomeKind uint8

const (
	OutcomeMoved OutcomeKind = iota
	OutcomeWallDeath
	OutcomeSelfDeath
	OutcomeOtherDeath
	OutcomeFed
)

var outcomeNames = map[OutcomeKind]string{
	OutcomeMoved:      "moved",
	OutcomeWallDeath:  "wall-death",
	OutcomeSelfDeath:  "self-death",
	OutcomeOtherDeath: "other-death",
	OutcomeFed:        "fed",
}

func (k OutcomeKind) String() string {
	if name, ok := outcomeNames[k]; ok {
		return name
	}
	return "unknown"
}

// Outcome - результат классификации шага
type Outcome struct {
	Kind OutcomeKind

	// Food валидно только при Kind == OutcomeFed
	Food domain.FoodKind
}

// Resolve - чистая функция: классифицирует один шаг змейки s в клетку next.
//
// others - пред-тиковые тела остальных ЖИВЫХ змеек (замороженный мир;
// собственный id из мапы игнорируется). Собственное тело берется из s
// "живьем": при втором под-шаге speed boost оно уже сдвинуто.
//
// Порядок проверок фиксирован и значим:
// стена -> свое тело -> чужие змейки (пропускается под неуязвимостью) -> еда.
func Resolve(s *domain.Snake, next domain.Position, others map[string][]domain.Position, food []*domain.Food, tileCount int) Outcome {
	if !next.InBounds(tileCount) {
		return Outcome{Kind: OutcomeWallDeath}
	}

	// Столкновение с собственным телом (кроме головы).
	// Неуязвимость от него НЕ спасает.
	if s.OccupiesTails(next) {
		return Outcome{Kind: OutcomeSelfDeath}
	}

	if s.Invincible == 0 {
		for id, body := range others {
			if id == s.ID {
				continue
			}
			for _, seg := range body {
				if seg == next {
					return Outcome{Kind: OutcomeOtherDeath}
				}
			}
		}
	}

	for _, f := range food {
		if f.Position == next {
			return Outcome{Kind: OutcomeFed, Food: f.Kind}
		}
	}

	return Outcome{Kind: OutcomeMoved}
}
