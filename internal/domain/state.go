package domain

import (
	"math/rand"
	"sync"
)

// GameState - авторитетное состояние игры. Никаких глобальных переменных:
// стейт принадлежит движку и передается явно.
//
// Блокировки: тик и add/remove/replace сущностей берут Lock,
// построение снапшота - RLock. Rng защищен тем же мьютексом.
type GameState struct {
	sync.RWMutex

	Snakes map[string]*Snake
	Food   []*Food

	TileCount int
	MaxFood   int
	Tick      int64

	Rng *rand.Rand
}

// NewGameState создает пустое поле
func NewGameState(tileCount, maxFood int, rng *rand.Rand) *GameState {
	return &GameState{
		Snakes:    make(map[string]*Snake),
		Food:      make([]*Food, 0, maxFood),
		TileCount: tileCount,
		MaxFood:   maxFood,
		Rng:       rng,
	}
}

// RandomFreeCell подбирает случайную клетку, не занятую телом живой змейки.
// Caller must hold Lock.
func (g *GameState) RandomFreeCell() Position {
	for {
		p := Position{X: g.Rng.Intn(g.TileCount), Y: g.Rng.Intn(g.TileCount)}
		if !g.occupiedByLiving(p) {
			return p
		}
	}
}

func (g *GameState) occupiedByLiving(p Position) bool {
	for _, s := range g.Snakes {
		if s.Alive && s.Occupies(p) {
			return true
		}
	}
	return false
}

// SpawnSnake создает односегментную змейку в случайной свободной клетке.
// Цвет по политике комнаты: первый игрок - основной, остальные - запасной.
// Caller must hold Lock.
func (g *GameState) SpawnSnake(id string) *Snake {
	color := ColorSecondary
	if len(g.Snakes) == 0 {
		color = ColorPrimary
	}

	s := &Snake{
		ID:    id,
		Body:  []Position{g.RandomFreeCell()},
		Alive: true,
		Color: color,
		Shape: ShapeDefault,
	}
	g.Snakes[id] = s
	return s
}

// RespawnSnake заменяет мертвую змейку свежей, сохраняя identity,
// косметику и счет. Caller must hold Lock.
func (g *GameState) RespawnSnake(old *Snake) *Snake {
	s := &Snake{
		ID:    old.ID,
		Body:  []Position{g.RandomFreeCell()},
		Alive: true,
		Color: old.Color,
		Shape: old.Shape,
	}
	s.SetScore(old.Score())
	g.Snakes[old.ID] = s
	return s
}

// ReplenishFood досыпает еду до максимума. Вид каждого яблока
// выбирается по весам. Caller must hold Lock.
func (g *GameState) ReplenishFood() {
	for len(g.Food) < g.MaxFood {
		g.Food = append(g.Food, &Food{
			Position: g.RandomFreeCell(),
			Kind:     RollFoodKind(g.Rng.Intn(100)),
		})
	}
}

// FoodAt возвращает яблоко в клетке p, либо nil
func (g *GameState) FoodAt(p Position) *Food {
	for _, f := range g.Food {
		if f.Position == p {
			return f
		}
	}
	return nil
}

// RemoveFoodAt убирает съеденное яблоко. Caller must hold Lock.
func (g *GameState) RemoveFoodAt(p Position) {
	for i, f := range g.Food {
		if f.Position == p {
			g.Food = append(g.Food[:i], g.Food[i+1:]...)
			return
		}
	}
}

// LivingBodies возвращает копию тел всех живых змеек.
// Это "замороженный" пред-тиковый мир, против которого считаются коллизии.
func (g *GameState) LivingBodies() map[string][]Position {
	out := make(map[string][]Position, len(g.Snakes))
	for id, s := range g.Snakes {
		if !s.Alive {
			continue
		}
		body := make([]Position, len(s.Body))
		copy(body, s.Body)
		out[id] = body
	}
	return out
}
