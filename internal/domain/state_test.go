package domain

import (
	"math/rand"
	"testing"
)

func newTestState(tileCount, maxFood int) *GameState {
	return NewGameState(tileCount, maxFood, rand.New(rand.NewSource(42)))
}

func TestSpawnSnakeColorPolicy(t *testing.T) {
	st := newTestState(30, 0)
	st.Lock()
	defer st.Unlock()

	first := st.SpawnSnake("a")
	if first.Color != ColorPrimary {
		t.Errorf("first snake color = %s, want %s", first.Color, ColorPrimary)
	}

	second := st.SpawnSnake("b")
	if second.Color != ColorSecondary {
		t.Errorf("second snake color = %s, want %s", second.Color, ColorSecondary)
	}

	if len(first.Body) != 1 || len(second.Body) != 1 {
		t.Error("spawned snakes must have a single segment")
	}
	if !first.Direction.IsZero() {
		t.Error("spawned snake must start with zero direction")
	}
}

func TestReplenishFoodAvoidsLivingBodies(t *testing.T) {
	// Поле 3x3, змейка занимает почти все клетки - свободна только (2,2)
	st := newTestState(3, 4)
	st.Lock()
	defer st.Unlock()

	body := []Position{}
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if x == 2 && y == 2 {
				continue
			}
			body = append(body, Position{x, y})
		}
	}
	st.Snakes["a"] = &Snake{ID: "a", Body: body, Alive: true}

	st.ReplenishFood()

	if len(st.Food) != st.MaxFood {
		t.Fatalf("food count = %d, want %d", len(st.Food), st.MaxFood)
	}
	for _, f := range st.Food {
		if f.Position != (Position{2, 2}) {
			t.Errorf("food spawned on a living body at %v", f.Position)
		}
	}
}

func TestRespawnSnakePreservesIdentity(t *testing.T) {
	st := newTestState(30, 0)
	st.Lock()
	defer st.Unlock()

	old := st.SpawnSnake("a")
	old.Alive = false
	old.Color = "gradient"
	old.Shape = "star"
	old.SetScore(42)
	old.Body = []Position{{1, 1}, {1, 2}, {1, 3}}

	fresh := st.RespawnSnake(old)

	if fresh.ID != "a" {
		t.Errorf("ID = %s, want a", fresh.ID)
	}
	if !fresh.Alive {
		t.Error("respawned snake must be alive")
	}
	if len(fresh.Body) != 1 {
		t.Errorf("respawned body length = %d, want 1", len(fresh.Body))
	}
	if fresh.Color != "gradient" || fresh.Shape != "star" {
		t.Error("respawn must preserve cosmetics")
	}
	if fresh.Score() != 42 {
		t.Errorf("respawn score = %d, want 42", fresh.Score())
	}
	if st.Snakes["a"] != fresh {
		t.Error("state must point to the fresh snake")
	}
}

func TestRollFoodKind(t *testing.T) {
	tests := []struct {
		roll int
		want FoodKind
	}{
		{0, FoodNormal},
		{WeightNormal - 1, FoodNormal},
		{WeightNormal, FoodDouble},
		{WeightNormal + WeightDouble, FoodSpeed},
		{WeightNormal + WeightDouble + WeightSpeed, FoodInvincible},
		{99, FoodInvincible},
	}

	for _, tt := range tests {
		if got := RollFoodKind(tt.roll); got != tt.want {
			t.Errorf("RollFoodKind(%d) = %v, want %v", tt.roll, got, tt.want)
		}
	}
}

func TestRemoveFoodAt(t *testing.T) {
	st := newTestState(30, 0)
	st.Lock()
	defer st.Unlock()

	st.Food = []*Food{
		{Position: Position{1, 1}, Kind: FoodNormal},
		{Position: Position{2, 2}, Kind: FoodDouble},
	}

	st.RemoveFoodAt(Position{1, 1})
	if len(st.Food) != 1 {
		t.Fatalf("food count = %d, want 1", len(st.Food))
	}
	if st.FoodAt(Position{1, 1}) != nil {
		t.Error("removed food still present")
	}
	if st.FoodAt(Position{2, 2}) == nil {
		t.Error("wrong food removed")
	}
}
