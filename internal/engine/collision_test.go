package engine

import (
	"testing"

	"github.com/sigmafes/sigsnakes/internal/domain"
)

func TestResolveWallDeath(t *testing.T) {
	s := &domain.Snake{ID: "a", Body: []domain.Position{{X: 0, Y: 5}}, Alive: true}

	out := Resolve(s, domain.Position{X: -1, Y: 5}, nil, nil, 30)
	if out.Kind != OutcomeWallDeath {
		t.Errorf("Outcome = %v, want wall-death", out.Kind)
	}

	out = Resolve(s, domain.Position{X: 0, Y: 30}, nil, nil, 30)
	if out.Kind != OutcomeWallDeath {
		t.Errorf("Outcome = %v, want wall-death", out.Kind)
	}
}

func TestResolveSelfDeath(t *testing.T) {
	// Змейка загибается в петлю: голова шагает в собственное тело
	s := &domain.Snake{ID: "a", Alive: true, Body: []domain.Position{
		{X: 5, Y: 5}, {X: 5, Y: 6}, {X: 6, Y: 6}, {X: 6, Y: 5}, {X: 6, Y: 4},
	}}

	out := Resolve(s, domain.Position{X: 6, Y: 5}, nil, nil, 30)
	if out.Kind != OutcomeSelfDeath {
		t.Errorf("Outcome = %v, want self-death", out.Kind)
	}
}

func TestResolveOtherDeath(t *testing.T) {
	s := &domain.Snake{ID: "a", Body: []domain.Position{{X: 5, Y: 5}}, Alive: true}
	others := map[string][]domain.Position{
		"a": {{X: 5, Y: 5}}, // собственный снапшот должен игнорироваться
		"b": {{X: 6, Y: 5}, {X: 7, Y: 5}},
	}

	out := Resolve(s, domain.Position{X: 6, Y: 5}, others, nil, 30)
	if out.Kind != OutcomeOtherDeath {
		t.Errorf("Outcome = %v, want other-death", out.Kind)
	}
}

func TestResolveInvincibleSkipsOthers(t *testing.T) {
	s := &domain.Snake{ID: "a", Body: []domain.Position{{X: 5, Y: 5}}, Alive: true, Invincible: 10}
	others := map[string][]domain.Position{
		"b": {{X: 6, Y: 5}},
	}

	out := Resolve(s, domain.Position{X: 6, Y: 5}, others, nil, 30)
	if out.Kind != OutcomeMoved {
		t.Errorf("invincible snake died to other snake: %v", out.Kind)
	}

	// Стена и свое тело убивают и под неуязвимостью
	out = Resolve(s, domain.Position{X: -1, Y: 5}, others, nil, 30)
	if out.Kind != OutcomeWallDeath {
		t.Errorf("Outcome = %v, want wall-death even when invincible", out.Kind)
	}

	s.Body = []domain.Position{{X: 5, Y: 5}, {X: 4, Y: 5}, {X: 4, Y: 4}, {X: 5, Y: 4}}
	out = Resolve(s, domain.Position{X: 5, Y: 4}, others, nil, 30)
	if out.Kind != OutcomeSelfDeath {
		t.Errorf("Outcome = %v, want self-death even when invincible", out.Kind)
	}
}

func TestResolveFed(t *testing.T) {
	s := &domain.Snake{ID: "a", Body: []domain.Position{{X: 5, Y: 5}}, Alive: true}
	food := []*domain.Food{
		{Position: domain.Position{X: 6, Y: 5}, Kind: domain.FoodDouble},
	}

	out := Resolve(s, domain.Position{X: 6, Y: 5}, nil, food, 30)
	if out.Kind != OutcomeFed {
		t.Fatalf("Outcome = %v, want fed", out.Kind)
	}
	if out.Food != domain.FoodDouble {
		t.Errorf("Food kind = %v, want double", out.Food)
	}
}

func TestResolvePriorityOtherBeforeFood(t *testing.T) {
	// Еда лежит в клетке, занятой чужим телом: смерть важнее еды
	s := &domain.Snake{ID: "a", Body: []domain.Position{{X: 5, Y: 5}}, Alive: true}
	others := map[string][]domain.Position{"b": {{X: 6, Y: 5}}}
	food := []*domain.Food{{Position: domain.Position{X: 6, Y: 5}, Kind: domain.FoodNormal}}

	out := Resolve(s, domain.Position{X: 6, Y: 5}, others, food, 30)
	if out.Kind != OutcomeOtherDeath {
		t.Errorf("Outcome = %v, want other-death (collision before food)", out.Kind)
	}
}

func TestResolveMoved(t *testing.T) {
	s := &domain.Snake{ID: "a", Body: []domain.Position{{X: 5, Y: 5}}, Alive: true}
	out := Resolve(s, domain.Position{X: 6, Y: 5}, nil, nil, 30)
	if out.Kind != OutcomeMoved {
		t.Errorf("Outcome = %v, want moved", out.Kind)
	}
}
