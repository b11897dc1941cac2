package engine

import (
	"time"

	"github.com/sigmafes/sigsnakes/internal/domain"
)

// Config хранит параметры запуска движка
type Config struct {
	TileCount  int
	MaxFood    int
	MaxPlayers int

	// TickInterval - период симуляции. Темп игры, а не инвариант корректности.
	TickInterval time.Duration

	// SpeedFoodScore - бонус очков за speed-яблоко. Исторически поведение
	// менялось между ревизиями, поэтому величина настраиваемая.
	SpeedFoodScore int

	// Seed - зерно генератора. 0 в main.go означает "случайное".
	Seed int64
}

// NewConfig создает конфиг по умолчанию
func NewConfig() Config {
	return Config{
		TileCount:      domain.DefaultTileCount,
		MaxFood:        domain.DefaultMaxFood,
		MaxPlayers:     domain.DefaultMaxPlayers,
		TickInterval:   100 * time.Millisecond,
		SpeedFoodScore: domain.DefaultSpeedFoodScore,
		Seed:           time.Now().UnixNano(),
	}
}
