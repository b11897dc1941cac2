package domain

// FoodKind - вид еды. Определяет эффект при поедании.
type FoodKind uint8

const (
	FoodNormal FoodKind = iota
	FoodDouble
	FoodSpeed
	FoodInvincible
)

var foodKindNames = map[FoodKind]string{
	FoodNormal:     "normal",
	FoodDouble:     "double",
	FoodSpeed:      "speed",
	FoodInvincible: "invincible",
}

// String реализует интерфейс Stringer (для логов и DTO)
func (k FoodKind) String() string {
	if name, ok := foodKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Food - яблоко на поле
type Food struct {
	Position Position
	Kind     FoodKind
}

// RollFoodKind выбирает вид еды по весам спавна.
// roll должен лежать в [0, 100).
func RollFoodKind(roll int) FoodKind {
	switch {
	case roll < WeightNormal:
		return FoodNormal
	case roll < WeightNormal+WeightDouble:
		return FoodDouble
	case roll < WeightNormal+WeightDouble+WeightSpeed:
		return FoodSpeed
	default:
		return FoodInvincible
	}
}
