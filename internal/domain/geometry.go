package domain

// Shift возвращает новую позицию со смещением (не меняя текущую,
// т.к. Go передает структуры по значению)
func (p Position) Shift(d Direction) Position {
	return Position{X: p.X + d.X, Y: p.Y + d.Y}
}

// InBounds проверяет, что клетка лежит внутри поля tileCount x tileCount
func (p Position) InBounds(tileCount int) bool {
	return p.X >= 0 && p.X < tileCount && p.Y >= 0 && p.Y < tileCount
}

// IsZero возвращает true для нулевого вектора ("змейка стоит")
func (d Direction) IsZero() bool {
	return d.X == 0 && d.Y == 0
}

// IsUnit проверяет, что ровно одна ось ненулевая и модуль равен 1
func (d Direction) IsUnit() bool {
	abs := func(v int) int {
		if v < 0 {
			return -v
		}
		return v
	}
	return abs(d.X)+abs(d.Y) == 1
}

// IsOpposite повторяет проверку реверса: по ненулевой оси нового вектора
// текущее направление строго противоположно. Нулевой вектор не реверс.
func (d Direction) IsOpposite(cur Direction) bool {
	return (d.X != 0 && cur.X == -d.X) || (d.Y != 0 && cur.Y == -d.Y)
}
