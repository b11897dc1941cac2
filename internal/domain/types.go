package domain

// Position - клетка на игровом поле. Значимый тип, передается по значению.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Direction - вектор движения змейки.
// Либо единичный вектор по одной оси, либо нулевой ("еще не двигается").
type Direction struct {
	X int `json:"x"`
	Y int `json:"y"`
}
