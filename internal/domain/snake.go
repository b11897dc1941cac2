package domain

import "sync/atomic"

// Snake - сущность игрока. Одна змейка на одно активное соединение.
//
// Дисциплина доступа к полям:
//   - Body, Alive, SpeedBoost, Invincible мутирует только тик под write-lock стейта
//   - Direction, Paused мутируют хендлеры ввода под тем же write-lock
//   - score атомарный: его инкрементит тик (съеденное яблоко), а горутины
//     соединений - логин (сид из хранилища), покупка и админ-команды
type Snake struct {
	ID        string
	Body      []Position // голова первая, хвост последний; длина всегда >= 1
	Direction Direction
	Alive     bool
	Paused    bool

	// Оставшиеся тики эффектов. 0 = эффект не активен.
	SpeedBoost int
	Invincible int

	Color string
	Shape string

	score atomic.Int64
}

// Head возвращает позицию головы
func (s *Snake) Head() Position {
	return s.Body[0]
}

// GrowHead добавляет новую голову, не убирая хвост (рост на 1 сегмент)
func (s *Snake) GrowHead(head Position) {
	s.Body = append([]Position{head}, s.Body...)
}

// DropTail убирает последний сегмент. Тело никогда не становится пустым:
// хвост снимается только после того, как голова уже добавлена.
func (s *Snake) DropTail() {
	if len(s.Body) > 1 {
		s.Body = s.Body[:len(s.Body)-1]
	}
}

// Occupies проверяет, занимает ли любой сегмент тела клетку p
func (s *Snake) Occupies(p Position) bool {
	for _, seg := range s.Body {
		if seg == p {
			return true
		}
	}
	return false
}

// OccupiesTails проверяет клетку против всех сегментов КРОМЕ головы.
// Используется для self-collision и анти-суицидной проверки ввода.
func (s *Snake) OccupiesTails(p Position) bool {
	for _, seg := range s.Body[1:] {
		if seg == p {
			return true
		}
	}
	return false
}

// Score возвращает текущее количество яблок (валюта игрока)
func (s *Snake) Score() int {
	return int(s.score.Load())
}

// AddScore атомарно прибавляет очки. Отрицательная дельта не опускает
// счет ниже нуля (админ-команда remove).
func (s *Snake) AddScore(delta int) {
	for {
		cur := s.score.Load()
		next := cur + int64(delta)
		if next < 0 {
			next = 0
		}
		if s.score.CompareAndSwap(cur, next) {
			return
		}
	}
}

// SetScore перезаписывает счет (сид из хранилища при логине)
func (s *Snake) SetScore(v int) {
	s.score.Store(int64(v))
}

// SpendScore атомарно списывает цену покупки.
// Возвращает false без изменений, если очков не хватает.
func (s *Snake) SpendScore(price int) bool {
	for {
		cur := s.score.Load()
		if cur < int64(price) {
			return false
		}
		if s.score.CompareAndSwap(cur, cur-int64(price)) {
			return true
		}
	}
}

// StepSize - сколько клеток змейка проходит за тик
func (s *Snake) StepSize() int {
	if s.SpeedBoost > 0 {
		return 2
	}
	return 1
}
