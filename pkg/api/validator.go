package api

import "errors"

// Validator - интерфейс, который могут реализовать DTO.
// Обертка хендлера вызывает Validate автоматически после Unmarshal.
type Validator interface {
	Validate() error
}

// MaxChatLen - предел длины одного сообщения чата
const MaxChatLen = 200

func (p DirectionPayload) Validate() error {
	abs := func(v int) int {
		if v < 0 {
			return -v
		}
		return v
	}
	// Ровно одна ось, шаг ровно 1
	if abs(p.X)+abs(p.Y) != 1 {
		return errors.New("direction must be a unit vector")
	}
	return nil
}

func (p CredentialsPayload) Validate() error {
	if p.Username == "" || p.Password == "" {
		return errors.New("username and password are required")
	}
	return nil
}

func (p AutoLoginPayload) Validate() error {
	if p.Username == "" {
		return errors.New("username is required")
	}
	return nil
}

func (p ColorPayload) Validate() error {
	if p.Color == "" {
		return errors.New("color is required")
	}
	return nil
}

func (p ShapePayload) Validate() error {
	if p.Shape == "" {
		return errors.New("shape is required")
	}
	return nil
}

func (p ChatPayload) Validate() error {
	if p.Text == "" {
		return errors.New("message cannot be empty")
	}
	if len(p.Text) > MaxChatLen {
		return errors.New("message too long")
	}
	return nil
}
