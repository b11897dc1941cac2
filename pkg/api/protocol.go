package api

import (
	"encoding/json"
)

// --- КЛИЕНТ -> СЕРВЕР ---

// ClientCommand это корневой объект для всех сообщений от клиента к серверу.
type ClientCommand struct {
	// Action название события, которое шлет клиент (e.g. "direction", "login").
	Action string `json:"action"`

	// Payload JSON-объект с данными. Его структура зависит от Action.
	Payload json.RawMessage `json:"payload,omitempty"`
}

// --- Payloads ---

// DirectionPayload - желаемое направление движения
type DirectionPayload struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// PausePayload - флаг паузы
type PausePayload struct {
	Paused bool `json:"paused"`
}

// CredentialsPayload используется для login и register
type CredentialsPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AutoLoginPayload - проверка сохраненной сессии.
// Клиент присылает имя и счет, которые запомнил в localStorage;
// сервер сверяет их с хранилищем.
type AutoLoginPayload struct {
	Username string `json:"username"`
	Apples   int    `json:"apples"`
}

// ColorPayload используется для buy-color и use-color
type ColorPayload struct {
	Color string `json:"color"`
}

// ShapePayload используется для buy-shape и use-shape
type ShapePayload struct {
	Shape string `json:"shape"`
}

// ChatPayload - текст сообщения в чат
type ChatPayload struct {
	Text string `json:"text"`
}

// --- СЕРВЕР -> КЛИЕНТ ---

// ServerResponse это единый конверт для всех событий сервера.
// Заполнены только те поля, которые имеют смысл для данного Type;
// остальные скрыты через omitempty.
type ServerResponse struct {
	// Type имя события: "init", "update", "paused",
	// "login-success", "login-fail", "register-success", ... , "server-full".
	Type string `json:"type"`

	// YourID отправляется один раз в событии "init"
	YourID string `json:"yourId,omitempty"`

	// Снапшот мира (init, update)
	Snakes map[string]SnakeView `json:"snakes,omitempty"`
	Apples []FoodView           `json:"apples,omitempty"`

	// ApplesEaten - персонализация: счет именно этого получателя
	ApplesEaten *int `json:"applesEaten,omitempty"`

	// Метаданные отображения по id змейки
	Usernames    map[string]string `json:"usernames,omitempty"`
	PlayerColors map[string]string `json:"playerColors,omitempty"`
	PlayerShapes map[string]string `json:"playerShapes,omitempty"`

	// Username + Message: чат и ответы логина
	Username string `json:"username,omitempty"`
	Message  string `json:"message,omitempty"`

	// Списки разблокированной косметики (login-success, auto-login-success)
	OwnedColors []string `json:"ownedColors,omitempty"`
	OwnedShapes []string `json:"ownedShapes,omitempty"`

	// Paused - эхо команды pause, уходит только отправителю
	Paused *bool `json:"paused,omitempty"`
}

// SnakeView это DTO одной змейки в снапшоте
type SnakeView struct {
	Body []PositionView `json:"body"`

	Alive  bool `json:"alive"`
	Paused bool `json:"paused"`

	Color string `json:"color"`
	Shape string `json:"shape"`

	// Остаток тиков активных эффектов (0 = не активен)
	SpeedBoost int `json:"speedBoost,omitempty"`
	Invincible int `json:"invincible,omitempty"`

	ApplesEaten int `json:"applesEaten"`
}

// FoodView это DTO яблока
type FoodView struct {
	X    int    `json:"x"`
	Y    int    `json:"y"`
	Kind string `json:"kind"`
}

// PositionView - клетка поля в DTO
type PositionView struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// IntPtr - хелпер для полей-указателей конверта
func IntPtr(v int) *int { return &v }

// BoolPtr - хелпер для полей-указателей конверта
func BoolPtr(v bool) *bool { return &v }
