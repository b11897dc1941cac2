package domain

import "strings"

// ActionType - внутренний числовой идентификатор команды клиента
type ActionType uint8

const (
	ActionUnknown ActionType = iota
	ActionLogin
	ActionAutoLogin
	ActionRegister
	ActionSaveProgress
	ActionLogout
	ActionDirection
	ActionPause
	ActionRevive
	ActionBuyColor
	ActionBuyShape
	ActionUseColor
	ActionUseShape
	ActionChatMessage
)

// Маппинг для конвертации JSON -> Domain.
// Имена совпадают с событиями, которые шлет браузерный клиент.
var actionStringToCmd = map[string]ActionType{
	"login":         ActionLogin,
	"auto-login":    ActionAutoLogin,
	"register":      ActionRegister,
	"save-progress": ActionSaveProgress,
	"logout":        ActionLogout,
	"direction":     ActionDirection,
	"pause":         ActionPause,
	"revive":        ActionRevive,
	"buy-color":     ActionBuyColor,
	"buy-shape":     ActionBuyShape,
	"use-color":     ActionUseColor,
	"use-shape":     ActionUseShape,
	"chat-message":  ActionChatMessage,
}

// Маппинг для логов Domain -> String
var actionCmdToString = func() map[ActionType]string {
	m := make(map[ActionType]string, len(actionStringToCmd))
	for s, a := range actionStringToCmd {
		m[a] = s
	}
	return m
}()

// ParseAction конвертирует строку из JSON в ActionType
func ParseAction(s string) ActionType {
	// Делаем нечувствительным к регистру для надежности
	if val, ok := actionStringToCmd[strings.ToLower(s)]; ok {
		return val
	}
	return ActionUnknown
}

// String реализует интерфейс Stringer (для fmt.Printf)
func (a ActionType) String() string {
	if val, ok := actionCmdToString[a]; ok {
		return val
	}
	return "unknown"
}
