package domain

// Role - уровень прав аккаунта. Проверка способностей идет через методы,
// а не через сравнение с конкретным именем пользователя.
type Role string

const (
	RolePlayer    Role = "player"
	RoleModerator Role = "moderator"
)

// CanModerate возвращает true, если роли доступны чат-команды модерации
func (r Role) CanModerate() bool {
	return r == RoleModerator
}

// Account - запись в хранилище учетных записей (users.json)
type Account struct {
	Username string `json:"username"`
	Password string `json:"password"` // bcrypt-хеш, никогда не сам пароль
	Apples   int    `json:"apples"`

	OwnedColors []string `json:"ownedColors,omitempty"`
	OwnedShapes []string `json:"ownedShapes,omitempty"`

	Role Role `json:"role,omitempty"` // пустая роль читается как player
}

// EffectiveRole нормализует пустое поле старых записей
func (a *Account) EffectiveRole() Role {
	if a.Role == "" {
		return RolePlayer
	}
	return a.Role
}
