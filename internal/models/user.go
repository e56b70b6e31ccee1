// Package models содержит доменную модель пользователя системы,
// включающую данные учётной записи, хэш пароля и тип членства.
// Структура используется в бизнес‑логике и при работе с хранилищем.
package models

// Допустимые значения типа членства пользователя.
const (
	MembershipFree     = "free"
	MembershipAnnual   = "annual"
	MembershipLifetime = "lifetime"
)

// ValidMembership проверяет, что значение типа членства входит в список допустимых.
func ValidMembership(membership string) bool {
	switch membership {
	case MembershipFree, MembershipAnnual, MembershipLifetime:
		return true
	}
	return false
}

// User представляет зарегистрированного пользователя системы.
type User struct {
	ID             int    `json:"id"`              // Уникальный идентификатор пользователя
	Email          string `json:"email"`           // Электронная почта (уникальная)
	Username       string `json:"username"`        // Имя пользователя (уникальное, по умолчанию равно email)
	PasswordHash   string `json:"-"`               // Хэш пароля пользователя, наружу не отдается
	IsActive       bool   `json:"is_active"`       // Признак активной учётной записи
	MembershipType string `json:"membership_type"` // Тип членства: free, annual или lifetime
}

// DummyRegisterUser используется для приёма данных регистрации из JSON-запроса.
type DummyRegisterUser struct {
	Email    string `json:"email" validate:"required,email"`  // Электронная почта
	Password string `json:"password" validate:"required,min=6"` // Пароль в открытом виде
	Username string `json:"username,omitempty"`               // Имя пользователя, опционально
}

// DummyUpdateProfile используется для приёма данных обновления профиля.
// Все поля опциональны: отсутствующее поле остаётся без изменений.
type DummyUpdateProfile struct {
	Username *string `json:"username,omitempty"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
	Password *string `json:"password,omitempty"`
}
