// Package models содержит доменные структуры, описывающие стадо,
// а также вспомогательные типы для работы с данными из внешних источников (например, JSON-запросы).
package models

import "time"

// Herd представляет собой стадо коров, принадлежащее одному пользователю.
// Поля LocationLine1 и LocationLine2 могут быть nil — адрес не указан.
type Herd struct {
	ID            int       `json:"id"`                       // Уникальный идентификатор стада
	Name          string    `json:"name"`                     // Название стада
	CowCount      int       `json:"cow_count"`                // Количество коров (неотрицательное)
	LocationLine1 *string   `json:"location_line1,omitempty"` // Первая строка адреса
	LocationLine2 *string   `json:"location_line2,omitempty"` // Вторая строка адреса
	CreatedAt     time.Time `json:"created_at"`               // Дата создания записи
	UserID        int       `json:"user_id"`                  // Идентификатор пользователя-владельца
}

// DummyHerd используется для приёма данных стада из JSON-запроса,
// прежде чем конвертировать их в Herd. Применяется и при создании,
// и при полном обновлении записи.
type DummyHerd struct {
	Name          string  `json:"name" validate:"required"`        // Название стада
	CowCount      int     `json:"cow_count" validate:"gte=0"`      // Количество коров (>= 0)
	LocationLine1 *string `json:"location_line1,omitempty"`        // Первая строка адреса
	LocationLine2 *string `json:"location_line2,omitempty"`        // Вторая строка адреса
}
