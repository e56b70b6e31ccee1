// Package models содержит доменные структуры, описывающие запись надоя молока
// и агрегированную статистику по надоям.
package models

import "time"

// Production представляет собой одну датированную запись надоя молока для стада.
// Поля FatPercentage и ProteinPercentage могут быть nil — показатель не измерялся.
type Production struct {
	ID                int       `json:"id"`                           // Уникальный идентификатор записи
	Date              time.Time `json:"date"`                         // Дата надоя
	AmountLiters      float64   `json:"amount_liters"`                // Объём молока в литрах (>= 0)
	FatPercentage     *float64  `json:"fat_percentage,omitempty"`     // Процент жирности
	ProteinPercentage *float64  `json:"protein_percentage,omitempty"` // Процент белка
	CreatedAt         time.Time `json:"created_at"`                   // Дата создания записи
	HerdID            int       `json:"herd_id"`                      // Идентификатор стада
}

// DummyProduction используется для приёма данных надоя из JSON-запроса,
// прежде чем конвертировать их в Production. Применяется и при создании,
// и при полном обновлении записи.
type DummyProduction struct {
	Date              time.Time `json:"date" validate:"required"`               // Дата надоя
	AmountLiters      float64   `json:"amount_liters" validate:"gte=0"`         // Объём молока в литрах
	FatPercentage     *float64  `json:"fat_percentage,omitempty"`               // Процент жирности
	ProteinPercentage *float64  `json:"protein_percentage,omitempty"`           // Процент белка
	HerdID            int       `json:"herd_id" validate:"required"`            // Идентификатор стада
}

// ProductionStats содержит агрегированную статистику надоев за выбранный период.
type ProductionStats struct {
	TotalLiters   float64 `json:"total_liters"`    // Суммарный объём молока в литрах
	AveragePerDay float64 `json:"average_per_day"` // Средний объём за день с записями
	DaysRecorded  int     `json:"days_recorded"`   // Количество различных дат с записями
	LitersPerCow  float64 `json:"liters_per_cow"`  // Средний объём за день на одну корову
}

// StatsFilter описывает ограничения выборки для подсчёта статистики надоев.
// HerdID и Cutoff могут быть nil — соответствующий фильтр не применяется.
type StatsFilter struct {
	UserID int        // Владелец, по которому ограничивается выборка
	HerdID *int       // Конкретное стадо, опционально
	Cutoff *time.Time // Нижняя граница даты надоя, опционально
}
