package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Slot struct {
	ID       uuid.UUID
	HuntID   uuid.UUID
	Name     string
	Provider string

	BetAmount decimal.NullDecimal
	WinAmount decimal.NullDecimal
	// Производный (win / bet), если не задан вручную
	Multiplier decimal.NullDecimal

	// Выставляется автоматически при записи WinAmount
	IsPlayed bool
	// Порядок отображения, уникален в пределах ханта
	SortOrder int

	CreatedAt time.Time
}

// SlotInput - данные формы создания/редактирования слота.
// Multiplier, если задан, имеет приоритет над производным значением
type SlotInput struct {
	Name       string
	Provider   string
	BetAmount  decimal.NullDecimal
	WinAmount  decimal.NullDecimal
	Multiplier decimal.NullDecimal
}
