package model

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Guess - прогноз пользователя на итоговый баланс ханта.
// Не более одного прогноза на пару (хант, пользователь), после вставки неизменяем
type Guess struct {
	ID          uuid.UUID
	HuntID      uuid.UUID
	UserID      uuid.UUID
	GuessAmount decimal.Decimal
	// NULL до определения победителя
	PointsEarned sql.NullInt64
	CreatedAt    time.Time
}
