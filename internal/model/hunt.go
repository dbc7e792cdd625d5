package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type HuntStatus string

const (
	HuntStatusToBePlayed HuntStatus = "to_be_played"
	HuntStatusOngoing    HuntStatus = "ongoing"
	HuntStatusComplete   HuntStatus = "complete"
)

// ValidHuntStatus проверяет, что строка является допустимым статусом ханта
func ValidHuntStatus(s string) bool {
	switch HuntStatus(s) {
	case HuntStatusToBePlayed, HuntStatusOngoing, HuntStatusComplete:
		return true
	}
	return false
}

type Hunt struct {
	ID              uuid.UUID
	Title           string
	Date            time.Time
	Currency        string
	Status          HuntStatus
	StartingBalance decimal.NullDecimal
	TargetBalance   decimal.NullDecimal
	EndingBalance   decimal.NullDecimal

	// Кэшированная статистика, пересчитывается при каждой мутации слотов
	AverageBet        decimal.NullDecimal
	HighestWin        decimal.NullDecimal
	HighestMultiplier decimal.NullDecimal

	// Очки победителю игры "угадай итоговый баланс"
	WinnerPoints int64
	// Устанавливается не более одного раза и никогда не перезаписывается
	WinnerUserID uuid.NullUUID

	CreatedAt time.Time
}

// HuntStats - производная статистика ханта, вычисляется из полного списка слотов
type HuntStats struct {
	TotalWagered      decimal.Decimal
	TotalWon          decimal.Decimal
	NetProfit         decimal.Decimal
	CurrentBalance    decimal.Decimal
	AverageBet        decimal.NullDecimal
	HighestWin        decimal.NullDecimal
	HighestMultiplier decimal.NullDecimal
	PlayedCount       int
	TotalCount        int
}

// ReadyToComplete - хант готов к автозавершению, когда сыгран каждый слот.
// Пустой хант не завершается никогда
func (s HuntStats) ReadyToComplete() bool {
	return s.TotalCount > 0 && s.PlayedCount == s.TotalCount
}

// HuntDetails - хант вместе со слотами и актуальной статистикой для страницы ханта
type HuntDetails struct {
	Hunt  Hunt
	Slots []Slot
	Stats HuntStats
}

// SettlementResult - результат определения победителя
type SettlementResult struct {
	Winner        Guess
	Distance      decimal.Decimal
	PointsAwarded int64
}
