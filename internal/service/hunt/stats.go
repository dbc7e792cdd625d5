package hunt

import (
	"bonushunt_backend/internal/model"

	"github.com/shopspring/decimal"
)

// Recompute - пересчет производной статистики ханта по полному списку слотов.
// Инкрементальных обновлений нет: слотов мало, при каждой мутации
// пересчитываем все с нуля
func Recompute(slots []model.Slot, startingBalance decimal.NullDecimal) model.HuntStats {
	stats := model.HuntStats{
		TotalCount: len(slots),
	}

	betCount := 0
	for _, slot := range slots {
		if slot.BetAmount.Valid {
			stats.TotalWagered = stats.TotalWagered.Add(slot.BetAmount.Decimal)
			betCount++
		}

		if !slot.IsPlayed {
			continue
		}
		stats.PlayedCount++

		// Несыгранные слоты и слоты без записанного выигрыша считаются нулем
		if slot.WinAmount.Valid {
			stats.TotalWon = stats.TotalWon.Add(slot.WinAmount.Decimal)

			if !stats.HighestWin.Valid || slot.WinAmount.Decimal.GreaterThan(stats.HighestWin.Decimal) {
				stats.HighestWin = slot.WinAmount
			}
		}

		if slot.Multiplier.Valid {
			if !stats.HighestMultiplier.Valid || slot.Multiplier.Decimal.GreaterThan(stats.HighestMultiplier.Decimal) {
				stats.HighestMultiplier = slot.Multiplier
			}
		}
	}

	stats.NetProfit = stats.TotalWon.Sub(stats.TotalWagered)

	start := decimal.Zero
	if startingBalance.Valid {
		start = startingBalance.Decimal
	}
	stats.CurrentBalance = start.Add(stats.NetProfit)

	// Средняя ставка считается только по слотам с заполненной ставкой
	if betCount > 0 {
		stats.AverageBet = decimal.NullDecimal{
			Decimal: stats.TotalWagered.Div(decimal.NewFromInt(int64(betCount))),
			Valid:   true,
		}
	}

	return stats
}
