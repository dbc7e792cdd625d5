package hunt

import (
	"bonushunt_backend/internal/model"

	"github.com/shopspring/decimal"
)

// CalculateMultiplier - производный множитель слота: win / bet.
// Если ставка отсутствует или не положительна - делить не на что,
// если выигрыш отсутствует - слот еще не сыгран; в обоих случаях
// возвращается пустое значение. Результат не округляется
func CalculateMultiplier(bet, win decimal.NullDecimal) decimal.NullDecimal {
	if !bet.Valid || bet.Decimal.Sign() <= 0 {
		return decimal.NullDecimal{}
	}
	if !win.Valid {
		return decimal.NullDecimal{}
	}

	return decimal.NullDecimal{
		Decimal: win.Decimal.Div(bet.Decimal),
		Valid:   true,
	}
}

// resolveMultiplier - множитель для записи в слот.
// Заданный вручную множитель всегда имеет приоритет над производным
func resolveMultiplier(input model.SlotInput) decimal.NullDecimal {
	if input.Multiplier.Valid {
		return input.Multiplier
	}
	return CalculateMultiplier(input.BetAmount, input.WinAmount)
}
