package hunt

import (
	"bonushunt_backend/internal/model"

	"github.com/shopspring/decimal"
)

// WinnerResult - выбранный прогноз и его расстояние до итогового баланса
type WinnerResult struct {
	Winner   model.Guess
	Distance decimal.Decimal
}

// SelectWinner - выбор победителя игры "угадай итоговый баланс":
// прогноз с минимальным |guess - target|. При равном расстоянии побеждает
// более ранний прогноз (created_at, затем id) - порядок входного списка
// на результат не влияет. Пустой список прогнозов - победителя нет
func SelectWinner(target decimal.Decimal, guesses []model.Guess) *WinnerResult {
	if len(guesses) == 0 {
		return nil
	}

	best := guesses[0]
	bestDistance := guesses[0].GuessAmount.Sub(target).Abs()

	for _, guess := range guesses[1:] {
		distance := guess.GuessAmount.Sub(target).Abs()

		switch distance.Cmp(bestDistance) {
		case -1:
			best = guess
			bestDistance = distance
		case 0:
			// Явный tie-break: (distance, created_at, id)
			if guess.CreatedAt.Before(best.CreatedAt) ||
				(guess.CreatedAt.Equal(best.CreatedAt) && guess.ID.String() < best.ID.String()) {
				best = guess
			}
		}
	}

	return &WinnerResult{
		Winner:   best,
		Distance: bestDistance,
	}
}
