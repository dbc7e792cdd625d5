package converter

import (
	dto "bonushunt_backend/internal/api/dto/guess"
	"bonushunt_backend/internal/model"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ToGuessModel - прогноз из запроса пользователя. Сумма должна быть строго
// положительной; все нечисловое отсекается до попадания в сервис
func ToGuessModel(req dto.SubmitGuessRequest, huntID, userID uuid.UUID) (model.Guess, error) {
	amount, err := decimal.NewFromString(req.GuessAmount)
	if err != nil {
		return model.Guess{}, fmt.Errorf("invalid guess_amount: %w", err)
	}
	if !amount.IsPositive() {
		return model.Guess{}, fmt.Errorf("guess_amount must be positive")
	}

	return model.Guess{
		HuntID:      huntID,
		UserID:      userID,
		GuessAmount: amount,
	}, nil
}

func ToGuessResponse(guess model.Guess) dto.GuessResponse {
	var pointsEarned *int64
	if guess.PointsEarned.Valid {
		points := guess.PointsEarned.Int64
		pointsEarned = &points
	}

	return dto.GuessResponse{
		ID:           guess.ID.String(),
		HuntID:       guess.HuntID.String(),
		UserID:       guess.UserID.String(),
		GuessAmount:  guess.GuessAmount.String(),
		PointsEarned: pointsEarned,
		CreatedAt:    guess.CreatedAt,
	}
}

func ToGuessResponses(guesses []model.Guess) []dto.GuessResponse {
	result := make([]dto.GuessResponse, len(guesses))
	for i, guess := range guesses {
		result[i] = ToGuessResponse(guess)
	}
	return result
}
