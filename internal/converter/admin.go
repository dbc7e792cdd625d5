package converter

import (
	dto "bonushunt_backend/internal/api/dto/admin"
	"bonushunt_backend/internal/model"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// ToHuntModel - модель ханта из админской формы.
// Числовые поля приходят строками и парсятся здесь, на границе
func ToHuntModel(req dto.HuntRequest) (model.Hunt, error) {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return model.Hunt{}, fmt.Errorf("invalid date: %w", err)
	}

	startingBalance, err := parseAmount(req.StartingBalance, "starting_balance")
	if err != nil {
		return model.Hunt{}, err
	}

	targetBalance, err := parseAmount(req.TargetBalance, "target_balance")
	if err != nil {
		return model.Hunt{}, err
	}

	endingBalance, err := parseAmount(req.EndingBalance, "ending_balance")
	if err != nil {
		return model.Hunt{}, err
	}

	return model.Hunt{
		Title:           req.Title,
		Date:            date,
		Currency:        req.Currency,
		Status:          model.HuntStatus(req.Status),
		StartingBalance: startingBalance,
		TargetBalance:   targetBalance,
		EndingBalance:   endingBalance,
		WinnerPoints:    req.WinnerPoints,
	}, nil
}

// ToSlotInput - данные слота из админской формы
func ToSlotInput(req dto.SlotRequest) (model.SlotInput, error) {
	betAmount, err := parseAmount(req.BetAmount, "bet_amount")
	if err != nil {
		return model.SlotInput{}, err
	}

	winAmount, err := parseAmount(req.WinAmount, "win_amount")
	if err != nil {
		return model.SlotInput{}, err
	}

	multiplier, err := parseAmount(req.Multiplier, "multiplier")
	if err != nil {
		return model.SlotInput{}, err
	}

	return model.SlotInput{
		Name:       req.Name,
		Provider:   req.Provider,
		BetAmount:  betAmount,
		WinAmount:  winAmount,
		Multiplier: multiplier,
	}, nil
}

func ToSlotInputs(reqs []dto.SlotRequest) ([]model.SlotInput, error) {
	inputs := make([]model.SlotInput, len(reqs))
	for i, req := range reqs {
		input, err := ToSlotInput(req)
		if err != nil {
			return nil, err
		}
		inputs[i] = input
	}
	return inputs, nil
}

func ToSettlementResponse(result model.SettlementResult) dto.SettlementResponse {
	return dto.SettlementResponse{
		WinnerUserID:  result.Winner.UserID.String(),
		GuessAmount:   result.Winner.GuessAmount.String(),
		Distance:      result.Distance.String(),
		PointsAwarded: result.PointsAwarded,
	}
}

// parseAmount - неотрицательная денежная сумма из опциональной строки
func parseAmount(raw *string, field string) (decimal.NullDecimal, error) {
	if raw == nil || *raw == "" {
		return decimal.NullDecimal{}, nil
	}

	value, err := decimal.NewFromString(*raw)
	if err != nil {
		return decimal.NullDecimal{}, fmt.Errorf("invalid %s: %w", field, err)
	}
	if value.Sign() < 0 {
		return decimal.NullDecimal{}, fmt.Errorf("%s must not be negative", field)
	}

	return decimal.NullDecimal{Decimal: value, Valid: true}, nil
}
