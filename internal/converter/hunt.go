package converter

import (
	dto "bonushunt_backend/internal/api/dto/hunt"
	"bonushunt_backend/internal/model"

	"github.com/shopspring/decimal"
)

func ToHuntResponse(hunt model.Hunt) dto.HuntResponse {
	var winnerUserID *string
	if hunt.WinnerUserID.Valid {
		id := hunt.WinnerUserID.UUID.String()
		winnerUserID = &id
	}

	return dto.HuntResponse{
		ID:                hunt.ID.String(),
		Title:             hunt.Title,
		Date:              hunt.Date.Format("2006-01-02"),
		Currency:          hunt.Currency,
		Status:            string(hunt.Status),
		StartingBalance:   nullDecimalString(hunt.StartingBalance),
		TargetBalance:     nullDecimalString(hunt.TargetBalance),
		EndingBalance:     nullDecimalString(hunt.EndingBalance),
		AverageBet:        nullDecimalString(hunt.AverageBet),
		HighestWin:        nullDecimalString(hunt.HighestWin),
		HighestMultiplier: nullDecimalString(hunt.HighestMultiplier),
		WinnerPoints:      hunt.WinnerPoints,
		WinnerUserID:      winnerUserID,
		CreatedAt:         hunt.CreatedAt,
	}
}

func ToHuntResponses(hunts []model.Hunt) []dto.HuntResponse {
	result := make([]dto.HuntResponse, len(hunts))
	for i, hunt := range hunts {
		result[i] = ToHuntResponse(hunt)
	}
	return result
}

func ToSlotResponse(slot model.Slot) dto.SlotResponse {
	return dto.SlotResponse{
		ID:         slot.ID.String(),
		HuntID:     slot.HuntID.String(),
		Name:       slot.Name,
		Provider:   slot.Provider,
		BetAmount:  nullDecimalString(slot.BetAmount),
		WinAmount:  nullDecimalString(slot.WinAmount),
		Multiplier: nullDecimalString(slot.Multiplier),
		IsPlayed:   slot.IsPlayed,
		SortOrder:  slot.SortOrder,
	}
}

func ToSlotResponses(slots []model.Slot) []dto.SlotResponse {
	result := make([]dto.SlotResponse, len(slots))
	for i, slot := range slots {
		result[i] = ToSlotResponse(slot)
	}
	return result
}

func ToStatsResponse(stats model.HuntStats) dto.StatsResponse {
	return dto.StatsResponse{
		TotalWagered:      stats.TotalWagered.String(),
		TotalWon:          stats.TotalWon.String(),
		NetProfit:         stats.NetProfit.String(),
		CurrentBalance:    stats.CurrentBalance.String(),
		AverageBet:        nullDecimalString(stats.AverageBet),
		HighestWin:        nullDecimalString(stats.HighestWin),
		HighestMultiplier: nullDecimalString(stats.HighestMultiplier),
		PlayedCount:       stats.PlayedCount,
		TotalCount:        stats.TotalCount,
	}
}

func ToHuntDetailsResponse(details model.HuntDetails) dto.HuntDetailsResponse {
	return dto.HuntDetailsResponse{
		Hunt:  ToHuntResponse(details.Hunt),
		Slots: ToSlotResponses(details.Slots),
		Stats: ToStatsResponse(details.Stats),
	}
}

func nullDecimalString(d decimal.NullDecimal) *string {
	if !d.Valid {
		return nil
	}
	s := d.Decimal.String()
	return &s
}
