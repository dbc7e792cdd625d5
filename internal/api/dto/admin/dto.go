package admin

type HuntRequest struct {
	Title           string  `json:"title" validate:"required"`
	Date            string  `json:"date" validate:"required,datetime=2006-01-02"`
	Currency        string  `json:"currency" validate:"required"`
	Status          string  `json:"status" validate:"omitempty,oneof=to_be_played ongoing complete"`
	StartingBalance *string `json:"starting_balance" validate:"omitempty,numeric"`
	TargetBalance   *string `json:"target_balance" validate:"omitempty,numeric"`
	EndingBalance   *string `json:"ending_balance" validate:"omitempty,numeric"`
	WinnerPoints    int64   `json:"winner_points" validate:"omitempty,gte=0"`
}

type SlotRequest struct {
	Name      string  `json:"name" validate:"required"`
	Provider  string  `json:"provider"`
	BetAmount *string `json:"bet_amount" validate:"omitempty,numeric"`
	WinAmount *string `json:"win_amount" validate:"omitempty,numeric"`
	// Заданный вручную множитель; если не передан - вычисляется как win / bet
	Multiplier *string `json:"multiplier" validate:"omitempty,numeric"`
}

type QuickAddSlotsRequest struct {
	Slots []SlotRequest `json:"slots" validate:"required,min=1,dive"`
}

type ReorderSlotsRequest struct {
	SlotIDs []string `json:"slot_ids" validate:"required,min=1,dive,uuid"`
}

type SettlementResponse struct {
	WinnerUserID  string `json:"winner_user_id"`
	GuessAmount   string `json:"guess_amount"`
	Distance      string `json:"distance"`
	PointsAwarded int64  `json:"points_awarded"`
}
