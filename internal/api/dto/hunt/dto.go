package hunt

import "time"

type HuntResponse struct {
	ID                string    `json:"id"`
	Title             string    `json:"title"`
	Date              string    `json:"date"`     // YYYY-MM-DD
	Currency          string    `json:"currency"` // Код валюты ханта
	Status            string    `json:"status"`   // to_be_played | ongoing | complete
	StartingBalance   *string   `json:"starting_balance"`
	TargetBalance     *string   `json:"target_balance"`
	EndingBalance     *string   `json:"ending_balance"`
	AverageBet        *string   `json:"average_bet"`
	HighestWin        *string   `json:"highest_win"`
	HighestMultiplier *string   `json:"highest_multiplier"`
	WinnerPoints      int64     `json:"winner_points"`
	WinnerUserID      *string   `json:"winner_user_id"`
	CreatedAt         time.Time `json:"created_at"`
}

type SlotResponse struct {
	ID         string  `json:"id"`
	HuntID     string  `json:"hunt_id"`
	Name       string  `json:"name"`
	Provider   string  `json:"provider"`
	BetAmount  *string `json:"bet_amount"`
	WinAmount  *string `json:"win_amount"`
	Multiplier *string `json:"multiplier"`
	IsPlayed   bool    `json:"is_played"`
	SortOrder  int     `json:"sort_order"`
}

type StatsResponse struct {
	TotalWagered      string  `json:"total_wagered"`
	TotalWon          string  `json:"total_won"`
	NetProfit         string  `json:"net_profit"`
	CurrentBalance    string  `json:"current_balance"`
	AverageBet        *string `json:"average_bet"`
	HighestWin        *string `json:"highest_win"`
	HighestMultiplier *string `json:"highest_multiplier"`
	PlayedCount       int     `json:"played_count"`
	TotalCount        int     `json:"total_count"`
}

type HuntDetailsResponse struct {
	Hunt  HuntResponse   `json:"hunt"`
	Slots []SlotResponse `json:"slots"`
	Stats StatsResponse  `json:"stats"`
}
