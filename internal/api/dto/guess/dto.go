package guess

import "time"

type SubmitGuessRequest struct {
	GuessAmount string `json:"guess_amount" validate:"required,numeric"` // Прогноз итогового баланса, > 0
}

type GuessResponse struct {
	ID          string    `json:"id"`
	HuntID      string    `json:"hunt_id"`
	UserID      string    `json:"user_id"`
	GuessAmount string    `json:"guess_amount"`
	// NULL, пока победитель не определен
	PointsEarned *int64    `json:"points_earned"`
	CreatedAt    time.Time `json:"created_at"`
}
