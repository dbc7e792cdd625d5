package hunt

import (
	"bonushunt_backend/internal/model"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func playedSlot(bet, win string) model.Slot {
	return model.Slot{
		ID:         uuid.New(),
		BetAmount:  ndec(bet),
		WinAmount:  ndec(win),
		Multiplier: CalculateMultiplier(ndec(bet), ndec(win)),
		IsPlayed:   true,
	}
}

func pendingSlot(bet string) model.Slot {
	slot := model.Slot{ID: uuid.New()}
	if bet != "" {
		slot.BetAmount = ndec(bet)
	}
	return slot
}

func TestRecompute(t *testing.T) {
	tests := []struct {
		name            string
		slots           []model.Slot
		startingBalance decimal.NullDecimal

		totalWagered   string
		totalWon       string
		netProfit      string
		currentBalance string
		playedCount    int
		totalCount     int
	}{
		{
			name:            "empty hunt",
			slots:           nil,
			startingBalance: ndec("1000"),
			totalWagered:    "0",
			totalWon:        "0",
			netProfit:       "0",
			currentBalance:  "1000",
		},
		{
			name: "mid hunt",
			slots: []model.Slot{
				playedSlot("20", "150"),
				playedSlot("10", "0"),
				pendingSlot("40"),
			},
			startingBalance: ndec("1000"),
			totalWagered:    "70",
			totalWon:        "150",
			netProfit:       "80",
			currentBalance:  "1080",
			playedCount:     2,
			totalCount:      3,
		},
		{
			name: "losing hunt",
			slots: []model.Slot{
				playedSlot("100", "10"),
				playedSlot("100", "0"),
			},
			startingBalance: ndec("500"),
			totalWagered:    "200",
			totalWon:        "10",
			netProfit:       "-190",
			currentBalance:  "310",
			playedCount:     2,
			totalCount:      2,
		},
		{
			name: "no starting balance treated as zero",
			slots: []model.Slot{
				playedSlot("10", "25"),
			},
			startingBalance: decimal.NullDecimal{},
			totalWagered:    "10",
			totalWon:        "25",
			netProfit:       "15",
			currentBalance:  "15",
			playedCount:     1,
			totalCount:      1,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			stats := Recompute(tc.slots, tc.startingBalance)

			assertDecimal(t, tc.totalWagered, stats.TotalWagered, "total wagered")
			assertDecimal(t, tc.totalWon, stats.TotalWon, "total won")
			assertDecimal(t, tc.netProfit, stats.NetProfit, "net profit")
			assertDecimal(t, tc.currentBalance, stats.CurrentBalance, "current balance")
			assertEqual(t, tc.playedCount, stats.PlayedCount, "played count")
			assertEqual(t, tc.totalCount, stats.TotalCount, "total count")
		})
	}
}

func assertDecimal(t *testing.T, expected string, actual decimal.Decimal, msg string) {
	t.Helper()
	if !actual.Equal(dec(expected)) {
		t.Errorf("%s: expected %s, got %s", msg, expected, actual)
	}
}

func TestRecomputeHighestValues(t *testing.T) {
	slots := []model.Slot{
		playedSlot("20", "150"), // x7.5
		playedSlot("2", "90"),   // x45
		playedSlot("50", "200"), // x4
		pendingSlot("10"),
	}

	stats := Recompute(slots, ndec("1000"))

	if !stats.HighestWin.Valid || !stats.HighestWin.Decimal.Equal(dec("200")) {
		t.Errorf("highest win: expected 200, got %v", stats.HighestWin)
	}
	if !stats.HighestMultiplier.Valid || !stats.HighestMultiplier.Decimal.Equal(dec("45")) {
		t.Errorf("highest multiplier: expected 45, got %v", stats.HighestMultiplier)
	}
	// Средняя ставка по четырем слотам с заполненной ставкой
	if !stats.AverageBet.Valid || !stats.AverageBet.Decimal.Equal(dec("20.5")) {
		t.Errorf("average bet: expected 20.5, got %v", stats.AverageBet)
	}
}

func TestRecomputeAverageBetSkipsMissingBets(t *testing.T) {
	slots := []model.Slot{
		playedSlot("30", "10"),
		pendingSlot(""),
	}

	stats := Recompute(slots, ndec("100"))

	if !stats.AverageBet.Valid || !stats.AverageBet.Decimal.Equal(dec("30")) {
		t.Errorf("average bet: expected 30, got %v", stats.AverageBet)
	}
}

func TestRecomputeNoBetsNoAverage(t *testing.T) {
	stats := Recompute([]model.Slot{pendingSlot(""), pendingSlot("")}, ndec("100"))

	if stats.AverageBet.Valid {
		t.Errorf("average bet must be empty without bets, got %v", stats.AverageBet)
	}
	if stats.HighestWin.Valid {
		t.Errorf("highest win must be empty, got %v", stats.HighestWin)
	}
}

func TestReadyToComplete(t *testing.T) {
	tests := []struct {
		name     string
		stats    model.HuntStats
		expected bool
	}{
		{"empty hunt never completes", model.HuntStats{}, false},
		{"half played", model.HuntStats{PlayedCount: 1, TotalCount: 2}, false},
		{"all played", model.HuntStats{PlayedCount: 2, TotalCount: 2}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assertEqual(t, tc.expected, tc.stats.ReadyToComplete(), "ready to complete")
		})
	}
}
