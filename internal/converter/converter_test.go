package converter

import (
	admindto "bonushunt_backend/internal/api/dto/admin"
	guessdto "bonushunt_backend/internal/api/dto/guess"
	"bonushunt_backend/internal/model"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func strPtr(s string) *string { return &s }

func TestToGuessModel(t *testing.T) {
	huntID := uuid.New()
	userID := uuid.New()

	tests := []struct {
		name    string
		amount  string
		wantErr bool
	}{
		{"valid amount", "12000.50", false},
		{"zero rejected", "0", true},
		{"negative rejected", "-100", true},
		{"not a number", "abc", true},
		{"empty rejected", "", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			guess, err := ToGuessModel(guessdto.SubmitGuessRequest{GuessAmount: tc.amount}, huntID, userID)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tc.amount)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !guess.GuessAmount.Equal(decimal.RequireFromString(tc.amount)) {
				t.Errorf("amount: expected %s, got %s", tc.amount, guess.GuessAmount)
			}
			if guess.HuntID != huntID || guess.UserID != userID {
				t.Error("hunt/user ids not carried over")
			}
		})
	}
}

func TestToHuntModel(t *testing.T) {
	hunt, err := ToHuntModel(admindto.HuntRequest{
		Title:           "Friday hunt",
		Date:            "2026-03-06",
		Currency:        "EUR",
		Status:          "to_be_played",
		StartingBalance: strPtr("1000"),
		WinnerPoints:    500,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if hunt.Status != model.HuntStatusToBePlayed {
		t.Errorf("status: expected to_be_played, got %s", hunt.Status)
	}
	if !hunt.StartingBalance.Valid || !hunt.StartingBalance.Decimal.Equal(decimal.NewFromInt(1000)) {
		t.Errorf("starting balance: expected 1000, got %v", hunt.StartingBalance)
	}
	if hunt.TargetBalance.Valid {
		t.Error("missing target balance must stay empty")
	}
}

func TestToHuntModelRejects(t *testing.T) {
	valid := admindto.HuntRequest{
		Title:  "Friday hunt",
		Date:   "2026-03-06",
		Status: "to_be_played",
	}

	tests := []struct {
		name   string
		mutate func(req *admindto.HuntRequest)
	}{
		{"bad date", func(req *admindto.HuntRequest) { req.Date = "06.03.2026" }},
		{"negative balance", func(req *admindto.HuntRequest) { req.StartingBalance = strPtr("-5") }},
		{"non-numeric balance", func(req *admindto.HuntRequest) { req.EndingBalance = strPtr("12k") }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := valid
			tc.mutate(&req)
			if _, err := ToHuntModel(req); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestToSlotInput(t *testing.T) {
	input, err := ToSlotInput(admindto.SlotRequest{
		Name:      "Gates of Olympus",
		Provider:  "Pragmatic Play",
		BetAmount: strPtr("20"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !input.BetAmount.Valid || !input.BetAmount.Decimal.Equal(decimal.NewFromInt(20)) {
		t.Errorf("bet amount: expected 20, got %v", input.BetAmount)
	}
	if input.WinAmount.Valid {
		t.Error("missing win amount must stay empty")
	}

	if _, err := ToSlotInput(admindto.SlotRequest{Name: "x", BetAmount: strPtr("-1")}); err == nil {
		t.Error("expected error for negative bet")
	}
}

func TestNullDecimalString(t *testing.T) {
	if got := nullDecimalString(decimal.NullDecimal{}); got != nil {
		t.Errorf("empty value: expected nil, got %q", *got)
	}

	got := nullDecimalString(decimal.NullDecimal{Decimal: decimal.NewFromInt(75), Valid: true})
	if got == nil || *got != "75" {
		t.Errorf("expected \"75\", got %v", got)
	}
}
