package guess

import (
	"bonushunt_backend/internal/model"
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type fakeHuntRepo struct {
	hunts map[uuid.UUID]*model.Hunt
}

func (r *fakeHuntRepo) Create(_ context.Context, hunt *model.Hunt) error { return nil }
func (r *fakeHuntRepo) Update(_ context.Context, hunt *model.Hunt) error { return nil }
func (r *fakeHuntRepo) Delete(_ context.Context, id uuid.UUID) error     { return nil }

func (r *fakeHuntRepo) Get(_ context.Context, id uuid.UUID) (*model.Hunt, error) {
	hunt, ok := r.hunts[id]
	if !ok {
		return nil, model.ErrHuntNotFound
	}
	return hunt, nil
}

func (r *fakeHuntRepo) List(_ context.Context, _ *model.HuntStatus) ([]model.Hunt, error) {
	return nil, nil
}

func (r *fakeHuntRepo) ListUnfinished(_ context.Context) ([]model.Hunt, error) { return nil, nil }

func (r *fakeHuntRepo) UpdateStats(_ context.Context, _ uuid.UUID, _ model.HuntStats) error {
	return nil
}

func (r *fakeHuntRepo) SetStatus(_ context.Context, _ uuid.UUID, _ model.HuntStatus) error {
	return nil
}

func (r *fakeHuntRepo) Complete(_ context.Context, _ uuid.UUID, _ decimal.Decimal) error {
	return nil
}

func (r *fakeHuntRepo) SetWinner(_ context.Context, _ uuid.UUID, _ uuid.UUID) (bool, error) {
	return false, nil
}

type fakeGuessRepo struct {
	guesses []model.Guess
}

func (r *fakeGuessRepo) Create(_ context.Context, guess *model.Guess) error {
	for _, existing := range r.guesses {
		if existing.HuntID == guess.HuntID && existing.UserID == guess.UserID {
			return model.ErrGuessExists
		}
	}
	r.guesses = append(r.guesses, *guess)
	return nil
}

func (r *fakeGuessRepo) ListByHunt(_ context.Context, huntID uuid.UUID) ([]model.Guess, error) {
	var result []model.Guess
	for _, guess := range r.guesses {
		if guess.HuntID == huntID {
			result = append(result, guess)
		}
	}
	return result, nil
}

func (r *fakeGuessRepo) SetPointsEarned(_ context.Context, _ uuid.UUID, _ int64) error { return nil }

func newGuessService(hunts ...*model.Hunt) (*serv, *fakeGuessRepo) {
	huntRepo := &fakeHuntRepo{hunts: make(map[uuid.UUID]*model.Hunt)}
	for _, h := range hunts {
		huntRepo.hunts[h.ID] = h
	}
	guessRepo := &fakeGuessRepo{}
	return NewGuessService(guessRepo, huntRepo).(*serv), guessRepo
}

func TestSubmit(t *testing.T) {
	hunt := &model.Hunt{ID: uuid.New(), Status: model.HuntStatusOngoing}
	s, repo := newGuessService(hunt)

	userID := uuid.New()
	created, err := s.Submit(context.Background(), model.Guess{
		HuntID:      hunt.ID,
		UserID:      userID,
		GuessAmount: decimal.NewFromInt(12000),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if created.ID == uuid.Nil {
		t.Error("expected generated id")
	}
	if len(repo.guesses) != 1 {
		t.Fatalf("expected 1 stored guess, got %d", len(repo.guesses))
	}
	if repo.guesses[0].UserID != userID {
		t.Errorf("stored user id: expected %s, got %s", userID, repo.guesses[0].UserID)
	}
}

func TestSubmitDuplicate(t *testing.T) {
	hunt := &model.Hunt{ID: uuid.New(), Status: model.HuntStatusOngoing}
	s, _ := newGuessService(hunt)

	userID := uuid.New()
	guess := model.Guess{HuntID: hunt.ID, UserID: userID, GuessAmount: decimal.NewFromInt(12000)}

	if _, err := s.Submit(context.Background(), guess); err != nil {
		t.Fatalf("first submit failed: %v", err)
	}

	// Повторный прогноз того же пользователя отклоняется, первый остается
	guess.GuessAmount = decimal.NewFromInt(9000)
	_, err := s.Submit(context.Background(), guess)
	if !errors.Is(err, model.ErrGuessExists) {
		t.Fatalf("expected ErrGuessExists, got %v", err)
	}
}

func TestSubmitClosedHunt(t *testing.T) {
	tests := []struct {
		name string
		hunt model.Hunt
	}{
		{
			name: "hunt complete",
			hunt: model.Hunt{ID: uuid.New(), Status: model.HuntStatusComplete},
		},
		{
			name: "winner already determined",
			hunt: model.Hunt{
				ID:           uuid.New(),
				Status:       model.HuntStatusOngoing,
				WinnerUserID: uuid.NullUUID{UUID: uuid.New(), Valid: true},
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, _ := newGuessService(&tc.hunt)

			_, err := s.Submit(context.Background(), model.Guess{
				HuntID:      tc.hunt.ID,
				UserID:      uuid.New(),
				GuessAmount: decimal.NewFromInt(12000),
			})
			if !errors.Is(err, model.ErrGuessingClosed) {
				t.Fatalf("expected ErrGuessingClosed, got %v", err)
			}
		})
	}
}

func TestSubmitHuntNotFound(t *testing.T) {
	s, _ := newGuessService()

	_, err := s.Submit(context.Background(), model.Guess{
		HuntID:      uuid.New(),
		UserID:      uuid.New(),
		GuessAmount: decimal.NewFromInt(12000),
	})
	if !errors.Is(err, model.ErrHuntNotFound) {
		t.Fatalf("expected ErrHuntNotFound, got %v", err)
	}
}
