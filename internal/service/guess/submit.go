package guess

import (
	"bonushunt_backend/internal/model"
	"context"

	"github.com/google/uuid"
)

// Submit - подача прогноза. Один прогноз на пару (хант, пользователь),
// после вставки прогноз неизменяем. Прогнозы принимаются только пока
// хант не завершен и победитель не определен
func (s *serv) Submit(ctx context.Context, guess model.Guess) (*model.Guess, error) {
	hunt, err := s.huntRepo.Get(ctx, guess.HuntID)
	if err != nil {
		return nil, err
	}

	if hunt.Status == model.HuntStatusComplete || hunt.WinnerUserID.Valid {
		return nil, model.ErrGuessingClosed
	}

	guess.ID = uuid.New()
	if err := s.guessRepo.Create(ctx, &guess); err != nil {
		return nil, err
	}

	return &guess, nil
}

func (s *serv) ListByHunt(ctx context.Context, huntID uuid.UUID) ([]model.Guess, error) {
	if _, err := s.huntRepo.Get(ctx, huntID); err != nil {
		return nil, err
	}

	return s.guessRepo.ListByHunt(ctx, huntID)
}
