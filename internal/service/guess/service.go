package guess

import (
	"bonushunt_backend/internal/repository"
	"bonushunt_backend/internal/service"
)

type serv struct {
	guessRepo repository.GuessRepository
	huntRepo  repository.HuntRepository
}

// NewGuessService - сервис прогнозов "угадай итоговый баланс"
func NewGuessService(
	guessRepo repository.GuessRepository,
	huntRepo repository.HuntRepository,
) service.GuessService {
	return &serv{
		guessRepo: guessRepo,
		huntRepo:  huntRepo,
	}
}
