package leaderboard

import (
	"bonushunt_backend/internal/config"
	"bonushunt_backend/internal/model"
	"bonushunt_backend/internal/repository"
	"bonushunt_backend/internal/service"
	"context"
)

type serv struct {
	profileRepo repository.ProfileRepository
	cfg         config.HuntConfig
}

// NewLeaderboardService - топ профилей по очкам для страницы лидерборда
func NewLeaderboardService(profileRepo repository.ProfileRepository, cfg config.HuntConfig) service.LeaderboardService {
	return &serv{
		profileRepo: profileRepo,
		cfg:         cfg,
	}
}

func (s *serv) Top(ctx context.Context) ([]model.Profile, error) {
	return s.profileRepo.Top(ctx, s.cfg.LeaderboardSize())
}
