package env

import (
	"bonushunt_backend/internal/config"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// huntYAML - секция hunt из config.yaml
type huntYAML struct {
	Hunt struct {
		DefaultWinnerPoints int64  `yaml:"default_winner_points"`
		LeaderboardSize     int    `yaml:"leaderboard_size"`
		SettleSweepSpec     string `yaml:"settle_sweep_spec"`
		NotificationChannel string `yaml:"notification_channel"`
	} `yaml:"hunt"`
}

type huntConfig struct {
	defaultWinnerPoints int64
	leaderboardSize     int
	settleSweepSpec     string
	notificationChannel string
}

func NewHuntConfigFromYAML(path string) (config.HuntConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read hunt config: %w", err)
	}

	var parsed huntYAML
	if err := yaml.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse hunt config: %w", err)
	}

	cfg := huntConfig{
		defaultWinnerPoints: parsed.Hunt.DefaultWinnerPoints,
		leaderboardSize:     parsed.Hunt.LeaderboardSize,
		settleSweepSpec:     parsed.Hunt.SettleSweepSpec,
		notificationChannel: parsed.Hunt.NotificationChannel,
	}

	// Значения по умолчанию для незаполненных полей
	if cfg.defaultWinnerPoints == 0 {
		cfg.defaultWinnerPoints = 1000
	}
	if cfg.leaderboardSize == 0 {
		cfg.leaderboardSize = 10
	}
	if cfg.settleSweepSpec == "" {
		cfg.settleSweepSpec = "@every 1m"
	}
	if cfg.notificationChannel == "" {
		cfg.notificationChannel = "notifications"
	}

	return &cfg, nil
}

func (cfg *huntConfig) DefaultWinnerPoints() int64 {
	return cfg.defaultWinnerPoints
}

func (cfg *huntConfig) LeaderboardSize() int {
	return cfg.leaderboardSize
}

func (cfg *huntConfig) SettleSweepSpec() string {
	return cfg.settleSweepSpec
}

func (cfg *huntConfig) NotificationChannel() string {
	return cfg.notificationChannel
}
