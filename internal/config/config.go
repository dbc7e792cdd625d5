package config

import (
	"github.com/joho/godotenv"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

type HuntConfig interface {
	DefaultWinnerPoints() int64
	LeaderboardSize() int
	SettleSweepSpec() string
	NotificationChannel() string
}

type HTTPConfig interface {
	Address() string
}

type PGConfig interface {
	DSN() string
}

type RedisConfig interface {
	Addr() string
}

type JWTConfig interface {
	AccessTokenSecretKey() []byte
}
