package model

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type Profile struct {
	ID       uuid.UUID
	Username string
	Points   int64
}

type UserClaims struct {
	jwt.RegisteredClaims
	IsAdmin bool `json:"is_admin"`
}
