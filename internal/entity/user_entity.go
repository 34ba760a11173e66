package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	Id           uuid.UUID
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Caller is the authenticated user behind a request.
type Caller struct {
	Id        uuid.UUID
	Email     string
	SessionId string
	ExpiresAt time.Time
}
