package entity

import (
	"time"

	"github.com/google/uuid"
)

type Profile struct {
	Id        uuid.UUID
	FullName  *string
	AvatarURL *string
	CreatedAt time.Time
	UpdatedAt *time.Time
}
