package entity

import (
	"time"

	"github.com/google/uuid"
)

type RecipientRole string

const (
	RecipientRoleTo RecipientRole = "to"
	RecipientRoleCc RecipientRole = "cc"
)

func (r RecipientRole) Valid() bool {
	return r == RecipientRoleTo || r == RecipientRoleCc
}

type NoteRecipient struct {
	Id        uuid.UUID
	NoteId    uuid.UUID
	Email     string
	Role      RecipientRole
	Position  int
	CreatedAt time.Time
}
