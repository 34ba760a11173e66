package entity

import (
	"time"

	"github.com/google/uuid"
)

type Note struct {
	Id         uuid.UUID
	UserId     uuid.UUID
	Title      *string
	Body       *string
	CreatedAt  time.Time
	UpdatedAt  *time.Time
	Recipients []NoteRecipient
}

// TitleOrDefault is the subject line used when the note is mailed.
func (n *Note) TitleOrDefault() string {
	if n.Title == nil || *n.Title == "" {
		return DefaultNoteTitle
	}
	return *n.Title
}

const DefaultNoteTitle = "New Note"

// NullableText maps an empty form value to an absent column.
func NullableText(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
