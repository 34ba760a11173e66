package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateNoteRequest struct {
	Title string `json:"title" form:"title"`
	Body  string `json:"body" form:"body"`
	To    string `json:"to" form:"to"`
	Cc    string `json:"cc" form:"cc"`
}

type UpdateNoteRequest struct {
	Id    uuid.UUID `json:"-" form:"-" validate:"required"`
	Title string    `json:"title" form:"title"`
	Body  string    `json:"body" form:"body"`
}

type RecipientResponse struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

type NoteResponse struct {
	Id        uuid.UUID           `json:"id"`
	Title     *string             `json:"title"`
	Body      *string             `json:"body"`
	To        []RecipientResponse `json:"to"`
	Cc        []RecipientResponse `json:"cc"`
	CreatedAt time.Time           `json:"created_at"`
	UpdatedAt *time.Time          `json:"updated_at"`
}

type ListNotesResponse struct {
	Notes []NoteResponse `json:"notes"`
}

// PublishRevalidateMessage travels on the in-process bus after a note mutation.
type PublishRevalidateMessage struct {
	UserId uuid.UUID `json:"user_id"`
	Reason string    `json:"reason"`
}
