package contract

import (
	"context"

	"vibe-notes-be/internal/entity"
	"vibe-notes-be/internal/repository/specification"
)

type NoteRecipientRepository interface {
	CreateBatch(ctx context.Context, recipients []entity.NoteRecipient) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]entity.NoteRecipient, error)
}
