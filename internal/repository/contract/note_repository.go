package contract

import (
	"context"

	"vibe-notes-be/internal/entity"
	"vibe-notes-be/internal/repository/specification"

	"github.com/google/uuid"
)

type NoteRepository interface {
	Create(ctx context.Context, note *entity.Note) error
	// UpdateOwned writes title and body of the row matching both note.Id and
	// note.UserId and reports how many rows matched.
	UpdateOwned(ctx context.Context, note *entity.Note) (int64, error)
	DeleteOwned(ctx context.Context, id uuid.UUID, userId uuid.UUID) (int64, error)
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Note, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Note, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
