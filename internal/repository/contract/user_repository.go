package contract

import (
	"context"

	"vibe-notes-be/internal/entity"
	"vibe-notes-be/internal/repository/specification"

	"github.com/google/uuid"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error)
	UpdatePasswordHash(ctx context.Context, id uuid.UUID, hash string) (int64, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
