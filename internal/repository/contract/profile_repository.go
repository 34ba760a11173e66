package contract

import (
	"context"

	"vibe-notes-be/internal/entity"
	"vibe-notes-be/internal/repository/specification"
)

type ProfileRepository interface {
	Create(ctx context.Context, profile *entity.Profile) error
	UpdateOwned(ctx context.Context, profile *entity.Profile) (int64, error)
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Profile, error)
}
