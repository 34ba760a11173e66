package implementation

import (
	"context"
	"errors"

	"vibe-notes-be/internal/entity"
	"vibe-notes-be/internal/mapper"
	"vibe-notes-be/internal/model"
	"vibe-notes-be/internal/repository/contract"
	"vibe-notes-be/internal/repository/specification"

	"gorm.io/gorm"
)

type ProfileRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ProfileMapper
}

func NewProfileRepository(db *gorm.DB) contract.ProfileRepository {
	return &ProfileRepositoryImpl{
		db:     db,
		mapper: mapper.NewProfileMapper(),
	}
}

func (r *ProfileRepositoryImpl) Create(ctx context.Context, profile *entity.Profile) error {
	m := r.mapper.ToModel(profile)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*profile = *r.mapper.ToEntity(m)
	return nil
}

func (r *ProfileRepositoryImpl) UpdateOwned(ctx context.Context, profile *entity.Profile) (int64, error) {
	res := specification.ByID{ID: profile.Id}.
		Apply(r.db.WithContext(ctx).Model(&model.Profile{})).
		Updates(map[string]interface{}{
			"full_name":  profile.FullName,
			"avatar_url": profile.AvatarURL,
		})
	return res.RowsAffected, res.Error
}

func (r *ProfileRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Profile, error) {
	var m model.Profile
	query := r.db.WithContext(ctx)
	for _, spec := range specs {
		query = spec.Apply(query)
	}
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}
