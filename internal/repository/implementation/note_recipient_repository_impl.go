package implementation

import (
	"context"

	"vibe-notes-be/internal/entity"
	"vibe-notes-be/internal/mapper"
	"vibe-notes-be/internal/model"
	"vibe-notes-be/internal/repository/contract"
	"vibe-notes-be/internal/repository/specification"

	"gorm.io/gorm"
)

type NoteRecipientRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.NoteRecipientMapper
}

func NewNoteRecipientRepository(db *gorm.DB) contract.NoteRecipientRepository {
	return &NoteRecipientRepositoryImpl{
		db:     db,
		mapper: mapper.NewNoteRecipientMapper(),
	}
}

// CreateBatch inserts all rows in a single statement.
func (r *NoteRecipientRepositoryImpl) CreateBatch(ctx context.Context, recipients []entity.NoteRecipient) error {
	if len(recipients) == 0 {
		return nil
	}
	models := r.mapper.ToModels(recipients)
	if err := r.db.WithContext(ctx).Create(&models).Error; err != nil {
		return err
	}
	for i, m := range models {
		recipients[i] = r.mapper.ToEntity(m)
	}
	return nil
}

func (r *NoteRecipientRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]entity.NoteRecipient, error) {
	var models []model.NoteRecipient
	query := r.db.WithContext(ctx)
	for _, spec := range specs {
		query = spec.Apply(query)
	}
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
