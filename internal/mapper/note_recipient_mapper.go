package mapper

import (
	"vibe-notes-be/internal/entity"
	"vibe-notes-be/internal/model"
)

type NoteRecipientMapper struct{}

func NewNoteRecipientMapper() *NoteRecipientMapper {
	return &NoteRecipientMapper{}
}

func (m *NoteRecipientMapper) ToEntity(r *model.NoteRecipient) entity.NoteRecipient {
	return entity.NoteRecipient{
		Id:        r.Id,
		NoteId:    r.NoteId,
		Email:     r.Email,
		Role:      entity.RecipientRole(r.Role),
		Position:  r.Position,
		CreatedAt: r.CreatedAt,
	}
}

func (m *NoteRecipientMapper) ToModel(r *entity.NoteRecipient) *model.NoteRecipient {
	return &model.NoteRecipient{
		Id:        r.Id,
		NoteId:    r.NoteId,
		Email:     r.Email,
		Role:      string(r.Role),
		Position:  r.Position,
		CreatedAt: r.CreatedAt,
	}
}

func (m *NoteRecipientMapper) ToEntities(rows []model.NoteRecipient) []entity.NoteRecipient {
	entities := make([]entity.NoteRecipient, 0, len(rows))
	for i := range rows {
		entities = append(entities, m.ToEntity(&rows[i]))
	}
	return entities
}

func (m *NoteRecipientMapper) ToModels(rows []entity.NoteRecipient) []*model.NoteRecipient {
	models := make([]*model.NoteRecipient, len(rows))
	for i := range rows {
		models[i] = m.ToModel(&rows[i])
	}
	return models
}
