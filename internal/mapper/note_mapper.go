package mapper

import (
	"time"

	"vibe-notes-be/internal/entity"
	"vibe-notes-be/internal/model"
)

type NoteMapper struct {
	recipients *NoteRecipientMapper
}

func NewNoteMapper() *NoteMapper {
	return &NoteMapper{recipients: NewNoteRecipientMapper()}
}

func (m *NoteMapper) ToEntity(n *model.Note) *entity.Note {
	if n == nil {
		return nil
	}

	var updatedAt *time.Time
	if !n.UpdatedAt.IsZero() {
		t := n.UpdatedAt
		updatedAt = &t
	}

	return &entity.Note{
		Id:         n.Id,
		UserId:     n.UserId,
		Title:      n.Title,
		Body:       n.Body,
		CreatedAt:  n.CreatedAt,
		UpdatedAt:  updatedAt,
		Recipients: m.recipients.ToEntities(n.Recipients),
	}
}

// ToModel leaves Recipients empty; they are written through their own repository.
func (m *NoteMapper) ToModel(n *entity.Note) *model.Note {
	if n == nil {
		return nil
	}

	var updatedAt time.Time
	if n.UpdatedAt != nil {
		updatedAt = *n.UpdatedAt
	}

	return &model.Note{
		Id:        n.Id,
		UserId:    n.UserId,
		Title:     n.Title,
		Body:      n.Body,
		CreatedAt: n.CreatedAt,
		UpdatedAt: updatedAt,
	}
}

func (m *NoteMapper) ToEntities(notes []*model.Note) []*entity.Note {
	entities := make([]*entity.Note, len(notes))
	for i, n := range notes {
		entities[i] = m.ToEntity(n)
	}
	return entities
}
