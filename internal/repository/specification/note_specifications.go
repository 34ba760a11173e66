package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NoteOwnedByUser struct {
	UserID uuid.UUID
}

func (s NoteOwnedByUser) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("notes.user_id = ?", s.UserID)
}

type ByNoteID struct {
	NoteID uuid.UUID
}

func (s ByNoteID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("note_id = ?", s.NoteID)
}

// WithRecipients eager-loads note_recipients in the order they were entered,
// "to" before "cc".
type WithRecipients struct{}

func (s WithRecipients) Apply(db *gorm.DB) *gorm.DB {
	return db.Preload("Recipients", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("position ASC").Order("id ASC")
	})
}
