package model

import (
	"time"

	"github.com/google/uuid"
)

type NoteRecipient struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	NoteId    uuid.UUID `gorm:"type:uuid;not null;index"`
	Email     string    `gorm:"type:text;not null;check:email <> ''"`
	Role      string    `gorm:"type:varchar(2);not null;check:role IN ('to','cc')"`
	Position  int       `gorm:"not null;default:0"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (NoteRecipient) TableName() string {
	return "note_recipients"
}
