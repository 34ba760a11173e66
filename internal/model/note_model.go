package model

import (
	"time"

	"github.com/google/uuid"
)

type Note struct {
	Id         uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId     uuid.UUID       `gorm:"type:uuid;not null;index"`
	Title      *string         `gorm:"type:text"`
	Body       *string         `gorm:"type:text"`
	CreatedAt  time.Time       `gorm:"autoCreateTime;index"`
	UpdatedAt  time.Time       `gorm:"autoUpdateTime"`
	Recipients []NoteRecipient `gorm:"foreignKey:NoteId;constraint:OnDelete:CASCADE"`
}

func (Note) TableName() string {
	return "notes"
}
