package model

import (
	"time"

	"github.com/google/uuid"
)

// Profile shares its primary key with the owning user.
type Profile struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey"`
	FullName  *string   `gorm:"type:text"`
	AvatarURL *string   `gorm:"type:text"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Profile) TableName() string {
	return "profiles"
}
