package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Message is immutable once created: moderation fields are set before the
// initial insert and never patched afterwards.
type Message struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	RoomID            uuid.UUID `gorm:"not null;index"`
	UserID            uuid.UUID `gorm:"not null"`
	Content           string    `gorm:"not null"`
	Flagged           bool      `gorm:"not null;default:false"`
	FlaggedCategories string    `gorm:"not null;default:''"`
	CreatedAt         time.Time `gorm:"index"`

	User User `gorm:"foreignKey:UserID"`
	Room Room `gorm:"foreignKey:RoomID"`
}

func (m *Message) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
