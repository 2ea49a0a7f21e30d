package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Room is a chat channel. The slug is assigned once at creation and never
// changes afterwards; it is the identifier used in websocket paths.
type Room struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"not null"`
	Slug      string    `gorm:"uniqueIndex;not null"`
	CreatorID uuid.UUID
	CreatedAt time.Time

	Creator  User      `gorm:"foreignKey:CreatorID"`
	Messages []Message `gorm:"foreignKey:RoomID;constraint:OnDelete:CASCADE"`
}

func (r *Room) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
