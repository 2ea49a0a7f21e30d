package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Course references at most one chat room; the room is created alongside the
// course and shared with the chat subsystem.
type Course struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"not null"`
	Description string
	TeacherID   uuid.UUID  `gorm:"not null"`
	ChatRoomID  *uuid.UUID `gorm:"uniqueIndex"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Teacher  User   `gorm:"foreignKey:TeacherID"`
	ChatRoom *Room  `gorm:"foreignKey:ChatRoomID"`
	Students []User `gorm:"many2many:course_students"`
}

func (c *Course) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
