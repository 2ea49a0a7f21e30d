package database

import (
	"github.com/google/uuid"

	"github.com/uniworld/uniworld/internal/models"
)

// SaveMessage appends a message to its room. The insert is atomic; the
// moderation fields must already be set, they are never updated afterwards.
func (d *Database) SaveMessage(message *models.Message) error {
	return d.db.Create(message).Error
}

// RecentMessages returns up to limit of the room's newest messages in
// chronological order, oldest first.
func (d *Database) RecentMessages(roomID uuid.UUID, limit int, excludeFlagged bool) ([]models.Message, error) {
	var messages []models.Message

	query := d.db.Where("room_id = ?", roomID)
	if excludeFlagged {
		query = query.Where("flagged = ?", false)
	}

	err := query.
		Order("created_at DESC").
		Limit(limit).
		Preload("User").
		Find(&messages).Error
	if err != nil {
		return nil, err
	}

	// Newest-first from the query; flip so callers read oldest first.
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}

	return messages, nil
}

func (d *Database) MessageCount() (int64, error) {
	var count int64
	err := d.db.Model(&models.Message{}).Count(&count).Error
	return count, err
}

// TruncateMessages deletes every message and reports how many were removed.
func (d *Database) TruncateMessages() (int64, error) {
	count, err := d.MessageCount()
	if err != nil {
		return 0, err
	}
	if err := d.db.Where("1 = 1").Delete(&models.Message{}).Error; err != nil {
		return 0, err
	}
	return count, nil
}
