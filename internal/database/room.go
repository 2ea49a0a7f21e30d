package database

import (
	"errors"
	"fmt"

	"github.com/gosimple/slug"
	"gorm.io/gorm"

	"github.com/uniworld/uniworld/internal/models"
)

var ErrRoomNotFound = errors.New("room not found")

// CreateRoom persists a room, generating a unique slug from the display name
// when none is set. Slugs are never regenerated for existing rooms.
func (d *Database) CreateRoom(room *models.Room) error {
	if room.Slug == "" {
		s, err := d.nextFreeSlug(room.Name)
		if err != nil {
			return err
		}
		room.Slug = s
	}
	return d.db.Create(room).Error
}

// nextFreeSlug slugifies name and suffixes -1, -2, ... until the slug is
// unused.
func (d *Database) nextFreeSlug(name string) (string, error) {
	base := slug.Make(name)
	candidate := base
	for n := 1; ; n++ {
		var count int64
		err := d.db.Model(&models.Room{}).Where("slug = ?", candidate).Count(&count).Error
		if err != nil {
			return "", err
		}
		if count == 0 {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, n)
	}
}

// GetRoomBySlug resolves a room by slug, falling back to a display-name
// lookup. The fallback is a legacy path kept for rooms that predate slugs;
// callers should not rely on it for new rooms.
func (d *Database) GetRoomBySlug(s string) (*models.Room, error) {
	var room models.Room
	err := d.db.First(&room, "slug = ?", s).Error
	if err == nil {
		return &room, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	err = d.db.First(&room, "name = ?", s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrRoomNotFound
	}
	if err != nil {
		return nil, err
	}
	return &room, nil
}

func (d *Database) GetRoom(id string) (*models.Room, error) {
	var room models.Room
	if err := d.db.First(&room, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

func (d *Database) ListRooms() ([]models.Room, error) {
	var rooms []models.Room
	err := d.db.Order("name ASC").Find(&rooms).Error
	return rooms, err
}

// RoomsWithoutSlug returns rooms whose slug was never assigned. Used by the
// admin backfill command.
func (d *Database) RoomsWithoutSlug() ([]models.Room, error) {
	var rooms []models.Room
	err := d.db.Where("slug IS NULL OR slug = ''").Find(&rooms).Error
	return rooms, err
}

// BackfillRoomSlug assigns a generated slug to a room that has none.
func (d *Database) BackfillRoomSlug(room *models.Room) error {
	if room.Slug != "" {
		return nil
	}
	s, err := d.nextFreeSlug(room.Name)
	if err != nil {
		return err
	}
	room.Slug = s
	return d.db.Model(room).Update("slug", s).Error
}

// DeleteRoom removes a room; its messages go with it via the FK cascade.
func (d *Database) DeleteRoom(id string) error {
	return d.db.Delete(&models.Room{}, "id = ?", id).Error
}
