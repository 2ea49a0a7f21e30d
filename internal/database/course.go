package database

import (
	"fmt"

	"github.com/uniworld/uniworld/internal/models"
)

func (d *Database) CreateCourse(course *models.Course) error {
	return d.db.Create(course).Error
}

func (d *Database) GetCourse(id string) (*models.Course, error) {
	var course models.Course
	err := d.db.Preload("Students").Preload("ChatRoom").First(&course, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &course, nil
}

func (d *Database) ListCourses() ([]models.Course, error) {
	var courses []models.Course
	err := d.db.Preload("ChatRoom").Order("created_at ASC").Find(&courses).Error
	return courses, err
}

// GetOrCreateRoomForCourse returns the course's chat room, creating and
// linking one named after the course on first call.
func (d *Database) GetOrCreateRoomForCourse(course *models.Course) (*models.Room, error) {
	if course.ChatRoomID != nil {
		return d.GetRoom(course.ChatRoomID.String())
	}

	room := &models.Room{
		Name:      fmt.Sprintf("Chat for %s", course.Name),
		CreatorID: course.TeacherID,
	}
	if err := d.CreateRoom(room); err != nil {
		return nil, err
	}

	course.ChatRoomID = &room.ID
	if err := d.db.Model(course).Update("chat_room_id", room.ID).Error; err != nil {
		return nil, err
	}
	return room, nil
}

func (d *Database) EnrollStudent(course *models.Course, student *models.User) error {
	return d.db.Model(course).Association("Students").Append(student)
}
