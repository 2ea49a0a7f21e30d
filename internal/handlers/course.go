package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/uniworld/uniworld/internal/database"
	"github.com/uniworld/uniworld/internal/middleware"
	"github.com/uniworld/uniworld/internal/models"
)

type CourseHandler struct {
	db *database.Database
}

func NewCourseHandler(db *database.Database) *CourseHandler {
	return &CourseHandler{db: db}
}

// CreateCourse creates a course and its chat room in one go.
func (h *CourseHandler) CreateCourse(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uuid.UUID)

	var req struct {
		Name        string `json:"name" binding:"required"`
		Description string `json:"description"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	course := &models.Course{
		Name:        req.Name,
		Description: req.Description,
		TeacherID:   userID,
	}

	if err := h.db.CreateCourse(course); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create course"})
		return
	}

	room, err := h.db.GetOrCreateRoomForCourse(course)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create course chat room"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":          course.ID,
		"name":        course.Name,
		"description": course.Description,
		"teacher_id":  course.TeacherID,
		"chat_room":   formatRoomResponse(room, 0),
	})
}

func (h *CourseHandler) ListCourses(c *gin.Context) {
	courses, err := h.db.ListCourses()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list courses"})
		return
	}

	response := make([]gin.H, len(courses))
	for i, course := range courses {
		entry := gin.H{
			"id":          course.ID,
			"name":        course.Name,
			"description": course.Description,
			"teacher_id":  course.TeacherID,
		}
		if course.ChatRoom != nil {
			entry["chat_room_slug"] = course.ChatRoom.Slug
		}
		response[i] = entry
	}

	c.JSON(http.StatusOK, gin.H{"courses": response})
}

// Enroll adds the current user to the course's student list.
func (h *CourseHandler) Enroll(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uuid.UUID)

	course, err := h.db.GetCourse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "course not found"})
		return
	}

	user, err := h.db.GetUser(userID.String())
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unknown user"})
		return
	}

	if err := h.db.EnrollStudent(course, user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to enroll"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "enrolled successfully"})
}
