package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/uniworld/uniworld/internal/database"
	"github.com/uniworld/uniworld/internal/models"
	"github.com/uniworld/uniworld/internal/websocket"
)

type RoomHandler struct {
	db  *database.Database
	hub *websocket.Hub
}

func NewRoomHandler(db *database.Database, hub *websocket.Hub) *RoomHandler {
	return &RoomHandler{db: db, hub: hub}
}

// ListRooms returns all chat rooms.
func (h *RoomHandler) ListRooms(c *gin.Context) {
	rooms, err := h.db.ListRooms()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list rooms"})
		return
	}

	response := make([]gin.H, len(rooms))
	for i := range rooms {
		response[i] = formatRoomResponse(&rooms[i], h.hub.RoomCount(rooms[i].Slug))
	}

	c.JSON(http.StatusOK, gin.H{"rooms": response})
}

// GetRoom returns one room, resolved by slug with the legacy name fallback.
func (h *RoomHandler) GetRoom(c *gin.Context) {
	room, err := h.db.GetRoomBySlug(c.Param("slug"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
		return
	}

	c.JSON(http.StatusOK, formatRoomResponse(room, h.hub.RoomCount(room.Slug)))
}

// GetRoomMessages returns the room's message history, oldest first.
func (h *RoomHandler) GetRoomMessages(c *gin.Context) {
	room, err := h.db.GetRoomBySlug(c.Param("slug"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
		return
	}

	limit := 50
	if l := c.Query("limit"); l != "" {
		if parsed, err := strconv.Atoi(l); err == nil && parsed > 0 && parsed <= 200 {
			limit = parsed
		}
	}

	excludeFlagged := c.Query("exclude_flagged") == "true"

	messages, err := h.db.RecentMessages(room.ID, limit, excludeFlagged)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get messages"})
		return
	}

	response := make([]gin.H, len(messages))
	for i := range messages {
		response[i] = formatMessageResponse(&messages[i])
	}

	c.JSON(http.StatusOK, gin.H{"messages": response})
}

func formatRoomResponse(room *models.Room, onlineCount int) gin.H {
	return gin.H{
		"id":           room.ID,
		"name":         room.Name,
		"slug":         room.Slug,
		"creator_id":   room.CreatorID,
		"created_at":   room.CreatedAt,
		"online_count": onlineCount,
	}
}

func formatMessageResponse(msg *models.Message) gin.H {
	return gin.H{
		"id":                 msg.ID,
		"room_id":            msg.RoomID,
		"user_id":            msg.UserID,
		"username":           msg.User.Username,
		"content":            msg.Content,
		"flagged":            msg.Flagged,
		"flagged_categories": msg.FlaggedCategories,
		"created_at":         msg.CreatedAt,
	}
}
