package handlers

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/uniworld/uniworld/internal/database"
	"github.com/uniworld/uniworld/internal/models"
	"github.com/uniworld/uniworld/internal/moderation"
	"github.com/uniworld/uniworld/internal/notify"
	"github.com/uniworld/uniworld/internal/websocket"
)

// MessageHandler runs the chat pipeline for one inbound frame: classify the
// content, persist the message, then fan the result out to the room. It is
// called from each session's read loop, so a session never interleaves two
// of its own messages.
type MessageHandler struct {
	db            *database.Database
	classifier    moderation.Classifier
	notifier      notify.Notifier
	hub           *websocket.Hub
	moderatorName string
}

func NewMessageHandler(db *database.Database, classifier moderation.Classifier, notifier notify.Notifier, hub *websocket.Hub, moderatorName string) *MessageHandler {
	return &MessageHandler{
		db:            db,
		classifier:    classifier,
		notifier:      notifier,
		hub:           hub,
		moderatorName: moderatorName,
	}
}

func (h *MessageHandler) HandleFrame(client *websocket.Client, frame *websocket.InboundFrame) error {
	content := frame.Message

	// The frame's room and username fields are not trusted; the session was
	// bound to a room and user at connect time.
	result, err := h.classifier.Classify(context.Background(), content)
	if err != nil {
		// Fail open: the message flows as if clean, and the failure is
		// reported out of band.
		log.Printf("moderation service error: %v", err)
		go h.notifier.NotifyFailure(err.Error())
		result = moderation.Result{}
	}

	message := &models.Message{
		RoomID:            client.RoomID,
		UserID:            client.UserID,
		Content:           content,
		Flagged:           result.Flagged,
		FlaggedCategories: strings.Join(result.FlaggedLabels(), ", "),
	}

	if err := h.db.SaveMessage(message); err != nil {
		// Nothing was recorded, so nothing is broadcast.
		return fmt.Errorf("persist message: %w", err)
	}

	if message.Flagged {
		h.hub.Broadcast(client.RoomSlug, websocket.OutboundFrame{
			Message:  moderationWarning(client.Username, message.FlaggedCategories),
			Username: h.moderatorName,
		})
		return nil
	}

	h.hub.Broadcast(client.RoomSlug, websocket.OutboundFrame{
		Message:  content,
		Username: client.Username,
	})
	return nil
}

func moderationWarning(username, categories string) string {
	return fmt.Sprintf(
		"Warning @%s: Your message violates our content policy and has been redacted! It has been flagged as %q. Repeated violations will incur strict disciplinary action.",
		username, categories,
	)
}
