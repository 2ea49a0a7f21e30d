package database

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uniworld/uniworld/internal/models"
)

func TestRecentMessagesChronological(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "alice")

	room := &models.Room{Name: "Algebra 101", CreatorID: user.ID}
	require.NoError(t, db.CreateRoom(room))

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 5; i++ {
		msg := &models.Message{
			RoomID:    room.ID,
			UserID:    user.ID,
			Content:   fmt.Sprintf("message %d", i),
			CreatedAt: base.Add(time.Duration(i) * time.Second),
		}
		require.NoError(t, db.SaveMessage(msg))
	}

	messages, err := db.RecentMessages(room.ID, 5, false)
	require.NoError(t, err)
	require.Len(t, messages, 5)

	for i, msg := range messages {
		assert.Equal(t, fmt.Sprintf("message %d", i), msg.Content)
		if i > 0 {
			assert.False(t, msg.CreatedAt.Before(messages[i-1].CreatedAt))
		}
	}
}

func TestRecentMessagesLimitKeepsNewest(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "alice")

	room := &models.Room{Name: "Algebra 101", CreatorID: user.ID}
	require.NoError(t, db.CreateRoom(room))

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 10; i++ {
		msg := &models.Message{
			RoomID:    room.ID,
			UserID:    user.ID,
			Content:   fmt.Sprintf("message %d", i),
			CreatedAt: base.Add(time.Duration(i) * time.Second),
		}
		require.NoError(t, db.SaveMessage(msg))
	}

	messages, err := db.RecentMessages(room.ID, 3, false)
	require.NoError(t, err)
	require.Len(t, messages, 3)

	assert.Equal(t, "message 7", messages[0].Content)
	assert.Equal(t, "message 9", messages[2].Content)
}

func TestRecentMessagesExcludeFlagged(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "alice")

	room := &models.Room{Name: "Algebra 101", CreatorID: user.ID}
	require.NoError(t, db.CreateRoom(room))

	clean := &models.Message{RoomID: room.ID, UserID: user.ID, Content: "hello"}
	require.NoError(t, db.SaveMessage(clean))

	flagged := &models.Message{
		RoomID:            room.ID,
		UserID:            user.ID,
		Content:           "something nasty",
		Flagged:           true,
		FlaggedCategories: "harassment",
	}
	require.NoError(t, db.SaveMessage(flagged))

	all, err := db.RecentMessages(room.ID, 10, false)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	filtered, err := db.RecentMessages(room.ID, 10, true)
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "hello", filtered[0].Content)
}

func TestMessageDefaultsUnflagged(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "alice")

	room := &models.Room{Name: "Algebra 101", CreatorID: user.ID}
	require.NoError(t, db.CreateRoom(room))

	msg := &models.Message{RoomID: room.ID, UserID: user.ID, Content: "hello"}
	require.NoError(t, db.SaveMessage(msg))

	messages, err := db.RecentMessages(room.ID, 1, false)
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.False(t, messages[0].Flagged)
	assert.Empty(t, messages[0].FlaggedCategories)
	assert.Equal(t, "alice", messages[0].User.Username)
}

func TestTruncateMessages(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "alice")

	room := &models.Room{Name: "Algebra 101", CreatorID: user.ID}
	require.NoError(t, db.CreateRoom(room))

	for i := 0; i < 3; i++ {
		msg := &models.Message{RoomID: room.ID, UserID: user.ID, Content: "hello"}
		require.NoError(t, db.SaveMessage(msg))
	}

	deleted, err := db.TruncateMessages()
	require.NoError(t, err)
	assert.EqualValues(t, 3, deleted)

	count, err := db.MessageCount()
	require.NoError(t, err)
	assert.Zero(t, count)
}
