package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uniworld/uniworld/internal/models"
)

func TestCreateRoomGeneratesSlug(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "teacher")

	room := &models.Room{Name: "Chat for Algebra 101", CreatorID: user.ID}
	require.NoError(t, db.CreateRoom(room))

	assert.Equal(t, "chat-for-algebra-101", room.Slug)
}

func TestCreateRoomSlugCollision(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "teacher")

	first := &models.Room{Name: "Chat for X", CreatorID: user.ID}
	require.NoError(t, db.CreateRoom(first))

	second := &models.Room{Name: "Chat for X", CreatorID: user.ID}
	require.NoError(t, db.CreateRoom(second))

	assert.Equal(t, "chat-for-x", first.Slug)
	assert.Equal(t, "chat-for-x-1", second.Slug)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestCreateRoomKeepsExplicitSlug(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "teacher")

	room := &models.Room{Name: "Test Room", Slug: "test-room", CreatorID: user.ID}
	require.NoError(t, db.CreateRoom(room))

	assert.Equal(t, "test-room", room.Slug)
}

func TestGetRoomBySlug(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "teacher")

	room := &models.Room{Name: "Algebra 101", CreatorID: user.ID}
	require.NoError(t, db.CreateRoom(room))

	found, err := db.GetRoomBySlug("algebra-101")
	require.NoError(t, err)
	assert.Equal(t, room.ID, found.ID)
}

func TestGetRoomBySlugFallsBackToName(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "teacher")

	room := &models.Room{Name: "Algebra 101", CreatorID: user.ID}
	require.NoError(t, db.CreateRoom(room))

	// Legacy callers still look rooms up by display name.
	found, err := db.GetRoomBySlug("Algebra 101")
	require.NoError(t, err)
	assert.Equal(t, room.ID, found.ID)
}

func TestGetRoomBySlugNotFound(t *testing.T) {
	db := newTestDB(t)

	_, err := db.GetRoomBySlug("no-such-room")
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestGetOrCreateRoomForCourse(t *testing.T) {
	db := newTestDB(t)
	teacher := createTestUser(t, db, "teacher")

	course := &models.Course{Name: "Algebra 101", TeacherID: teacher.ID}
	require.NoError(t, db.CreateCourse(course))

	room, err := db.GetOrCreateRoomForCourse(course)
	require.NoError(t, err)
	assert.Equal(t, "Chat for Algebra 101", room.Name)
	assert.Equal(t, "chat-for-algebra-101", room.Slug)
	require.NotNil(t, course.ChatRoomID)
	assert.Equal(t, room.ID, *course.ChatRoomID)

	// A second call reuses the linked room.
	again, err := db.GetOrCreateRoomForCourse(course)
	require.NoError(t, err)
	assert.Equal(t, room.ID, again.ID)

	rooms, err := db.ListRooms()
	require.NoError(t, err)
	assert.Len(t, rooms, 1)
}

func TestBackfillRoomSlug(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "teacher")

	taken := &models.Room{Name: "Old Room", CreatorID: user.ID}
	require.NoError(t, db.CreateRoom(taken))

	legacy := &models.Room{Name: "Old Room", Slug: "", CreatorID: user.ID}
	require.NoError(t, db.db.Create(legacy).Error)

	rooms, err := db.RoomsWithoutSlug()
	require.NoError(t, err)
	require.Len(t, rooms, 1)

	require.NoError(t, db.BackfillRoomSlug(&rooms[0]))
	assert.Equal(t, "old-room-1", rooms[0].Slug)
}
