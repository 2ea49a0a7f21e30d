package server

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/uniworld/uniworld/internal/handlers"
	"github.com/uniworld/uniworld/internal/middleware"
	"github.com/uniworld/uniworld/pkg/auth"
)

func APIEndpoints(
	r *gin.Engine,
	jwtMgr *auth.JWTManager,
	rdb *redis.Client,
	authH *handlers.AuthHandler,
	userH *handlers.UserHandler,
	roomH *handlers.RoomHandler,
	courseH *handlers.CourseHandler,
	wsH *handlers.WebSocketHandler,
) {
	// Auth endpoints
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", authH.Register)
		authGroup.POST("/login", authH.Login)
		authGroup.POST("/logout", authH.Logout)
	}

	// API endpoints
	api := r.Group("/api/v1")
	api.Use(middleware.AuthMiddleware(jwtMgr, rdb))
	{
		api.GET("/users/me", userH.GetMe)

		api.GET("/rooms", roomH.ListRooms)
		api.GET("/rooms/:slug", roomH.GetRoom)
		api.GET("/rooms/:slug/messages", roomH.GetRoomMessages)

		api.POST("/courses", courseH.CreateCourse)
		api.GET("/courses", courseH.ListCourses)
		api.POST("/courses/:id/enroll", courseH.Enroll)
	}

	// WebSocket endpoint; the path segment is the room slug
	r.GET("/ws/chat/:slug", middleware.WSAuthMiddleware(jwtMgr, rdb), wsH.HandleWebSocket)
}
