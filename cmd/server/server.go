package server

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"

	"github.com/uniworld/uniworld/internal/database"
	"github.com/uniworld/uniworld/internal/handlers"
	"github.com/uniworld/uniworld/internal/moderation"
	"github.com/uniworld/uniworld/internal/notify"
	ws "github.com/uniworld/uniworld/internal/websocket"
	"github.com/uniworld/uniworld/pkg/auth"
)

type Server struct {
	Router     *gin.Engine
	DB         *database.Database
	Redis      *redis.Client
	JWTManager *auth.JWTManager
	Hub        *ws.Hub
}

func NewServer() *Server {
	if err := godotenv.Load(".env.local"); err != nil {
		if err := godotenv.Load(); err != nil {
			log.Println(".env not found, using environment variables")
		}
	}

	dbConn := &database.Database{}
	if err := dbConn.Connect(); err != nil {
		log.Fatalf("Postgres connect failed: %v", err)
	}

	redisOpts, err := redis.ParseURL(os.Getenv("REDIS_URL"))
	if err != nil {
		log.Fatalf("invalid REDIS_URL: %v", err)
	}
	rdb := redis.NewClient(redisOpts)
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		log.Fatalf("Redis connect failed: %v", err)
	}

	jwtMgr := auth.NewJWTManager(
		os.Getenv("JWT_SECRET"),
		24*time.Hour,
	)

	classifier := moderation.NewClient(os.Getenv("OPENAI_API_KEY"))

	var notifier notify.Notifier = notify.ConsoleNotifier{}
	if key := os.Getenv("SENDGRID_API_KEY"); key != "" {
		notifier = notify.NewSendGridNotifier(key, os.Getenv("EMAIL_FROM"), os.Getenv("ADMIN_EMAIL"))
	}

	moderatorName := os.Getenv("MODERATOR_USERNAME")
	if moderatorName == "" {
		moderatorName = "moderator"
	}

	hub := ws.NewHub()

	authH := handlers.NewAuthHandler(dbConn, jwtMgr, rdb)
	userH := handlers.NewUserHandler(dbConn)
	roomH := handlers.NewRoomHandler(dbConn, hub)
	courseH := handlers.NewCourseHandler(dbConn)
	messageH := handlers.NewMessageHandler(dbConn, classifier, notifier, hub, moderatorName)
	wsH := handlers.NewWebSocketHandler(dbConn, hub, messageH)

	router := gin.Default()
	APIEndpoints(router, jwtMgr, rdb, authH, userH, roomH, courseH, wsH)

	return &Server{
		Router:     router,
		DB:         dbConn,
		Redis:      rdb,
		JWTManager: jwtMgr,
		Hub:        hub,
	}
}

func (s *Server) Run() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Server starting on port %s", port)
	if err := s.Router.Run(":" + port); err != nil {
		log.Fatalf("Server run error: %v", err)
	}
}
