package server

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"sharegeb/internal/config"
	"sharegeb/internal/handler"
	"sharegeb/internal/repository"
	"sharegeb/internal/service"
	"sharegeb/internal/session"
	"sharegeb/pkg/storage"
)

type Server struct {
	engine      *gin.Engine
	db          *gorm.DB
	redisClient *redis.Client
}

func NewServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Server {
	var sessionStore session.Store
	if redisClient != nil {
		sessionStore = session.NewRedisStore(redisClient)
	} else {
		sessionStore = session.NewMemoryStore()
	}
	sessions := session.NewManager(sessionStore, cfg.SessionSecret, cfg.SessionTTL)

	userRepo := repository.NewUserRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	avatars := storage.NewDiskStorage(cfg.AvatarDir)

	notificationSvc := service.NewNotificationService(notificationRepo, redisClient)
	authSvc := service.NewAuthService(userRepo, notificationSvc)
	credentialSvc := service.NewCredentialService(userRepo)
	profileSvc := service.NewProfileService(userRepo, avatars, sessions)

	authHandler := handler.NewAuthHandler(authSvc, credentialSvc, sessions)
	profileHandler := handler.NewProfileHandler(profileSvc, userRepo, sessions)
	pageHandler := handler.NewPageHandler()
	notificationHandler := handler.NewNotificationHandler(notificationSvc)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(gin.Logger())

	setupCORS(router, cfg.AllowedOrigins)

	router.LoadHTMLGlob("web/templates/*.html")
	router.Static("/static", "web/static")

	// Account routes
	router.GET("/register", authHandler.ShowRegister)
	router.POST("/register", authHandler.Register)
	router.GET("/login", authHandler.ShowLogin)
	router.POST("/login", authHandler.Login)
	router.GET("/logout", authHandler.Logout)
	router.GET("/forget_password", authHandler.ShowForgetPassword)
	router.POST("/forget_password", authHandler.ForgetPassword)
	router.GET("/reset-password/:token", authHandler.ShowResetPassword)
	router.POST("/reset-password/:token", authHandler.ResetPassword)

	// Ride/discount/payment pages (render-only for now)
	router.GET("/book-ride", pageHandler.BookRidePage)
	router.GET("/book_ride", pageHandler.BookRidePage)
	router.POST("/book_ride", pageHandler.BookRide)
	router.GET("/cancel_ride", pageHandler.CancelRidePage)
	router.POST("/cancel_ride", pageHandler.CancelRide)
	router.GET("/discounts", pageHandler.DiscountsPage)
	router.POST("/discounts", pageHandler.ApplyDiscount)
	router.GET("/payment", pageHandler.PaymentPage)
	router.POST("/payment", pageHandler.Payment)

	// Pages behind a session
	pages := router.Group("")
	pages.Use(sessions.RequirePage())
	{
		pages.GET("/", pageHandler.Dashboard)
		pages.GET("/profile", profileHandler.Profile)
		pages.GET("/recent-rides", pageHandler.RecentRides)
		pages.GET("/settings", pageHandler.Settings)
	}

	// JSON endpoints behind a session
	api := router.Group("")
	api.Use(sessions.RequireJSON())
	{
		api.POST("/upload-avatar", profileHandler.UploadAvatar)
		api.POST("/update-profile", profileHandler.UpdateProfile)

		api.GET("/notifications", notificationHandler.List)
		api.GET("/notifications/unread-count", notificationHandler.UnreadCount)
		api.POST("/notifications/:id/read", notificationHandler.MarkAsRead)
		api.POST("/notifications/read-all", notificationHandler.MarkAllAsRead)
	}

	return &Server{
		engine:      router,
		db:          db,
		redisClient: redisClient,
	}
}

func (s *Server) Run(addr string) error {
	return s.engine.Run(addr)
}

func setupCORS(router *gin.Engine, allowedOrigins string) {
	var origins []string
	if allowedOrigins != "" {
		origins = strings.Split(allowedOrigins, ",")
	} else {
		origins = []string{"http://localhost:3000"}
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
}
