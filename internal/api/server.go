package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/martijn/feedbackd/internal/api/handler"
	"github.com/martijn/feedbackd/internal/api/middleware"
	"github.com/martijn/feedbackd/internal/core/service"
	"github.com/martijn/feedbackd/pkg/config"
	"go.uber.org/zap"
)

type Server struct {
	router *gin.Engine
	srv    *http.Server
	config *config.Config
	logger *zap.Logger
}

// NewServer creates a new API server
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	authService *service.AuthService,
	sessionService *service.SessionService,
	feedbackService *service.FeedbackService,
) *Server {
	// Set Gin mode
	if !cfg.IsDevMode() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandlerMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.CORSOrigins))
	router.Use(middleware.SessionMiddleware(sessionService))

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService, sessionService, cfg.SessionTTLMinutes)
	userHandler := handler.NewUserHandler(authService, feedbackService)
	feedbackHandler := handler.NewFeedbackHandler(feedbackService)

	// Public routes
	router.GET("/", authHandler.Root)
	router.GET("/register", authHandler.ShowRegisterForm)
	router.POST("/register", authHandler.Register)
	router.GET("/login", authHandler.ShowLoginForm)
	router.POST("/login", authHandler.Login)
	router.GET("/logout", authHandler.Logout)

	// Identity-scoped routes. The session middleware resolves the
	// cookie; the ownership guard inside each operation decides.
	users := router.Group("/users")
	{
		users.GET("/:username", userHandler.ShowUser)
		users.POST("/:username/delete", userHandler.DeleteUser)
		users.GET("/:username/feedback/add", feedbackHandler.ShowAddForm)
		users.POST("/:username/feedback/add", feedbackHandler.AddFeedback)
	}

	feedback := router.Group("/feedback")
	{
		feedback.GET("/:id/update", feedbackHandler.ShowFeedback)
		feedback.POST("/:id/update", feedbackHandler.UpdateFeedback)
		feedback.POST("/:id/delete", feedbackHandler.DeleteFeedback)
	}

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	return &Server{
		router: router,
		config: cfg,
		logger: logger,
	}
}

// Start starts the HTTP server
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.APIHost, s.config.APIPort)

	s.srv = &http.Server{
		Addr:           addr,
		Handler:        s.router,
		ReadTimeout:    15 * time.Second,
		WriteTimeout:   15 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20, // 1 MB
	}

	// Start with or without SSL
	if s.config.SSLCert != "" && s.config.SSLKey != "" {
		s.logger.Info("starting HTTPS server", zap.String("addr", addr))
		return s.srv.ListenAndServeTLS(s.config.SSLCert, s.config.SSLKey)
	}

	s.logger.Info("starting HTTP server", zap.String("addr", addr))
	return s.srv.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.srv != nil {
		return s.srv.Shutdown(ctx)
	}
	return nil
}
