package cli

import (
	"fmt"

	"github.com/martijn/feedbackd/internal/core/repository"
	"github.com/martijn/feedbackd/internal/core/service"
	"github.com/martijn/feedbackd/internal/infrastructure/sqlite"
	"github.com/martijn/feedbackd/pkg/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "feedbackd",
	Short: "feedbackd - user accounts and per-user feedback",
	Long: `feedbackd is a small web service for user registration, login and
per-user feedback entries.

It provides:
- User registration and cookie-based login sessions
- Per-user feedback entries with strict ownership
- A REST API with redirect-based navigation
- Terminal user administration`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip config loading for commands that don't need it
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if cfg.IsDevMode() {
			logger, err = zap.NewDevelopment()
		} else {
			logger, err = zap.NewProduction()
		}
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is /etc/feedbackd/config.yml)")
}

// initServices initializes all services
func initServices() (*Services, error) {
	db, err := sqlite.New(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	userRepo := sqlite.NewUserRepository(db)
	feedbackRepo := sqlite.NewFeedbackRepository(db)
	sessionRepo := sqlite.NewSessionRepository(db)

	authService := service.NewAuthService(userRepo, logger)
	sessionService := service.NewSessionService(sessionRepo, cfg.SessionSecretKey, cfg.SessionAlgorithm, cfg.SessionTTLMinutes, logger)
	feedbackService := service.NewFeedbackService(feedbackRepo, logger)

	return &Services{
		DB:              db,
		UserRepo:        userRepo,
		FeedbackRepo:    feedbackRepo,
		SessionRepo:     sessionRepo,
		AuthService:     authService,
		SessionService:  sessionService,
		FeedbackService: feedbackService,
	}, nil
}

// Services holds all initialized services
type Services struct {
	DB              *sqlite.DB
	UserRepo        repository.UserRepository
	FeedbackRepo    repository.FeedbackRepository
	SessionRepo     repository.SessionRepository
	AuthService     *service.AuthService
	SessionService  *service.SessionService
	FeedbackService *service.FeedbackService
}

// Close closes all resources
func (s *Services) Close() {
	if s.DB != nil {
		s.DB.Close()
	}
}
