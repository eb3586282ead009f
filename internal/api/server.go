package api

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/dhima/looking-glass/docs" // registers swagger docs
	"github.com/dhima/looking-glass/internal/api/handlers"
	"github.com/dhima/looking-glass/internal/api/middleware"
	"github.com/dhima/looking-glass/internal/api/response"
	"github.com/dhima/looking-glass/internal/logging"
	"github.com/dhima/looking-glass/internal/logs"
	"github.com/dhima/looking-glass/internal/storage"
	platformEvents "github.com/dhima/looking-glass/platform/events"
	"github.com/dhima/looking-glass/pkg/clock"
	"github.com/dhima/looking-glass/pkg/config"
	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const shutdownTimeout = 30 * time.Second

// Server orchestrates HTTP routing and dependencies for the API service.
type Server struct {
	config    config.App
	logger    logging.Logger
	router    *gin.Engine
	db        *sql.DB
	publisher *platformEvents.Publisher

	repo       *storage.LogRepository
	logService *logs.Service
}

// NewServer opens the datastore described by cfg and wires the API around it.
func NewServer(ctx context.Context, cfg config.App, logger logging.Logger) (*Server, error) {
	switch cfg.Environment {
	case "production":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}

	db, dialect, err := storage.Open(ctx, cfg)
	if err != nil {
		return nil, err
	}
	logger.Info("connected to database", zap.String("driver", dialect.Name))

	if cfg.AutoCreateSchema {
		if err := storage.EnsureSchema(ctx, db, dialect); err != nil {
			_ = db.Close()
			return nil, err
		}
	}

	var publisher *platformEvents.Publisher
	if brokers := cfg.Brokers(); len(brokers) > 0 {
		publisher, err = platformEvents.NewPublisher(brokers, cfg.KafkaTopic, logger)
		if err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("create kafka publisher: %w", err)
		}
		logger.Info("publishing log events", zap.Strings("brokers", brokers), zap.String("topic", cfg.KafkaTopic))
	}

	return newServer(cfg, logger, db, dialect, publisher), nil
}

func newServer(cfg config.App, logger logging.Logger, db *sql.DB, dialect storage.Dialect, publisher *platformEvents.Publisher) *Server {
	repo := storage.NewLogRepository(db, dialect, logger)

	// A nil *Publisher must not reach the service as a non-nil interface.
	var eventPublisher logs.EventPublisher
	if publisher != nil {
		eventPublisher = publisher
	}

	server := &Server{
		config:     cfg,
		logger:     logger,
		db:         db,
		publisher:  publisher,
		repo:       repo,
		logService: logs.NewService(repo, eventPublisher, logger),
	}
	server.setupRouter()
	return server
}

// setupRouter configures the Gin router with middleware and routes.
func (s *Server) setupRouter() {
	router := gin.New()
	zapLogger := logging.Zap(s.logger)

	// Recovery first so panics in later middleware are caught.
	router.Use(ginzap.RecoveryWithZap(zapLogger, true))
	router.Use(middleware.RequestID())
	router.Use(ginzap.GinzapWithConfig(zapLogger, &ginzap.Config{
		TimeFormat: time.RFC3339,
		UTC:        true,
		SkipPaths:  []string{"/health"},
		Context: func(c *gin.Context) []zap.Field {
			return []zap.Field{zap.String("request_id", response.GetRequestID(c))}
		},
	}))
	router.Use(cors.New(s.corsConfig()))

	info := handlers.NewInfoHandler(clock.RealClock{})
	router.GET("/", info.Root)
	router.GET("/health", handlers.NewHealthHandler(s.logger, s.repo).Health)
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")
	{
		api.GET("/", info.APIInfo)

		logHandler := handlers.NewLogHandler(s.logger, s.logService)
		logRoutes := api.Group("/logs")
		{
			logRoutes.POST("", logHandler.CreateLog)
			logRoutes.GET("", logHandler.ListLogs)
			logRoutes.GET("/date/:date", logHandler.GetLogByDate)
			logRoutes.GET("/:id", logHandler.GetLog)
			logRoutes.PUT("/:id", logHandler.UpdateLog)
			logRoutes.DELETE("/:id", logHandler.DeleteLog)
		}
	}

	s.router = router
}

func (s *Server) corsConfig() cors.Config {
	cfg := cors.Config{
		AllowOrigins:  s.config.CORSOrigins,
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", middleware.RequestIDHeader, response.MessageHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(cfg.AllowOrigins) == 0 || (len(cfg.AllowOrigins) == 1 && cfg.AllowOrigins[0] == "*") {
		cfg.AllowOrigins = nil
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowCredentials = true
	}
	return cfg
}

// Handler exposes the configured router.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Serve starts the HTTP server and blocks until SIGINT or SIGTERM.
func (s *Server) Serve() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	return s.Run(ctx)
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully and
// releases the publisher, the database pool and the logger.
func (s *Server) Run(ctx context.Context) error {
	addr := ":" + s.config.APIPort
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("starting API server",
			zap.String("address", addr),
			zap.String("environment", s.config.Environment),
			zap.String("log_level", s.config.LogLevel),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	var serveErr error
	select {
	case <-ctx.Done():
		s.logger.Info("shutting down server gracefully...")
	case err, ok := <-errCh:
		if ok {
			serveErr = fmt.Errorf("listen on %s: %w", addr, err)
			s.logger.Error("server stopped unexpectedly", zap.Error(err))
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		s.logger.Error("server forced to shutdown", zap.Error(err))
		if serveErr == nil {
			serveErr = err
		}
	}

	s.Close()
	s.logger.Info("server stopped")
	if err := s.logger.Sync(); err != nil && !isIgnorableSyncError(err) && serveErr == nil {
		serveErr = err
	}
	return serveErr
}

// Close releases the publisher and the database pool.
func (s *Server) Close() {
	if s.publisher != nil {
		if err := s.publisher.Close(); err != nil {
			s.logger.Error("failed to close kafka publisher", zap.Error(err))
		}
	}
	if s.db != nil {
		if err := s.db.Close(); err != nil {
			s.logger.Error("failed to close database connection", zap.Error(err))
		}
	}
}

// Syncing stdout/stderr fails on some platforms; that is not a real error.
func isIgnorableSyncError(err error) bool {
	var pathErr *os.PathError
	if errors.As(err, &pathErr) {
		return errors.Is(pathErr.Err, syscall.EINVAL) || errors.Is(pathErr.Err, syscall.ENOTTY)
	}
	return false
}
