package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osuarez/clinic-manager/internal/config"
	"github.com/osuarez/clinic-manager/internal/handler"
	authHandler "github.com/osuarez/clinic-manager/internal/handler/auth"
	historyHandler "github.com/osuarez/clinic-manager/internal/handler/history"
	userHandler "github.com/osuarez/clinic-manager/internal/handler/user"
	"github.com/osuarez/clinic-manager/internal/middleware"
	"github.com/osuarez/clinic-manager/internal/repository/postgres"
	"github.com/osuarez/clinic-manager/internal/router"
	authService "github.com/osuarez/clinic-manager/internal/service/auth"
	historyService "github.com/osuarez/clinic-manager/internal/service/history"
	userService "github.com/osuarez/clinic-manager/internal/service/user"
	"github.com/osuarez/clinic-manager/internal/session"
	"github.com/osuarez/clinic-manager/pkg/logger"
	"github.com/osuarez/clinic-manager/pkg/security"
)

func main() {
	log := logger.NewLogger(nil)

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err, "failed to load configuration")
	}

	// Initialize database
	db, err := postgres.NewDB(cfg.Database)
	if err != nil {
		log.Fatal(err, "failed to connect to database")
	}
	defer db.Close()

	// Initialize session store
	sessionStore, err := session.NewRedisStore(cfg.Redis.URL)
	if err != nil {
		log.Fatal(err, "failed to connect to Redis")
	}

	sessions := session.NewManager(sessionStore, session.Config{
		CookieName: cfg.Session.CookieName,
		Secret:     cfg.Session.Secret,
		TTL:        cfg.Session.TTL,
		CacheTTL:   cfg.Session.CacheTTL,
	})

	// Initialize repositories
	userRepo := postgres.NewUserRepository(db)
	historyRepo := postgres.NewHistoryRepository(db)

	// Initialize services
	hasher := security.NewBcryptHasher(12)
	authSvc := authService.NewService(userRepo, sessions, hasher)
	userSvc := userService.NewService(userRepo, hasher)
	historySvc := historyService.NewService(historyRepo)

	// Initialize middleware and handlers
	authMiddleware := middleware.NewAuthMiddleware(sessions)
	h := handler.NewHandler()
	authH := authHandler.NewHandler(authSvc, sessions)
	userH := userHandler.NewHandler(userSvc)
	historyH := historyHandler.NewHandler(historySvc)

	// Setup router
	r := router.NewRouter(authMiddleware, authH, userH, historyH, h, router.Config{
		LoginRPS:      cfg.RateLimit.LoginRPS,
		LoginBurst:    cfg.RateLimit.LoginBurst,
		MetricsPrefix: "clinic",
	})
	r.Setup()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r.Engine(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(err, "failed to start server")
		}
	}()
	log.Info("clinic server started", "port", cfg.Server.Port)

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal(err, "server forced to shutdown")
	}

	log.Info("server exited properly")
}
