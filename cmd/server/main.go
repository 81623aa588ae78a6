package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"leads-backend/auth"
	"leads-backend/config"
	"leads-backend/handlers"
	"leads-backend/logger"
	"leads-backend/notifier"
	"leads-backend/repository"
	"leads-backend/service"
	"leads-backend/storage"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	if cfg.UsingDevSigningKey() {
		log.Warn("JWT_SIGNING_KEY not set, using the development signing key")
	}
	if cfg.UsingDefaultAdminPassword() {
		log.Warn("ADMIN_PASSWORD not set, the admin attorney is seeded with the default password")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize database connections
	db, err := initPostgres(ctx, cfg.DatabaseURL, log)
	if err != nil {
		log.Fatal("Failed to initialize Postgres", zap.Error(err))
	}
	defer db.Close()

	// Initialize storage
	fileStorage, err := storage.NewStorage(ctx, cfg.Storage())
	if err != nil {
		log.Fatal("Failed to initialize storage", zap.Error(err))
	}
	log.Info("Storage initialized", zap.String("type", cfg.StorageType))

	mailer, err := notifier.New(ctx, cfg.Notifier(), log)
	if err != nil {
		log.Fatal("Failed to initialize notifier", zap.Error(err))
	}
	log.Info("Notifier initialized", zap.String("type", cfg.NotifierType))

	// Initialize repositories
	candidateRepo := repository.NewCandidateRepository(db)
	attorneyRepo := repository.NewAttorneyRepository(db)
	fileRepo := repository.NewFileRepository(db)

	// Initialize services
	tokens := auth.NewTokenService(cfg.JWTSigningKey, cfg.JWTIssuer, cfg.TokenTTL)
	attorneyService := service.NewAttorneyService(attorneyRepo, tokens, log)

	admin, created, err := attorneyService.Seed(ctx, service.DefaultAdmin(cfg.AdminPassword, cfg.AdminEmail))
	if err != nil {
		log.Fatal("Failed to seed admin attorney", zap.Error(err))
	}
	if created {
		log.Info("Admin attorney created", zap.String("username", admin.Username))
	}

	candidateService := service.NewCandidateService(
		service.WithCandidateStore(candidateRepo),
		service.WithAttorneyStore(attorneyRepo),
		service.WithNotifier(mailer),
		service.WithReviewers(cfg.ReviewerUsernames...),
		service.WithNotifyTimeout(cfg.NotifyTimeout),
		service.WithLogger(log),
	)
	resumeService := service.NewResumeService(fileRepo, candidateRepo, fileStorage, cfg.MaxUploadBytes, log)

	gin.SetMode(gin.ReleaseMode)
	router := handlers.NewRouter(handlers.Services{
		Candidates: candidateService,
		Attorneys:  attorneyService,
		Resumes:    resumeService,
	}, log)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("Server starting", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown failed", zap.Error(err))
	}
}

func initPostgres(ctx context.Context, connString string, log *zap.Logger) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	if err := repository.EnsureSchema(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}

	log.Info("Postgres connection established, schema ready")
	return pool, nil
}
