// cmd/api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dangerclosesec/thinknest/internal/audit"
	"github.com/dangerclosesec/thinknest/internal/auth"
	"github.com/dangerclosesec/thinknest/internal/cache"
	"github.com/dangerclosesec/thinknest/internal/config"
	"github.com/dangerclosesec/thinknest/internal/database"
	"github.com/dangerclosesec/thinknest/internal/email"
	"github.com/dangerclosesec/thinknest/internal/handler"
	"github.com/dangerclosesec/thinknest/internal/middleware"
	"github.com/dangerclosesec/thinknest/internal/recaptcha"
	"github.com/dangerclosesec/thinknest/internal/repository"
	"github.com/dangerclosesec/thinknest/internal/service"
	"github.com/dangerclosesec/thinknest/internal/storage"
	"github.com/dangerclosesec/thinknest/internal/validation"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

const uploadsPrefix = "/uploads"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "startup error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:     slog.LevelInfo,
		AddSource: true,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{
					Key:   a.Key,
					Value: slog.StringValue(a.Value.Time().Format(time.RFC3339)),
				}
			}
			return a
		},
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx := context.Background()

	// Initialize database
	db, err := database.Open(ctx, cfg)
	if err != nil {
		return fmt.Errorf("setting up database: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("getting database instance: %w", err)
	}
	defer sqlDB.Close()

	if err := database.Migrate(sqlDB, cfg.Database.SearchPath, database.Up, 0, logger); err != nil {
		return err
	}

	// Initialize cache service
	cacheService := service.NewCacheService(setupCache(ctx, cfg, logger), service.CacheConfig{TTL: cfg.Redis.TTL}, logger)

	// Initialize email service
	emailService, err := email.NewEmailService(cfg, logger)
	if err != nil {
		return fmt.Errorf("initializing email service: %w", err)
	}
	var notifier service.Notifier
	if emailService.Provider() != email.ProviderNone {
		notifier = emailService
	} else {
		logger.Warn("no mail transport configured, contact notifications disabled")
	}

	var verifier service.Verifier
	if cfg.RecaptchaActive() {
		verifier = recaptcha.NewClient(cfg.Contact.RecaptchaSecret, cfg.Contact.RecaptchaURL)
	}

	files, err := storage.NewLocalStore(cfg.Upload.Dir, uploadsPrefix, cfg.Upload.MaxBytes)
	if err != nil {
		return fmt.Errorf("preparing upload directory: %w", err)
	}

	// Initialize repositories
	hofRepo := repository.NewHOFRepository(db)
	juryRepo := repository.NewJuryRepository(db)
	challengeRepo := repository.NewChallengeRepository(db)
	featuredRepo := repository.NewFeaturedRepository(db)
	newsRepo := repository.NewNewsRepository(db)
	contactRepo := repository.NewContactRepository(db)
	caseStudyRepo := repository.NewCaseStudyRepository(db)
	mediaRepo := repository.NewMediaRepository(db)
	storyRepo := repository.NewStoryRepository(db)

	// Initialize services
	validate := validation.New()
	hofService := service.NewHOFService(hofRepo, validate, cacheService)
	juryService := service.NewJuryService(juryRepo, validate, cacheService, logger)
	challengeService := service.NewChallengeService(challengeRepo, validate, cfg.Features.Challenges)
	featuredService := service.NewFeaturedService(featuredRepo, validate, cfg.Features.FeaturedIdeas)
	newsService := service.NewNewsService(newsRepo, validate)
	contactService := service.NewContactService(contactRepo, validate, verifier, notifier, logger)
	caseStudyService := service.NewCaseStudyService(caseStudyRepo, validate, cacheService, logger)
	mediaService := service.NewMediaService(mediaRepo, files, validate)
	storyService := service.NewStoryService(storyRepo, mediaRepo, validate)

	// Initialize handlers
	hofHandler := handler.NewHOFHandler(hofService)
	juryHandler := handler.NewJuryHandler(juryService)
	challengeHandler := handler.NewChallengeHandler(challengeService)
	featuredHandler := handler.NewFeaturedHandler(featuredService)
	newsHandler := handler.NewNewsHandler(newsService)
	contactHandler := handler.NewContactHandler(contactService)
	caseStudyHandler := handler.NewCaseStudyHandler(caseStudyService)
	mediaHandler := handler.NewMediaHandler(mediaService, storyService, cfg.Upload.MaxBytes)

	admin := adminGuard(cfg, audit.NewSlogLogger(logger), logger)
	contactLimiter := middleware.NewRateLimiter(cfg.Contact.RateLimit, cfg.Contact.RateWindow)

	// Create router
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(chimw.RequestID)
	r.Use(middleware.Logging(logger))
	r.Use(middleware.Recovery(logger))
	r.Use(chimw.Timeout(cfg.Server.RequestTimeout))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.Server.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Retry-After"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})

	// Uploaded files
	r.Handle(uploadsPrefix+"/*", http.StripPrefix(uploadsPrefix, http.FileServer(http.Dir(files.Dir()))))

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Mount("/hof", hofHandler.Routes())
		r.Mount("/jury", juryHandler.Routes(admin))
		r.Mount("/challenges", challengeHandler.Routes(admin))
		r.Mount("/featured-ideas", featuredHandler.Routes(admin))
		r.Mount("/news", newsHandler.Routes(admin))
		r.Mount("/contact", contactHandler.Routes(contactLimiter.Middleware))
		r.Mount("/case-studies", caseStudyHandler.Routes(admin))
		r.Mount("/media", mediaHandler.Routes(admin))
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"Not Found"}`))
	})

	// Create server
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Server error channel
	serverErrors := make(chan error, 1)

	// Start server
	go func() {
		logger.Info("server starting", "port", cfg.Server.Port)
		serverErrors <- srv.ListenAndServe()
	}()

	// Shutdown channel
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Wait for shutdown or error
	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info("shutdown started", "signal", sig)

		// Give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		// Gracefully shutdown the server
		if err := srv.Shutdown(ctx); err != nil {
			// If shutdown times out, forcefully close
			srv.Close()
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}

	return nil
}

// setupCache connects to Redis when REDIS_ADDR is set. An unreachable Redis degrades to no caching.
func setupCache(ctx context.Context, cfg *config.Config, logger *slog.Logger) cache.Cache {
	if cfg.Redis.Addr == "" {
		return cache.NewNoop()
	}

	rc := cache.NewRedis(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := rc.Ping(pingCtx); err != nil {
		logger.Warn("redis unavailable, caching disabled", "addr", cfg.Redis.Addr, "error", err)
		rc.Close()
		return cache.NewNoop()
	}
	return rc
}

// adminGuard audits write routes and protects them when ADMIN_JWT_SECRET is set.
func adminGuard(cfg *config.Config, auditLogger audit.Logger, logger *slog.Logger) func(http.Handler) http.Handler {
	record := middleware.Audit(auditLogger)
	if cfg.Admin.JWTSecret == "" {
		logger.Warn("ADMIN_JWT_SECRET is not set, admin routes are unprotected")
		return record
	}
	requireAdmin := middleware.RequireAdmin(auth.NewTokenManager(cfg.Admin.JWTSecret, 0))
	return func(next http.Handler) http.Handler {
		return requireAdmin(record(next))
	}
}
