package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/handlers"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"

	"linktrack/internal/cache"
	"linktrack/internal/config"
	"linktrack/internal/handler"
	"linktrack/internal/password"
	"linktrack/internal/ratelimit"
	"linktrack/internal/repository"
	"linktrack/internal/service"
)

const (
	createLimit    = 30
	createWindow   = time.Minute
	domainCacheTTL = 5 * time.Minute
	sweepInterval  = 5 * time.Minute
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	if err := run(); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := repository.Connect(ctx, cfg.DatabaseDSN)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := repository.RunMigrations(db); err != nil {
		return err
	}

	// Redis optional
	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb, err = cache.ConnectRedis(cfg.RedisAddr, cfg.RedisPassword)
		if err != nil {
			slog.Warn("redis unavailable, using in-process limiters", "error", err)
			rdb = nil
		} else {
			slog.Info("redis connected", "addr", cfg.RedisAddr)
			defer rdb.Close()
		}
	}

	h := newHandler(ctx, cfg, db, rdb)

	// CORS
	allowed := handlers.AllowedOrigins(cfg.AllowedOrigins)
	allowedHeaders := handlers.AllowedHeaders([]string{"Content-Type", "Authorization"})
	allowedMethods := handlers.AllowedMethods([]string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"})

	var root http.Handler = h.Routes()
	root = handlers.CORS(allowed, allowedHeaders, allowedMethods, handlers.AllowCredentials())(root)
	root = handlers.RecoveryHandler(handlers.PrintRecoveryStack(!cfg.IsProduction()))(root)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      root,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("server listening", "addr", srv.Addr, "env", cfg.AppEnv)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case <-ctx.Done():
		slog.Info("shutting down server...")
	case err := <-serverErr:
		if err != nil {
			return err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	slog.Info("server gracefully stopped")
	return nil
}

// newHandler wires the services over db. rdb may be nil, in which case
// limiters are in-process and domain lookups are not cached.
func newHandler(ctx context.Context, cfg *config.Config, db *sqlx.DB, rdb *redis.Client) *handler.Handler {
	links := repository.NewLinkRepo(db)
	domainRepo := repository.NewDomainRepo(db)
	creds := service.NewCredentials(repository.NewPasswordRepo(db), password.NewHasher(cfg.BcryptCost))

	var (
		domains       *service.DomainService
		pwLimiter     ratelimit.Limiter
		createLimiter ratelimit.Limiter
	)
	if rdb != nil {
		domains = service.NewDomainService(domainRepo, cache.New(rdb, domainCacheTTL))
		pwLimiter = ratelimit.NewRedisLimiter(rdb, cfg.PasswordAttempts, cfg.PasswordWindow)
		createLimiter = ratelimit.NewRedisLimiter(rdb, createLimit, createWindow)
	} else {
		domains = service.NewDomainService(domainRepo, nil)
		pw := ratelimit.NewTokenBucket(cfg.PasswordAttempts, cfg.PasswordWindow)
		create := ratelimit.NewTokenBucket(createLimit, createWindow)
		go pw.RunSweeper(ctx, sweepInterval)
		go create.RunSweeper(ctx, sweepInterval)
		pwLimiter, createLimiter = pw, create
	}

	engine := service.NewEngine(links, creds, service.NewClickRecorder(links), domains)
	linkSvc := service.NewLinkService(links, domainRepo, creds)
	linkSvc.Reserve(cfg.NotFoundPath, cfg.ExpiredPath)
	h := &handler.Handler{
		Resolver:     service.NewThrottledResolver(engine, pwLimiter),
		Links:        linkSvc,
		Domains:      domains,
		Auth:         handler.NewMiddleware(cfg.JWTSecret),
		RateLimiter:  createLimiter,
		DB:           db,
		BaseURL:      cfg.BaseURL,
		NotFoundPath: cfg.NotFoundPath,
		ExpiredPath:  cfg.ExpiredPath,
		TrustProxy:   cfg.TrustProxy,
	}
	return h
}
