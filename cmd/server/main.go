package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"forum/internal/auth"
	"forum/internal/categories"
	"forum/internal/config"
	"forum/internal/domain/repositories"
	forumRepo "forum/internal/domain/repositories/forum"
	"forum/internal/handler"
	"forum/internal/middleware"
	"forum/internal/repository/memory"
	"forum/internal/repository/postgres"
	postgresForum "forum/internal/repository/postgres/forum"
	"forum/internal/repository/slot"
	"forum/internal/seed"
	"forum/internal/service/content"
	serviceForum "forum/internal/service/forum"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/automaxprocs/maxprocs"
)

func main() {
	// Load .env file (silently ignore if it doesn't exist - for production)
	_ = godotenv.Load()

	cfg := config.Load()

	// Setup structured logging, optionally mirrored to a rotated file
	var logOut io.Writer = os.Stdout
	if cfg.LogDir != "" {
		logFile, err := config.SetupLogFile(cfg.LogDir, "server", cfg.LogMaxFiles)
		if err != nil {
			log.Fatalf("Failed to set up log file: %v", err)
		}
		defer logFile.Close()
		logOut = io.MultiWriter(os.Stdout, logFile)
	}
	logger := config.NewLogger(cfg.Environment, logOut)
	slog.SetDefault(logger)

	// Match GOMAXPROCS to the container CPU quota
	_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...any) {
		logger.Debug(fmt.Sprintf(format, args...))
	}))

	logger.Info("server starting",
		"environment", cfg.Environment,
		"port", cfg.Port,
		"table_prefix", cfg.TablePrefix,
		"curiosity_store", cfg.CuriosityStore,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	health := map[string]handler.Pinger{}

	// Topic and carousel storage: postgres when configured, memory otherwise
	var (
		topicRepo    forumRepo.TopicRepository
		featuredRepo forumRepo.FeaturedTopicRepository
		txManager    repositories.TransactionManager
	)
	if cfg.DatabaseURL != "" {
		pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Failed to create connection pool: %v", err)
		}
		defer pool.Close()

		repoConfig := &postgres.RepositoryConfig{
			Pool:   pool,
			Tables: postgres.NewTableNames(cfg.TablePrefix),
			Logger: logger,
		}
		if err := postgres.EnsureSchema(ctx, repoConfig); err != nil {
			log.Fatalf("Failed to ensure schema: %v", err)
		}

		topicRepo = postgresForum.NewTopicRepository(repoConfig)
		featuredRepo = postgresForum.NewFeaturedRepository(repoConfig)
		txManager = postgres.NewTransactionManager(pool, logger)
		health["postgres"] = pool
		logger.Info("database connected", "topics", repoConfig.Tables.Topics)
	} else {
		topics := memory.NewTopicRepository()
		featured := memory.NewFeaturedRepository()
		topicRepo, featuredRepo = topics, featured
		txManager = memory.NewTransactionManager(featured)
		logger.Warn("DATABASE_URL not set, keeping topics in memory")
	}

	if cfg.Environment != "prod" {
		data, err := seed.Load()
		if err != nil {
			log.Fatalf("Failed to load seed data: %v", err)
		}
		if err := seed.Seed(ctx, data, topicRepo, featuredRepo, logger); err != nil {
			log.Fatalf("Failed to seed demo content: %v", err)
		}
	}

	// Curiosity texts live in a slot store
	var slotStore forumRepo.SlotStore
	switch cfg.CuriosityStore {
	case "file":
		store, err := slot.NewFileStore(cfg.SlotDir)
		if err != nil {
			log.Fatalf("Failed to open slot directory: %v", err)
		}
		slotStore = store
	case "redis":
		rdb, err := slot.DialRedis(ctx, cfg.RedisURL)
		if err != nil {
			log.Fatalf("Failed to connect to redis: %v", err)
		}
		defer rdb.Close()
		slotStore = slot.NewRedisStore(rdb, cfg.TablePrefix)
		health["redis"] = handler.PingFunc(func(ctx context.Context) error { return rdb.Ping(ctx).Err() })
	case "memory":
		slotStore = slot.NewMemoryStore()
	default:
		log.Fatalf("Unknown CURIOSITY_STORE %q (want memory, file or redis)", cfg.CuriosityStore)
	}

	// Admin gate
	var verifier auth.JWTVerifier
	if cfg.AdminJWKSURL != "" {
		v, err := auth.NewJWTVerifier(cfg.AdminJWKSURL, cfg.AdminRole, logger)
		if err != nil {
			log.Fatalf("Failed to create JWT verifier: %v", err)
		}
		defer v.Close()
		verifier = v
	} else if cfg.Environment == "prod" {
		log.Fatalf("ADMIN_JWKS_URL is required in production")
	} else {
		logger.Warn("ADMIN_JWKS_URL not set, admin routes are open (NEVER use in production!)")
	}

	// Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	httpMetrics := middleware.NewHTTPMetrics(registry)

	// Services
	catalog, err := categories.NewCatalog()
	if err != nil {
		log.Fatalf("Failed to load categories: %v", err)
	}
	contentService := content.NewService(logger, registry)
	topicService := serviceForum.NewTopicService(topicRepo, catalog, contentService, logger)
	featuredService := serviceForum.NewFeaturedService(featuredRepo, topicRepo, txManager, logger)
	curiosityService := serviceForum.NewCuriosityService(slotStore, logger)

	logger.Info("services initialized")

	// Create HTTP router (Go 1.22+ enhanced patterns)
	mux := http.NewServeMux()
	routes := &handler.Routes{
		Health:    handler.NewHealthHandler(health, logger),
		Content:   handler.NewContentHandler(contentService, logger),
		Topics:    handler.NewTopicHandler(topicService, catalog, logger),
		Featured:  handler.NewFeaturedHandler(featuredService, logger),
		Curiosity: handler.NewCuriosityHandler(curiosityService, logger),
		Admin:     middleware.RequireAdmin(verifier, logger),
	}
	routes.Register(mux)
	mux.Handle("GET /metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	// Order: CORS → Metrics → Recovery → Routes
	var h http.Handler = mux
	h = middleware.Recovery(logger)(h)
	h = httpMetrics.Middleware(h)

	// CORS - outermost to answer OPTIONS pre-flight requests
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   strings.Split(cfg.CORSOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	})
	h = corsHandler.Handler(h)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      h,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", server.Addr)
		errCh <- server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown failed", "error", err)
		}
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	}
}
