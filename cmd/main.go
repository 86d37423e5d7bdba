package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	_ "github.com/sbilibin2017/archive-viewer/docs"
	"github.com/sbilibin2017/archive-viewer/internal/facades"
	"github.com/sbilibin2017/archive-viewer/internal/handlers"
	"github.com/sbilibin2017/archive-viewer/internal/logger"
	"github.com/sbilibin2017/archive-viewer/internal/middlewares"
	"github.com/sbilibin2017/archive-viewer/internal/repositories"
	"github.com/sbilibin2017/archive-viewer/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// config holds every setting read from the environment.
type config struct {
	AppHost     string
	AppPort     string
	LogLevel    string
	LogFile     string
	LogMaxSize  int
	TimeZone    string
	PgHost      string
	PgPort      int
	PgUser      string
	PgPassword  string
	PgDB        string
	PgMaxOpen   int
	PgMaxIdle   int
	RedisHost   string
	RedisPort   int
	RedisDB     int
	RedisPass   string
	RedisPool   int
	RedisIdle   int
	RedisExp    int
	Users       string
	Entries     string
	KafkaBroker []string
	KafkaTopic  string
	SearchLimit int
	SearchWin   int
}

// @title archive-viewer API
// @version 1.0.0
// @description Read-only service exposing user profiles and their TV, music, podcast and book archives
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Build version: %s\nBuild date: %s\nBuild commit: %s\n", buildVersion, buildDate, buildCommit)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns
// the application, storage, cache, messaging and logging configuration.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	atoi := func(key, defaultValue string) (int, error) {
		n, err := strconv.Atoi(getEnv(key, defaultValue))
		if err != nil {
			return 0, fmt.Errorf("%s: %w", key, err)
		}
		return n, nil
	}

	// Application config
	cfg.AppHost = getEnv("APP_HOST", "localhost")
	cfg.AppPort = getEnv("APP_PORT", "8080")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")
	cfg.LogFile = getEnv("APP_LOG_FILE", "")
	if cfg.LogMaxSize, err = atoi("APP_LOG_MAX_SIZE_MB", "100"); err != nil {
		return
	}
	cfg.TimeZone = getEnv("APP_TIMEZONE", "Local")

	// PostgreSQL config
	cfg.PgHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.PgUser = getEnv("POSTGRES_USER", "user")
	cfg.PgPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.PgDB = getEnv("POSTGRES_DB", "database")
	if cfg.PgPort, err = atoi("POSTGRES_PORT", "5432"); err != nil {
		return
	}
	if cfg.PgMaxOpen, err = atoi("POSTGRES_MAX_OPEN_CONNS", "16"); err != nil {
		return
	}
	if cfg.PgMaxIdle, err = atoi("POSTGRES_MAX_IDLE_CONNS", "8"); err != nil {
		return
	}

	// Redis config
	cfg.RedisHost = getEnv("REDIS_HOST", "localhost")
	cfg.RedisPass = getEnv("REDIS_PASSWORD", "")
	if cfg.RedisPort, err = atoi("REDIS_PORT", "6379"); err != nil {
		return
	}
	if cfg.RedisDB, err = atoi("REDIS_DB", "0"); err != nil {
		return
	}
	if cfg.RedisPool, err = atoi("REDIS_POOL_SIZE", "10"); err != nil {
		return
	}
	if cfg.RedisIdle, err = atoi("REDIS_MIN_IDLE_CONNS", "2"); err != nil {
		return
	}
	if cfg.RedisExp, err = atoi("REDIS_EXP_SECOND", "300"); err != nil {
		return
	}

	// Document collections
	cfg.Users = getEnv("USERS_COLLECTION", "users_v3")
	cfg.Entries = getEnv("ENTRIES_COLLECTION", "archives_v3")

	// Kafka config, publishing is disabled without brokers
	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		for _, b := range strings.Split(brokers, ",") {
			if b = strings.TrimSpace(b); b != "" {
				cfg.KafkaBroker = append(cfg.KafkaBroker, b)
			}
		}
	}
	cfg.KafkaTopic = getEnv("KAFKA_TOPIC", "archive-views")

	// Search rate limit
	if cfg.SearchLimit, err = atoi("SEARCH_RATE_LIMIT", "30"); err != nil {
		return
	}
	if cfg.SearchWin, err = atoi("SEARCH_RATE_WINDOW_SECOND", "60"); err != nil {
		return
	}

	return
}

// run initializes the logger, database, Redis, Kafka writer, and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg config) error {
	// Initialize logger
	if err := logger.InitializeWithFile(cfg.LogLevel, logger.FileConfig{
		Path:      cfg.LogFile,
		MaxSizeMB: cfg.LogMaxSize,
	}); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infow("logger initialized", "level", cfg.LogLevel, "file", cfg.LogFile)

	loc, err := time.LoadLocation(cfg.TimeZone)
	if err != nil {
		logger.Log.Errorw("failed to load time zone", "time_zone", cfg.TimeZone, "error", err)
		return err
	}

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.PgUser, cfg.PgPassword, cfg.PgHost, cfg.PgPort, cfg.PgDB)
	logger.Log.Infow("connecting to PostgreSQL", "host", cfg.PgHost, "port", cfg.PgPort, "db", cfg.PgDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		logger.Log.Errorw("PostgreSQL connection error", "error", err)
		return err
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PgMaxOpen)
	db.SetMaxIdleConns(cfg.PgMaxIdle)

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
		Password:     cfg.RedisPass,
		DB:           cfg.RedisDB,
		PoolSize:     cfg.RedisPool,
		MinIdleConns: cfg.RedisIdle,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Log.Errorw("Redis connection error", "error", err)
		return err
	}
	defer rdb.Close()

	// Kafka writer, left as a nil interface when no brokers are configured
	var writer facades.KafkaWriter
	if len(cfg.KafkaBroker) > 0 {
		writer = &kafka.Writer{
			Addr:                   kafka.TCP(cfg.KafkaBroker...),
			Topic:                  cfg.KafkaTopic,
			Balancer:               &kafka.Hash{},
			Async:                  true,
			AllowAutoTopicCreation: true,
		}
		logger.Log.Infow("Kafka publishing enabled", "brokers", cfg.KafkaBroker, "topic", cfg.KafkaTopic)
	}
	viewEvents := facades.NewViewEventKafkaFacade(writer)
	defer viewEvents.Close()

	// Initialize repositories
	documentRepo := repositories.NewDocumentRepository(db)
	userIDCacheRepo := repositories.NewUserIDCacheRepository(rdb, time.Duration(cfg.RedisExp)*time.Second)
	rateLimitRepo := repositories.NewRateLimitRepository(rdb)

	// Initialize services
	userService := services.NewUserService(documentRepo, userIDCacheRepo, cfg.Users)
	archiveService := services.NewArchiveService(userService, documentRepo, viewEvents, cfg.Entries, loc)

	// Initialize handlers
	listUsersHandler := handlers.NewListUsersHandler(userService)
	searchUsersHandler := handlers.NewSearchUsersHandler(userService)
	profileHandler := handlers.NewGetProfileHandler(archiveService)
	categoryHandler := handlers.NewGetCategoryHandler(archiveService)

	searchLimiter := middlewares.RateLimitMiddleware(
		rateLimitRepo, cfg.SearchLimit, time.Duration(cfg.SearchWin)*time.Second,
	)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)

	r.Get("/healthz", handlers.NewHealthHandler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/users", listUsersHandler)
		r.With(searchLimiter).Get("/users/search", searchUsersHandler)
		r.Get("/profiles/{username}", profileHandler)
		r.Get("/profiles/{username}/{category}", categoryHandler)
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.AppHost, cfg.AppPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infow("HTTP server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
