package main

import (
	"context"
	"errors"
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
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	_ "github.com/sbilibin2017/bigstack/docs"
	"github.com/sbilibin2017/bigstack/internal/handlers"
	"github.com/sbilibin2017/bigstack/internal/jwt"
	"github.com/sbilibin2017/bigstack/internal/logger"
	"github.com/sbilibin2017/bigstack/internal/middlewares"
	"github.com/sbilibin2017/bigstack/internal/repositories"
	"github.com/sbilibin2017/bigstack/internal/services"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// config holds every setting read from the environment.
type config struct {
	AppHost   string
	AppPort   string
	LogLevel  string
	LogFormat string

	MongoURI     string
	MongoDB      string
	MongoTimeout time.Duration

	RedisHost       string
	RedisPort       int
	RedisDB         int
	RedisPassword   string
	ProfileCacheExp time.Duration

	KafkaBrokers []string
	KafkaTopic   string

	JWTSecretKey string
	JWTExp       time.Duration

	AuthRateLimitRPS   float64
	AuthRateLimitBurst int
}

// @title bigstack API
// @version 1.0.0
// @description Q&A and developer profile backend
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
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
	fmt.Printf("Version: %s, Commit: %s, Build: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file, when present, and
// returns the configuration with defaults applied.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}
	getInt := func(key, defaultValue string) (int, error) {
		v, err := strconv.Atoi(getEnv(key, defaultValue))
		if err != nil {
			return 0, fmt.Errorf("%s: %w", key, err)
		}
		return v, nil
	}

	// Application config
	cfg.AppHost = os.Getenv("APP_HOST")
	cfg.AppPort = getEnv("PORT", "3000")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")
	cfg.LogFormat = getEnv("APP_LOG_FORMAT", "json")

	// MongoDB config
	cfg.MongoURI = getEnv("MONGO_URI", "mongodb://localhost:27017")
	cfg.MongoDB = getEnv("MONGO_DB", "bigstack")
	mongoTimeout, err := getInt("MONGO_TIMEOUT_SECOND", "10")
	if err != nil {
		return cfg, err
	}
	cfg.MongoTimeout = time.Duration(mongoTimeout) * time.Second

	// Redis config, cache disabled without a host
	cfg.RedisHost = os.Getenv("REDIS_HOST")
	if cfg.RedisPort, err = getInt("REDIS_PORT", "6379"); err != nil {
		return cfg, err
	}
	if cfg.RedisDB, err = getInt("REDIS_DB", "0"); err != nil {
		return cfg, err
	}
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")
	cacheExp, err := getInt("PROFILE_CACHE_EXP_SECOND", "300")
	if err != nil {
		return cfg, err
	}
	cfg.ProfileCacheExp = time.Duration(cacheExp) * time.Second

	// Kafka config, events disabled without brokers
	for _, broker := range strings.Split(os.Getenv("KAFKA_BROKERS"), ",") {
		if broker = strings.TrimSpace(broker); broker != "" {
			cfg.KafkaBrokers = append(cfg.KafkaBrokers, broker)
		}
	}
	cfg.KafkaTopic = getEnv("KAFKA_TOPIC", "bigstack.events")

	// JWT config
	cfg.JWTSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	jwtExp, err := getInt("JWT_EXP_SECOND", "3600")
	if err != nil {
		return cfg, err
	}
	cfg.JWTExp = time.Duration(jwtExp) * time.Second

	// Rate limit config
	if cfg.AuthRateLimitRPS, err = strconv.ParseFloat(getEnv("AUTH_RATE_LIMIT_RPS", "5"), 64); err != nil {
		return cfg, fmt.Errorf("AUTH_RATE_LIMIT_RPS: %w", err)
	}
	if cfg.AuthRateLimitBurst, err = getInt("AUTH_RATE_LIMIT_BURST", "10"); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// application bundles the dependencies the router is built from.
type application struct {
	tokens    *jwt.JWT
	persons   middlewares.PersonGetter
	auth      *services.AuthService
	profiles  *services.ProfileService
	questions *services.QuestionService

	rateLimitRPS   float64
	rateLimitBurst int
	swaggerURL     string
}

// newRouter registers every route on a chi router.
func newRouter(app application) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)

	authMiddleware := middlewares.AuthMiddleware(app.tokens, app.persons)

	r.Get("/", handlers.NewLivenessHandler())

	r.Route("/api/auth", func(r chi.Router) {
		r.Use(middlewares.RateLimitMiddleware(app.rateLimitRPS, app.rateLimitBurst))
		r.Post("/register", handlers.NewRegisterHandler(app.auth))
		r.Post("/login", handlers.NewLoginHandler(app.auth))
	})

	r.Route("/api/profile", func(r chi.Router) {
		// Public routes
		r.Get("/find/everyone", handlers.NewListProfilesHandler(app.profiles))
		r.Get("/{username}", handlers.NewGetPublicProfileHandler(app.profiles))

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)
			r.Get("/", handlers.NewGetProfileHandler(app.profiles))
			r.Post("/", handlers.NewSaveProfileHandler(app.profiles))
			r.Delete("/", handlers.NewDeleteProfileHandler(app.profiles))
			r.Post("/workrole", handlers.NewAddWorkRoleHandler(app.profiles))
			r.Delete("/workrole/{w_id}", handlers.NewRemoveWorkRoleHandler(app.profiles))
		})
	})

	r.Route("/api/questions", func(r chi.Router) {
		// Public routes
		r.Get("/", handlers.NewListQuestionsHandler(app.questions))

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)
			r.Get("/mine", handlers.NewListOwnQuestionsHandler(app.questions))
			r.Post("/", handlers.NewCreateQuestionHandler(app.questions))
			r.Put("/{id}", handlers.NewUpdateQuestionHandler(app.questions))
			r.Delete("/{id}", handlers.NewDeleteQuestionHandler(app.questions))
			r.Post("/{id}/answers", handlers.NewAddAnswerHandler(app.questions))
			r.Post("/{id}/upvote", handlers.NewUpvoteHandler(app.questions))
		})

		r.Get("/{id}", handlers.NewGetQuestionHandler(app.questions))
	})

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(app.swaggerURL)))

	return r
}

// run initializes the logger, MongoDB, the optional Redis cache and Kafka
// publisher, and the HTTP server. It blocks until ctx is done or a shutdown
// signal arrives.
func run(ctx context.Context, cfg config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.LogLevel, cfg.LogFormat); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Connect to MongoDB
	logger.Log.Infow("Connecting to MongoDB", "db", cfg.MongoDB)
	client, err := mongo.Connect(ctx, options.Client().
		ApplyURI(cfg.MongoURI).
		SetTimeout(cfg.MongoTimeout))
	if err != nil {
		return fmt.Errorf("MongoDB connection error: %w", err)
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Disconnect(disconnectCtx); err != nil {
			logger.Log.Errorw("MongoDB disconnect error", "error", err)
		}
	}()

	pingCtx, cancelPing := context.WithTimeout(ctx, cfg.MongoTimeout)
	defer cancelPing()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		return fmt.Errorf("MongoDB ping failed: %w", err)
	}

	db := client.Database(cfg.MongoDB)
	if err := repositories.EnsureIndexes(ctx, db); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}

	// Connect to Redis
	var profileCache services.ProfileCache
	if cfg.RedisHost != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("Redis connection error: %w", err)
		}
		defer rdb.Close()
		profileCache = repositories.NewProfileCacheRepository(rdb, cfg.ProfileCacheExp)
		logger.Log.Infow("Profile cache enabled", "ttl", cfg.ProfileCacheExp)
	} else {
		logger.Log.Warn("REDIS_HOST not set, profile cache disabled")
	}

	// Kafka writer
	var events services.KafkaWriter
	if len(cfg.KafkaBrokers) > 0 {
		writer := &kafka.Writer{
			Addr:         kafka.TCP(cfg.KafkaBrokers...),
			Topic:        cfg.KafkaTopic,
			Balancer:     &kafka.Hash{},
			BatchTimeout: 10 * time.Millisecond,
		}
		defer writer.Close()
		events = writer
		logger.Log.Infow("Event publishing enabled", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaTopic)
	} else {
		logger.Log.Warn("KAFKA_BROKERS not set, event publishing disabled")
	}

	// Initialize JWT service
	tokens := jwt.New(
		jwt.WithSecretKey(cfg.JWTSecretKey),
		jwt.WithExpiration(cfg.JWTExp),
	)

	// Initialize repositories
	personReadRepo := repositories.NewPersonReadRepository(db)
	personWriteRepo := repositories.NewPersonWriteRepository(db)
	profileReadRepo := repositories.NewProfileReadRepository(db)
	profileWriteRepo := repositories.NewProfileWriteRepository(db)
	questionReadRepo := repositories.NewQuestionReadRepository(db)
	questionWriteRepo := repositories.NewQuestionWriteRepository(db)

	// Initialize services
	app := application{
		tokens:         tokens,
		persons:        personReadRepo,
		auth:           services.NewAuthService(personReadRepo, personWriteRepo, tokens, events),
		profiles:       services.NewProfileService(profileReadRepo, profileWriteRepo, personWriteRepo, profileCache, events),
		questions:      services.NewQuestionService(questionReadRepo, questionWriteRepo, events),
		rateLimitRPS:   cfg.AuthRateLimitRPS,
		rateLimitBurst: cfg.AuthRateLimitBurst,
		swaggerURL:     "/swagger/doc.json",
	}

	addr := fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort)
	srv := &http.Server{
		Addr:              addr,
		Handler:           newRouter(app),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
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
