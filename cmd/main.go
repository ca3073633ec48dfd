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
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/segmentio/kafka-go"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/rexapp/rex-backend/internal/handlers"
	"github.com/rexapp/rex-backend/internal/jwt"
	"github.com/rexapp/rex-backend/internal/logger"
	"github.com/rexapp/rex-backend/internal/middlewares"
	"github.com/rexapp/rex-backend/internal/repositories"
	"github.com/rexapp/rex-backend/internal/services"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title Rex API
// @version 1.0.0
// @description Backend for the Rex route-sharing application
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel,
		mongoURI, mongoDB,
		kafkaAddr, kafkaTopic,
		jwtSecret, jwtAccessExpMinute, jwtRefreshExpHour,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		mongoURI, mongoDB,
		kafkaAddr, kafkaTopic,
		jwtSecret, jwtAccessExpMinute, jwtRefreshExpHour,
	); err != nil {
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

// parseConfig loads environment variables from a file and returns all
// application, MongoDB, Kafka and JWT configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	mongoURI, mongoDB string,
	kafkaAddr, kafkaTopic string,
	jwtSecretKey string, jwtAccessExpMinute, jwtRefreshExpHour int,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// MongoDB config
	mongoURI = getEnv("MONGO_URI", "mongodb://localhost:27017")
	mongoDB = getEnv("MONGO_DB", "rex")

	// Kafka config (optional; empty address disables event publishing)
	kafkaAddr = getEnv("KAFKA_ADDR", "")
	kafkaTopic = getEnv("KAFKA_TOPIC", "rex-events")

	// JWT config
	jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if jwtAccessExpMinute, err = strconv.Atoi(getEnv("JWT_ACCESS_EXP_MINUTE", "30")); err != nil {
		return
	}
	if jwtRefreshExpHour, err = strconv.Atoi(getEnv("JWT_REFRESH_EXP_HOUR", "168")); err != nil {
		return
	}

	return
}

// run initializes the logger, MongoDB, Kafka and HTTP server. It sets up
// routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	mongoURI, mongoDB string,
	kafkaAddr, kafkaTopic string,
	jwtSecretKey string, jwtAccessExpMinute, jwtRefreshExpHour int,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Connect to MongoDB
	logger.Log.Infof("Connecting to MongoDB: %s", mongoURI)
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		return fmt.Errorf("MongoDB connection error: %w", err)
	}
	defer client.Disconnect(ctx)

	pingCtx, cancelPing := context.WithTimeout(ctx, 10*time.Second)
	defer cancelPing()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		return fmt.Errorf("MongoDB ping failed: %w", err)
	}

	db := client.Database(mongoDB)
	if err := repositories.EnsureIndexes(ctx, db); err != nil {
		return fmt.Errorf("failed to ensure indexes: %w", err)
	}

	// Kafka writer for domain events, optional
	var kafkaWriter services.KafkaWriter
	if kafkaAddr != "" {
		w := &kafka.Writer{
			Addr:     kafka.TCP(kafkaAddr),
			Topic:    kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer w.Close()
		kafkaWriter = w
	}

	// Initialize token service
	tokens := jwt.New(jwtSecretKey,
		time.Duration(jwtAccessExpMinute)*time.Minute,
		time.Duration(jwtRefreshExpHour)*time.Hour,
	)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	routeReadRepo := repositories.NewRouteReadRepository(db)
	routeWriteRepo := repositories.NewRouteWriteRepository(db)
	favoriteRepo := repositories.NewFavoriteRepository(db)
	completionRepo := repositories.NewCompletionReadRepository(db)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, tokens, kafkaWriter)
	routeService := services.NewRouteService(routeReadRepo, routeWriteRepo, kafkaWriter)
	favoriteService := services.NewFavoriteService(favoriteRepo, routeReadRepo)
	profileService := services.NewProfileService(routeReadRepo, completionRepo, favoriteRepo, userReadRepo, userWriteRepo)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	// Public routes
	r.Post("/users", handlers.NewRegisterHandler(authService))
	r.Post("/auth/login", handlers.NewLoginHandler(authService))
	r.Post("/auth/refresh", handlers.NewRefreshHandler(authService))
	r.Post("/auth/logout", handlers.NewLogoutHandler())
	r.Get("/routes", handlers.NewRouteListHandler(routeService))
	r.Get("/routes/public/by-name", handlers.NewRoutePublicByNameHandler(routeService))
	r.Get("/health", handlers.NewHealthHandler())

	// Protected routes with session middleware
	authMiddleware := middlewares.AuthMiddleware(tokens, userReadRepo)
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)
		r.Get("/auth/me", handlers.NewMeHandler())
		r.Post("/routes", handlers.NewRouteCreateHandler(routeService))
		r.Get("/routes/me", handlers.NewRouteMyHandler(routeService))
		r.Get("/routes/check-name", handlers.NewRouteCheckNameHandler(routeService))
		r.Get("/routes/{routeID}", handlers.NewRouteGetHandler(routeService))
		r.Delete("/routes/{routeID}", handlers.NewRouteDeleteHandler(routeService))
		r.Post("/favorites/{routeID}", handlers.NewFavoriteAddHandler(favoriteService))
		r.Delete("/favorites/{routeID}", handlers.NewFavoriteRemoveHandler(favoriteService))
		r.Get("/favorites/me", handlers.NewFavoriteListHandler(favoriteService))
		r.Get("/favorites/me/{routeID}", handlers.NewFavoriteCheckHandler(favoriteService))
		r.Get("/users/me/routes/favorites", handlers.NewFavoriteRoutesHandler(favoriteService))
		r.Get("/users/me/profile", handlers.NewProfileHandler(profileService))
		r.Patch("/users/me/profile", handlers.NewProfileUpdateHandler(profileService))
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
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

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
