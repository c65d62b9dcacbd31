package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	handlerHttp "github.com/mentry-app/mentry-server/internal/handler/http"
	redisclient "github.com/mentry-app/mentry-server/internal/infrastructure/cache"
	"github.com/mentry-app/mentry-server/internal/infrastructure/config"
	database "github.com/mentry-app/mentry-server/internal/infrastructure/database"
	"github.com/mentry-app/mentry-server/internal/infrastructure/firebaseauth"
	"github.com/mentry-app/mentry-server/internal/infrastructure/logger"
	"github.com/mentry-app/mentry-server/internal/infrastructure/payments"
	"github.com/mentry-app/mentry-server/internal/infrastructure/repository/mongodb"
	"github.com/mentry-app/mentry-server/internal/infrastructure/store"
	"github.com/mentry-app/mentry-server/internal/infrastructure/uuidgen"
	"github.com/mentry-app/mentry-server/internal/infrastructure/validator"
	"github.com/mentry-app/mentry-server/internal/usecase"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Get MongoDB URI and DB name from environment
	mongoURI := os.Getenv("MONGODB_URI")
	if mongoURI == "" {
		log.Fatal("MONGODB_URI environment variable not set")
	}
	dbName := os.Getenv("MONGODB_DB_NAME")
	if dbName == "" {
		log.Fatal("MONGODB_DB_NAME environment variable not set")
	}

	// Establish MongoDB connection
	mongoClient, err := database.NewMongoDBClient(mongoURI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer mongoClient.Disconnect()

	// Register custom validators
	validator.RegisterCustomValidators()

	// Initialize Gin router
	router := gin.Default()

	// Dependency Injection: Repositories
	db := mongoClient.Client.Database(dbName)
	userRepo := mongodb.NewUserRepository(db.Collection("users"))
	lessonRepo := mongodb.NewLessonRepository(db)
	commentRepo := mongodb.NewCommentRepository(db)
	reportRepo := mongodb.NewReportRepository(db)

	// Dependency Injection: Services
	appLogger := logger.NewStdLogger()
	uuidGenerator := uuidgen.NewGenerator()
	appConfig := config.NewConfig()

	stripeSecret := os.Getenv("STRIPE_SECRET")
	if stripeSecret == "" {
		log.Fatal("STRIPE_SECRET environment variable not set")
	}
	webhookSecret := os.Getenv("STRIPE_WEBHOOK_SECRET")
	if webhookSecret == "" {
		log.Fatal("STRIPE_WEBHOOK_SECRET environment variable not set")
	}
	paymentProvider := payments.NewStripeProvider(stripeSecret, webhookSecret, appConfig)

	tokenVerifier, err := firebaseauth.NewVerifier(context.Background(), os.Getenv("FIREBASE_CREDENTIALS_FILE"))
	if err != nil {
		log.Fatalf("Failed to initialize Firebase verifier: %v", err)
	}

	// Dependency Injection: Usecases
	lessonUsecase := usecase.NewLessonUsecase(lessonRepo, userRepo, uuidGenerator, appLogger)
	engagementUsecase := usecase.NewEngagementUsecase(lessonRepo, userRepo, appLogger)
	userUsecase := usecase.NewUserUsecase(userRepo, lessonRepo, appLogger)
	commentUsecase := usecase.NewCommentUsecase(commentRepo, lessonRepo, userRepo, appLogger)
	reportUsecase := usecase.NewReportUsecase(reportRepo, lessonRepo, appLogger)
	billingUsecase := usecase.NewBillingUsecase(userRepo, paymentProvider, appLogger)

	// Optional Dependency Injection: Redis cache
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		rdb := redisclient.NewRedisFromURL(context.Background(), redisURL)
		defer redisclient.Close(rdb)
		if rdb != nil {
			cacheStore := store.NewLessonCacheStore(rdb)
			lessonUsecase.SetLessonCache(cacheStore)
			engagementUsecase.SetLessonCache(cacheStore)
		}
	}

	// Setup API routes
	appRouter := handlerHttp.NewRouter(
		lessonUsecase, engagementUsecase, userUsecase,
		commentUsecase, reportUsecase, billingUsecase,
		tokenVerifier,
	)
	appRouter.SetupRoutes(router)

	// Start the server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Server running on port %s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
