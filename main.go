package main

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"assessment-service/internal/config"
	"assessment-service/internal/db"
	"assessment-service/internal/engine"
	"assessment-service/internal/event"
	"assessment-service/internal/generator"
	"assessment-service/internal/handlers"
	"assessment-service/internal/lock"
	"assessment-service/internal/repository"
	"assessment-service/internal/service"
)

func main() {
	// Load env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system env")
	}
	cfg := config.Load()
	if cfg.MongoURI == "" {
		log.Fatal("MONGO_URI is required")
	}
	db.InitMongo(cfg.MongoURI)

	// RabbitMQ event publisher
	var publisher service.EventPublisher
	if cfg.RabbitURL != "" {
		p, err := event.NewPublisher(cfg.RabbitURL, cfg.RabbitExchange)
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer p.Close()
		publisher = p
	} else {
		log.Println("RabbitMQ not configured, events will not be published")
	}

	// Redis session lock
	var locker service.Locker
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		locker = lock.NewSessionLocker(client, 10*time.Second)
	} else {
		log.Println("Redis not configured, sessions rely on versioned writes only")
	}

	// Question generation
	provider, err := generator.NewOpenAIProvider(cfg.OpenAIKey, cfg.OpenAIBaseURL, cfg.OpenAIModel)
	if err != nil {
		log.Fatalf("Failed to configure question generation: %v", err)
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Content-Length", "Accept-Encoding", "Authorization", "accept", "origin", "Cache-Control", "X-Requested-With", "X-Tenant-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	database := db.Client.Database(cfg.MongoDatabase)

	// Assessments
	assessmentRepo := repository.NewAssessmentRepository(database)
	assessmentService := service.NewAssessmentService(assessmentRepo, publisher)
	assessmentHandler := handlers.NewAssessmentHandler(assessmentService)

	// Sessions
	sessionRepo := repository.NewSessionRepository(database)
	resultRepo := repository.NewResultRepository(database)
	sessionService := service.NewSessionService(
		sessionRepo,
		assessmentRepo,
		resultRepo,
		provider,
		engine.DefaultConfig(),
		locker,
		publisher,
	)
	sessionHandler := handlers.NewSessionHandler(sessionService)

	// Results
	resultService := service.NewResultService(resultRepo)
	resultHandler := handlers.NewResultHandler(resultService)

	r.GET("/health", sessionHandler.HealthCheck)

	// Protected routes - assessment administration
	protectedAssessment := r.Group("/protected/assessment")
	protectedAssessment.Use(handlers.TenantRequired())
	{
		protectedAssessment.POST("/", assessmentHandler.CreateAssessment)
		protectedAssessment.GET("/", assessmentHandler.ListAssessments)
		protectedAssessment.GET("/:id", assessmentHandler.GetAssessment)
		protectedAssessment.PUT("/:id/active", assessmentHandler.SetAssessmentActive)
		protectedAssessment.GET("/:id/results", resultHandler.GetResultsByAssessment)
	}

	setupSessionRoutes(r, sessionHandler, resultHandler)

	r.Run(":" + cfg.Port)
}

func setupSessionRoutes(r *gin.Engine, sessionHandler *handlers.SessionHandler, resultHandler *handlers.ResultHandler) {
	// Candidate-facing session routes
	protectedSession := r.Group("/protected/session")
	protectedSession.Use(handlers.TenantRequired())
	{
		protectedSession.POST("/", sessionHandler.StartSession)
		protectedSession.GET("/:id", sessionHandler.GetSession)

		// Adaptive loop
		protectedSession.GET("/:id/next", sessionHandler.NextQuestion)
		protectedSession.POST("/:id/answer", sessionHandler.SubmitAnswer)

		// Session control
		protectedSession.POST("/:id/submit", sessionHandler.SubmitSession)
		protectedSession.POST("/:id/abandon", sessionHandler.AbandonSession)

		// Monitoring
		protectedSession.GET("/:id/progress", sessionHandler.GetSessionProgress)
		protectedSession.GET("/:id/result", resultHandler.GetResultBySession)
	}
}
