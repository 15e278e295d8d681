package main

import (
	"context"
	"net/http"
	"time"

	"github.com/algo-odyssey/backend/config"
	"github.com/algo-odyssey/backend/database"
	_ "github.com/algo-odyssey/backend/docs" // Swagger docs - auto-generated
	adminctrl "github.com/algo-odyssey/backend/internal/controller/admin"
	userctrl "github.com/algo-odyssey/backend/internal/controller/user"
	"github.com/algo-odyssey/backend/internal/logger"
	"github.com/algo-odyssey/backend/internal/model"
	"github.com/algo-odyssey/backend/internal/repository"
	"github.com/algo-odyssey/backend/internal/scheduler"
	"github.com/algo-odyssey/backend/internal/service"
	"github.com/algo-odyssey/backend/internal/session"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title Algo Odyssey API
// @version 1.0
// @description Timed coding assessments with integrity-aware scoring and proctoring.
// @contact.name API Support
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
func main() {
	logger.Init()

	app := fx.New(
		// Core Application Components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase, // Provides *gorm.DB
			scheduler.NewRedisClient,
			NewGinEngine, // Provides *gin.Engine
		),

		// Repositories Layer
		fx.Provide(
			repository.NewChallengeRepository,
			repository.NewSubmissionRepository,
			repository.NewViolationRepository,
			repository.NewBlockRepository,
			repository.NewUserRepository,
			repository.NewLeaderboardRepository,
			repository.NewSessionRepository,
		),

		// Services Layer
		fx.Provide(
			service.NewFaceComparator,
			service.NewProctorService,
			service.NewRunnerService,
			service.NewNotifier,
			service.NewBlockService,
			service.NewLeaderboardService,
			service.NewChallengeService,
			service.NewStudentService,
			service.NewSubmissionService,
		),

		// Violation Aggregator and Lifecycle Scheduler
		fx.Provide(
			func(
				blocks service.BlockService,
				violations repository.ViolationRepository,
				store repository.SessionRepository,
				checker service.ProctorService,
				cfg *config.Config,
			) *session.Manager {
				return session.NewManager(blocks, violations, store, checker, cfg)
			},
			scheduler.NewLocker,
			func(
				challenges repository.ChallengeRepository,
				leaderboards service.LeaderboardService,
				notifier service.Notifier,
				locker scheduler.Locker,
				cfg *config.Config,
			) *scheduler.Scheduler {
				return scheduler.NewScheduler(challenges, leaderboards, notifier, locker, cfg)
			},
		),

		// API Controllers Layer
		fx.Provide(
			userctrl.NewLeaderboardController,
			userctrl.NewChallengeController,
			userctrl.NewSessionController,
			adminctrl.NewBlockController,
			adminctrl.NewStudentController,
			adminctrl.NewChallengeController,
		),

		// Invokers - Functions that are executed by Fx
		fx.Invoke(RegisterRoutesAndStartServer),
		fx.Invoke(StartScheduler),
		fx.Invoke(AutoMigrateDB),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	leaderboardCtrl *userctrl.LeaderboardController,
	challengeCtrl *userctrl.ChallengeController,
	sessionCtrl *userctrl.SessionController,
	adminBlockCtrl *adminctrl.BlockController,
	adminStudentCtrl *adminctrl.StudentController,
	adminChallengeCtrl *adminctrl.ChallengeController,
) {
	apiGroup := router.Group("/api/v1")
	{
		apiGroup.GET("/challenges", challengeCtrl.GetAllChallenges)
		apiGroup.GET("/challenges/:id", challengeCtrl.GetChallengeDetails)

		apiGroup.GET("/leaderboard/latest", leaderboardCtrl.GetLatestLeaderboard)
		apiGroup.GET("/leaderboard/:challenge_id", leaderboardCtrl.GetChallengeLeaderboard)

		sessions := apiGroup.Group("/sessions")
		sessions.POST("", sessionCtrl.StartSession)
		sessions.GET("/:id", sessionCtrl.GetSessionState)
		sessions.POST("/:id/events", sessionCtrl.RaiseEvent)
		sessions.POST("/:id/frames", sessionCtrl.UploadFrame)
		sessions.POST("/:id/submit", sessionCtrl.SubmitCode)
		sessions.DELETE("/:id", sessionCtrl.AbandonSession)
	}

	adminGroup := router.Group("/api/v1/admin")
	{
		adminGroup.POST("/challenges", adminChallengeCtrl.CreateChallenge)

		adminGroup.GET("/blocks", adminBlockCtrl.ListBlocks)
		adminGroup.POST("/blocks", adminBlockCtrl.BlockUser)
		adminGroup.DELETE("/blocks/:email", adminBlockCtrl.UnblockUser)

		adminGroup.POST("/students", adminStudentCtrl.RegisterStudent)
		adminGroup.GET("/students", adminStudentCtrl.ListStudents)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Algo Odyssey API server starting on port %s", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

// StartScheduler ties the challenge lifecycle scheduler to the process
// lifetime.
func StartScheduler(lc fx.Lifecycle, sched *scheduler.Scheduler) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return sched.Start()
		},
		OnStop: func(ctx context.Context) error {
			sched.Stop()
			return nil
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.User{},
		&model.Challenge{},
		&model.TestCase{},
		&model.Submission{},
		&model.ViolationRecord{},
		&model.BlockedUser{},
		&model.LeaderboardEntry{},
		&model.Session{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
