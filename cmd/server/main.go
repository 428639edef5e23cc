package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	config "github.com/ghostwriterhq/scheduler/configs"
	"github.com/ghostwriterhq/scheduler/internal/api/handlers"
	"github.com/ghostwriterhq/scheduler/internal/api/middleware"
	job "github.com/ghostwriterhq/scheduler/internal/jobs"
	"github.com/ghostwriterhq/scheduler/internal/queue"
	"github.com/ghostwriterhq/scheduler/internal/repository"
	"github.com/ghostwriterhq/scheduler/internal/service"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/hibiken/asynq"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Failed to load environment variables", err)
	}

	cfg := config.LoadConfig()

	var db *sql.DB
	var store repository.PostStore

	switch cfg.StoreBackend {
	case "postgres":
		var err error
		db, err = sql.Open("postgres", cfg.PostgresURI)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer closeDB(db)

		if err := db.Ping(); err != nil {
			log.Fatalf("Database is unreachable: %v", err)
		}
		store = repository.NewPostgresStore(db)
	case "redis":
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisURI})
		defer rdb.Close()
		store = repository.NewRedisStore(rdb)
	default:
		store = repository.NewMemoryStore()
	}

	redisConn := asynq.RedisClientOpt{Addr: cfg.RedisURI}
	client := asynq.NewClient(redisConn)
	defer client.Close()

	app := fiber.New(fiber.Config{
		ReadTimeout:  2 * time.Minute,
		WriteTimeout: 2 * time.Minute,
		BodyLimit:    25 * 1024 * 1024, // generated images arrive inline as data URIs
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			log.Printf("Error: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		},
	})

	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.FrontendURL,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           3600,
	}))

	sessionService := service.NewSessionService(*cfg)
	mediaService := service.NewMediaService(*cfg)
	dispatcher := service.NewHTTPDispatcher(*cfg)
	scheduleService := service.NewScheduleService(store, dispatcher, mediaService)

	authMiddleware := middleware.NewAuthMiddleware(*cfg)

	auth := handlers.NewAuthHandler(*cfg, sessionService)
	app.Post("/auth/login", auth.Login)
	app.Post("/auth/logout", auth.Logout)

	api := app.Group("/api")
	api.Use(authMiddleware.AuthMiddleware())

	cal := handlers.NewCalendarHandler()
	api.Get("/calendar/slots", cal.ListSlots)
	api.Get("/calendar/grid", cal.MonthGrid)

	post := handlers.NewPostHandler(*cfg, scheduleService, client)
	api.Post("/scheduled-posts/save", post.SavePost)
	api.Get("/scheduled-posts", post.ListPosts)
	api.Post("/scheduled-posts/publish", post.PublishPost)
	api.Post("/scheduled-posts/remove", post.RemovePost)

	if cfg.AutoPublish {
		sweepJob := job.NewPublishSweepJob(store, client)
		startCron(sweepJob)

		queueW := queue.NewQueue(scheduleService)
		go func() {
			server := asynq.NewServer(redisConn, asynq.Config{
				Concurrency: 10,
			})

			mux := asynq.NewServeMux()
			mux.HandleFunc(queue.TaskTypePublishPost, queueW.HandlePublishPostTask)

			log.Println("Starting the Asynq server...")
			if err := server.Run(mux); err != nil {
				log.Fatalf("Could not start Asynq server: %v", err)
			}
		}()
	}

	go func() {
		if err := app.Listen(":3000"); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()
	log.Println("Server is running on http://localhost:3000")

	gracefulShutdown(app, db)
}

func startCron(sweep *job.PublishSweepJob) {
	c := cron.New()
	c.AddFunc("@every 00h05m00s", sweep.SweepOverdue)
	c.Start()
}

func closeDB(db *sql.DB) {
	fmt.Fprint(os.Stdout, "Closing database connection... ")
	if err := db.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to close database: %v", err)
		return
	}
	fmt.Fprintln(os.Stdout, "Done")
}

func gracefulShutdown(app *fiber.App, db *sql.DB) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Fatalf("Failed to shut down server: %v", err)
	}

	if db != nil {
		closeDB(db)
	}
	log.Println("Server shutdown complete.")
}
