package main // Entry point package

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/holbertonschool/hbnb/internal/config"
	"github.com/holbertonschool/hbnb/internal/database"
	"github.com/holbertonschool/hbnb/internal/facade"
	"github.com/holbertonschool/hbnb/internal/handler"
	"github.com/holbertonschool/hbnb/internal/queue"
	"github.com/holbertonschool/hbnb/internal/repository"
	"github.com/holbertonschool/hbnb/internal/router"
	"github.com/holbertonschool/hbnb/internal/service"
)

func main() {
	// Load a .env file when present; in containers the variables come
	// from the environment directly.
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	cfg := config.Load() // Load environment config

	// Pick the persistence backend. The in-memory stores need no
	// external service; the MySQL stores open a pool and make sure the
	// schema exists before serving.
	var stores repository.Stores
	switch cfg.RepoBackend {
	case config.BackendMySQL:
		db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
		if err != nil {
			log.Fatalf("database: %v", err)
		}
		defer db.Close()
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if err := database.EnsureSchema(ctx, db); err != nil {
			cancel()
			log.Fatalf("schema: %v", err)
		}
		cancel()
		stores = repository.NewMySQLStores(db)
	default:
		stores = repository.NewMemoryStores()
	}

	// Audit events are best effort: with no broker configured the
	// facade runs without a publisher and skips them.
	var events facade.EventPublisher
	if cfg.AMQPURL != "" {
		events = service.NewAMQPPublisher(cfg.AMQPURL)
		go func() {
			if err := queue.StartAuditConsumer(cfg.AMQPURL); err != nil {
				log.Printf("audit consumer stopped: %v", err)
			}
		}()
	}

	app := facade.New(stores, events, cfg.BcryptCost)

	e := echo.New() // Create Echo instance
	router.RegisterRoutes(e)
	router.RegisterAPI(e, router.Handlers{
		Auth:    handler.NewAuthHandler(cfg, app),
		Users:   handler.NewUserHandler(app),
		Places:  handler.NewPlaceHandler(app),
		Reviews: handler.NewReviewHandler(app),
		Amenity: handler.NewAmenityHandler(app),
		Admin:   handler.NewAdminHandler(app),
	}, cfg.JWTSecret, config.NewRedisClient())

	addr := ":" + cfg.Port                                // Address string with port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env) // Print startup info

	if err := e.Start(addr); err != nil { // Start HTTP server
		log.Fatal(err) // Log and exit if server fails
	}
}
