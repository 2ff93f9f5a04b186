package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/CarlJazper/PSPWeb-AdminBack/internal/config"
	"github.com/CarlJazper/PSPWeb-AdminBack/internal/gymapi"
	"github.com/CarlJazper/PSPWeb-AdminBack/internal/routes"
	"github.com/CarlJazper/PSPWeb-AdminBack/internal/session"
)

func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 2. Shared session and backend client
	store := session.NewStore()
	client := gymapi.NewClient(cfg.APIBaseURL, store)

	if cfg.ServiceLoginConfigured() {
		serviceLogin(ctx, client, store, cfg)
	}

	// 3. Setup Fiber
	app := fiber.New()

	// Middleware
	app.Use(cors.New())
	app.Use(logger.New())
	app.Use(recover.New())

	// Routes
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
		})
	})
	routes.RegisterRoutes(ctx, app, cfg, store, client)

	// 4. Start Server
	go func() {
		<-ctx.Done()
		log.Println("Shutting down")
		if err := app.ShutdownWithTimeout(5 * time.Second); err != nil {
			log.Printf("Shutdown: %v", err)
		}
	}()

	log.Printf("Server starting on port %s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}

// serviceLogin signs the background pollers in with the service account.
// Failure is not fatal; the pollers stay idle until an admin logs in.
func serviceLogin(ctx context.Context, client *gymapi.Client, store *session.Store, cfg *config.Config) {
	loginCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	result, err := client.Login(loginCtx, cfg.ServiceEmail, cfg.ServicePassword)
	if err != nil {
		log.Printf("Service login failed: %v", err)
		return
	}
	store.Set(result.Token, result.User)
}
