package routes

import (
	"context"
	"strings"
	"time"

	websocket "github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"

	"github.com/CarlJazper/PSPWeb-AdminBack/internal/config"
	"github.com/CarlJazper/PSPWeb-AdminBack/internal/gymapi"
	"github.com/CarlJazper/PSPWeb-AdminBack/internal/handlers"
	"github.com/CarlJazper/PSPWeb-AdminBack/internal/middleware"
	"github.com/CarlJazper/PSPWeb-AdminBack/internal/poll"
	"github.com/CarlJazper/PSPWeb-AdminBack/internal/services"
	"github.com/CarlJazper/PSPWeb-AdminBack/internal/session"
	livews "github.com/CarlJazper/PSPWeb-AdminBack/internal/websocket"
)

// RegisterRoutes wires the backend client, services and handlers onto the
// fiber app and, when live push is enabled, starts the dashboard pollers.
// Background goroutines stop when ctx is cancelled.
func RegisterRoutes(ctx context.Context, app *fiber.App, cfg *config.Config, store *session.Store, client *gymapi.Client) {
	reportService := services.NewReportService(client)
	trainerService := services.NewTrainerService(client)
	userService := services.NewUserService(client)

	authHandler := handlers.NewAuthHandler(client, store)
	branchHandler := handlers.NewBranchHandler(client)
	exerciseHandler := handlers.NewExerciseHandler(client)
	userHandler := handlers.NewUserHandler(userService)
	trainerHandler := handlers.NewTrainerHandler(trainerService)
	logHandler := handlers.NewLogHandler(reportService)
	reportHandler := handlers.NewReportHandler(reportService)
	exportHandler := handlers.NewExportHandler(reportService)

	api := app.Group("/api/v1")

	api.Post("/login", authHandler.Login)

	protected := api.Group("", middleware.AuthRequired())
	protected.Post("/logout", authHandler.Logout)
	protected.Get("/me", authHandler.Me)

	branches := protected.Group("/branch")
	branches.Get("/get-all-branch", branchHandler.List)
	branches.Get("/get-branch/:id", branchHandler.Get)
	branches.Post("/create-branch", branchHandler.Create)
	branches.Put("/update-branch/:id", branchHandler.Update)
	branches.Delete("/delete-branch/:id", branchHandler.Delete)

	exercises := protected.Group("/exercises")
	exercises.Get("/get-all-exercise", exerciseHandler.List)
	exercises.Get("/get-exercise/:id", exerciseHandler.Get)
	exercises.Post("/exercise-create", exerciseHandler.Create)
	exercises.Put("/update-exercise/:id", exerciseHandler.Update)
	exercises.Delete("/delete-exercise/:id", exerciseHandler.Delete)

	users := protected.Group("/users")
	users.Get("/get-all-users", userHandler.List)
	users.Get("/get-all-coaches", userHandler.ListCoaches)
	users.Get("/get-user/:id", userHandler.Get)
	users.Put("/update-user/:id", userHandler.Update)
	users.Delete("/delete-user/:id", userHandler.Delete)

	trainers := protected.Group("/availTrainer")
	trainers.Get("/get-all-trainers", trainerHandler.ListSessions)
	trainers.Put("/assign-coach/:id", trainerHandler.AssignCoach)

	logs := protected.Group("/logs")
	logs.Get("/get-all-logs", logHandler.ListLogs)
	logs.Get("/occupancy", logHandler.Occupancy)

	transactions := protected.Group("/transactions")
	transactions.Get("/get-all-transactions", logHandler.ListTransactions)

	reports := protected.Group("/reports")
	reports.Get("/membership-sales", reportHandler.MembershipSales)
	reports.Get("/session-sales", reportHandler.SessionSales)
	reports.Get("/training-usage", reportHandler.TrainingUsage)
	reports.Get("/age-demographics", reportHandler.AgeDemographics)
	reports.Get("/gender-breakdown", reportHandler.GenderBreakdown)
	reports.Get("/daily-attendance", reportHandler.DailyAttendance)
	reports.Get("/hourly-checkins", reportHandler.HourlyCheckIns)

	exports := protected.Group("/exports")
	exports.Get("/transactions.pdf", exportHandler.TransactionsPDF)
	exports.Get("/transactions.xlsx", exportHandler.TransactionsXLSX)
	exports.Get("/attendance.pdf", exportHandler.AttendancePDF)

	if cfg.EnableLivePush {
		hub := livews.NewHub()
		go hub.Run(ctx)
		startPollers(ctx, cfg, store, reportService, hub)

		api.Use("/ws", upgradeRequired)
		api.Get("/ws", websocket.New(func(conn *websocket.Conn) {
			subscriber := livews.NewClient(hub, conn, wsTopics(conn.Query("topics")))
			hub.Register(subscriber)
			go subscriber.WritePump()
			subscriber.ReadPump()
		}))
	}
}

func upgradeRequired(c *fiber.Ctx) error {
	if !websocket.IsWebSocketUpgrade(c) {
		return c.Status(fiber.StatusUpgradeRequired).JSON(fiber.Map{"error": "WebSocket upgrade required"})
	}
	return c.Next()
}

func wsTopics(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return []string{livews.TopicSales, livews.TopicOccupancy, livews.TopicLogs}
	}

	var topics []string
	for _, topic := range strings.Split(raw, ",") {
		switch strings.TrimSpace(topic) {
		case livews.TopicSales:
			topics = append(topics, livews.TopicSales)
		case livews.TopicOccupancy:
			topics = append(topics, livews.TopicOccupancy)
		case livews.TopicLogs:
			topics = append(topics, livews.TopicLogs)
		}
	}
	return topics
}

// startPollers launches the fixed-interval fetch loops that feed the live
// hub. Each loop skips its round while nobody is signed in; once the shared
// session holds a token the next tick picks it up.
func startPollers(ctx context.Context, cfg *config.Config, store *session.Store, reports *services.ReportService, hub *livews.Hub) {
	sales := poll.New("membership-sales", cfg.SalesPollInterval, func(ctx context.Context) error {
		if store.Token() == "" {
			return nil
		}
		series, err := reports.MembershipSales(ctx, "", time.Now().Year())
		if err != nil {
			return err
		}
		hub.Publish(livews.TopicSales, fiber.Map{"series": series})
		return nil
	})

	occupancy := poll.New("occupancy", cfg.OccupancyPollInterval, func(ctx context.Context) error {
		if store.Token() == "" {
			return nil
		}
		active, err := reports.Occupancy(ctx, "")
		if err != nil {
			return err
		}
		hub.Publish(livews.TopicOccupancy, fiber.Map{"count": len(active), "logs": active})

		today := time.Now()
		logs, err := reports.AttendanceHistory(ctx, "", &today, &today)
		if err != nil {
			return err
		}
		hub.Publish(livews.TopicLogs, fiber.Map{"logs": logs})
		return nil
	})

	go sales.Run(ctx)
	go occupancy.Run(ctx)
}
