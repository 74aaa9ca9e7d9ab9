package main

import (
	"context"
	"fmt"
	common_api "go-contacthub/internal/common/api"
	"go-contacthub/internal/config"
	"go-contacthub/internal/database"
	"go-contacthub/internal/features/contact"
	"go-contacthub/internal/features/enrichment"
	"go-contacthub/internal/features/gsync"
	"go-contacthub/internal/features/system"
	"go-contacthub/internal/logger"
	"go-contacthub/internal/middleware"
	"go-contacthub/pkg/utils"
	"log"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

// NewFiberServer creates a new Fiber app instance
func NewFiberServer() *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	app.Use(middleware.CORSMiddleware())

	return app
}

// AsRoute is a helper function to reduce boilerplate.
// It tags the constructor so Fx knows to add it to the "routes" group.
func AsRoute(f any) any {
	return fx.Annotate(
		f,
		fx.As(new(common_api.Route)),    // Cast to Interface
		fx.ResultTags(`group:"routes"`), // Add to Group
	)
}

// RegisterAllRoutes takes the group "routes" (slice of interfaces)
// and calls Setup() on each one.
func RegisterAllRoutes(app *fiber.App, routes []common_api.Route) {
	for _, route := range routes {
		route.Setup(app)
	}
}

// RegisterAllRoutesWithAnnotation wraps RegisterAllRoutes with fx annotations
var RegisterAllRoutesWithAnnotation = fx.Annotate(
	RegisterAllRoutes,
	fx.ParamTags(``, `group:"routes"`),
)

// StartServer creates a lifecycle hook to start Fiber in a goroutine
// and shut it down when the app exits.
func StartServer(lc fx.Lifecycle, app *fiber.App, cfg *config.Config) {
	utils.SetSecret(cfg.JWTSecret)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := fmt.Sprintf(":%s", cfg.Port)
				if err := app.Listen(port); err != nil {
					log.Fatalf("Server failed to start: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return app.Shutdown()
		},
	})
}

func main() {
	app := fx.New(
		fx.Provide(
			// Load Config
			config.LoadConfig,

			// Initialize Logger
			logger.NewLogger,

			// Initialize Fiber Server
			NewFiberServer,

			// Initialize Databases
			database.NewDatabase,
			database.NewOriginDB,

			// Initialize Repository
			contact.NewOriginRepository,
			gsync.NewSyncSettingRepository,
			gsync.NewSyncLogRepository,

			// Initialize Clients
			enrichment.NewClient,
			gsync.NewProviderClient,

			// Initialize Service
			contact.NewContactService,
			enrichment.NewEnrichmentService,
			gsync.NewSyncService,
			gsync.NewAutoSyncScheduler,

			// Websocket progress hub
			system.NewProgressHub,
			func(h *system.ProgressHub) gsync.ProgressPublisher { return h },

			// Interface adapters to break package cycles
			func(s enrichment.EnrichmentService) contact.Enricher { return s },

			// Initialize Controller
			contact.NewContactController,
			enrichment.NewEnrichmentController,
			gsync.NewSyncController,
			system.NewWebSocketController,

			// Initialize API Routes
			AsRoute(contact.NewContactApi),
			AsRoute(enrichment.NewEnrichmentApi),
			AsRoute(gsync.NewSyncApi),
			AsRoute(system.NewHealthApi),
			AsRoute(system.NewAuthApi),
			AsRoute(system.NewWebSocketApi),
		),
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),
		fx.Invoke(
			// Register Routes & Start
			RegisterAllRoutesWithAnnotation,
			StartServer,
			func(lc fx.Lifecycle, scheduler *gsync.AutoSyncScheduler) {
				lc.Append(fx.Hook{
					OnStart: func(ctx context.Context) error {
						return scheduler.Initialize(ctx)
					},
					OnStop: func(ctx context.Context) error {
						return scheduler.Stop()
					},
				})
			},
		),
	)

	app.Run()
}
