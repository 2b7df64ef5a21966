package cmd

import (
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"player-enricher/core/loader"
	"player-enricher/core/logger"
	"player-enricher/core/metrics"
	"player-enricher/core/middleware/auth"
	"player-enricher/core/middleware/rayid"
	"player-enricher/feature/integrity"
	"player-enricher/feature/players"
	"player-enricher/feature/players/valuation"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "player-enricher/docs/swagger"
)

// @title Player Enricher API
// @version 1.0
// @description Merges ranking spreadsheets and trade values into one record per player.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the player enricher server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Configuration, logger, storage and optional sink
		e, err := bootstrap(false)
		if err != nil {
			log.Fatalf("Failed to start: %v", err)
		}
		logg := e.logg
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		m := metrics.NewManager()

		// 2. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
			BodyLimit:             e.cfg.Server.BodyLimit(),
		})

		// 3. Initialize Feature Loader
		mgr := loader.NewManager(logg)

		values := valuation.NewClient(e.cfg.Valuation, nil)
		playersFeature := players.NewFeature(e.store, e.cfg.Storage.Bucket, logg, e.db, e.cfg.Pipeline, values, m)
		if e.db != nil {
			if err := playersFeature.Service().Migrate(); err != nil {
				logg.Fatal("Failed to migrate sink", zap.Error(err))
			}
		}

		mgr.Register(integrity.NewFeature(e.store, e.cfg.Storage.Bucket, logg, e.db, e.cfg.Pipeline.RegistryObject))
		mgr.Register(playersFeature)

		// Middleware Registration
		// 1. RayID (Must be first to trace everything)
		app.Use(rayid.New())

		// 2. Request logging with the ray id
		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// 3. Public routes
		app.Get("/swagger/*", swagger.HandlerDefault)
		app.Get("/metrics", m.Handler())

		// 4. Auth (Protect API)
		app.Use(auth.New(auth.Config{
			ApiKey: e.cfg.Server.ApiKey,
			Next: func(c *fiber.Ctx) bool {
				return strings.HasPrefix(c.Path(), "/swagger") || c.Path() == "/metrics"
			},
		}))

		// 5. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 6. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", e.cfg.Server.Port))
			if err := app.Listen(e.cfg.Server.Address()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 7. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
