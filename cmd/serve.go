package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"whitecore/core/loader"
	"whitecore/core/logger"
	"whitecore/core/metrics"
	"whitecore/core/middleware/auth"
	"whitecore/core/middleware/rayid"
	"whitecore/feature/inject"
	"whitecore/feature/integrity"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "whitecore/docs/swagger"
)

// @title WhiteCore API
// @version 1.0
// @description API for inspecting WhiteCore injection runs.
// @host localhost:8080
// @BasePath /

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run an injection pass and serve its report over HTTP",
	Long:  `Runs a dry injection pass at startup, then serves reports, verification, integrity checks and metrics.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEnv(true)
		if err != nil {
			return err
		}
		logg := e.logger
		defer logg.Sync()
		zap.ReplaceGlobals(logg)
		e.openLedger()

		svc := e.injectService()
		if report, _ := svc.PostDBLoad(cmd.Context()); report.Status != inject.RunOK {
			logg.Warn("Startup injection pass aborted", zap.String("error", report.Error))
		}

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
		})

		mgr := loader.NewManager()
		mgr.Register(inject.NewFeature(svc))
		mgr.Register(integrity.NewFeature(integrity.NewService(e.cfg.Mod, e.source, e.store, e.cfg.Storage.Bucket, e.db, logg)))

		// RayID first so every log line below carries it.
		app.Use(rayid.New())

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

		// Public
		app.Get("/swagger/*", swagger.HandlerDefault)
		app.Get("/metrics", metrics.Handler())

		app.Use(auth.New(auth.Config{ApiKey: e.cfg.Server.ApiKey}))

		if err := mgr.LoadAll(app); err != nil {
			return fmt.Errorf("failed to load features: %w", err)
		}

		go func() {
			logg.Info("Starting server", zap.String("address", e.cfg.Server.Address()))
			if err := app.Listen(e.cfg.Server.Address()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		return app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(serveCmd)
}
