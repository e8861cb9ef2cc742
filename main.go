package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"powerdesk.app/configs"
	"powerdesk.app/configs/configslog"
	"powerdesk.app/pkg/pdfrender"
	"powerdesk.app/routes"
	"powerdesk.app/services"
)

func main() {
	cfg, err := configs.LoadConfig()
	if err != nil {
		configslog.SLog.Fatalf("configuration error: %v", err)
	}
	defer configslog.Sync()

	configs.InitDatabase(cfg)

	rasterizer, err := pdfrender.NewBrowserRasterizer(cfg.BrowserBin)
	if err != nil {
		configslog.Log.Fatal("could not start PDF renderer", zap.Error(err))
	}
	defer rasterizer.Close()

	reportService, err := services.NewReportService(rasterizer)
	if err != nil {
		configslog.Log.Fatal("could not load report templates", zap.Error(err))
	}

	app := fiber.New(fiber.Config{
		AppName:      "powerdesk",
		ErrorHandler: fiber.DefaultErrorHandler,
	})

	routes.SetupRoutes(app, reportService)

	go func() {
		if err := app.Listen(":" + cfg.AppPort); err != nil {
			configslog.Log.Fatal("server stopped", zap.Error(err))
		}
	}()
	configslog.SLog.Infof("powerdesk listening on :%s", cfg.AppPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	configslog.SLog.Info("shutting down...")
	if err := app.Shutdown(); err != nil {
		configslog.Log.Error("shutdown error", zap.Error(err))
	}
}
