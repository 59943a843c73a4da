package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"ara-be/internal/bootstrap"
	"ara-be/internal/config"
	"ara-be/internal/server"
	"ara-be/internal/tracer"
	"ara-be/pkg/database"
)

func main() {
	// 1. Load Configuration
	cfg := config.Load()

	// 2. Initialize Database
	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection, cfg.App.Environment == "production")
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	// 3. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(gormDB, cfg)
	defer container.Logger.Sync()

	shutdownTracer := tracer.InitTracer(container.Logger)
	defer shutdownTracer(context.Background())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 4. Start Background Services
	if err := container.ConsumerService.Consume(ctx); err != nil {
		container.Logger.Error("MAIN", "Failed to start coverage consumer", map[string]interface{}{"error": err.Error()})
	}

	if container.NatsSubscriber != nil {
		defer container.NatsSubscriber.Close()
		if err := container.CoverageService.ListenForInvalidation(container.NatsSubscriber); err != nil {
			container.Logger.Warn("MAIN", "Coverage summaries will not follow other instances", map[string]interface{}{"error": err.Error()})
		}
	}

	// 5. Initialize Server
	srv := server.New(cfg, container)

	go func() {
		<-ctx.Done()
		container.Logger.Info("MAIN", "Shutting down", nil)
		if err := srv.Shutdown(); err != nil {
			container.Logger.Error("MAIN", "Server shutdown failed", map[string]interface{}{"error": err.Error()})
		}
	}()

	// 6. Run Server
	if err := srv.Run(); err != nil {
		log.Fatal(err)
	}
}
