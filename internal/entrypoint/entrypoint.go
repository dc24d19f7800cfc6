package entrypoint

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/reforco/internal/config"
	"github.com/mrlokans/reforco/internal/database"
	"github.com/mrlokans/reforco/internal/database/dberrors"
	"github.com/mrlokans/reforco/internal/demo"
	http_controllers "github.com/mrlokans/reforco/internal/http"
	"github.com/mrlokans/reforco/internal/scheduler"
	"github.com/mrlokans/reforco/internal/services"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

func Serve(router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		log.Printf("Starting server at %s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// Wait for SIGINT or SIGTERM, then give in-flight requests the
	// configured timeout to finish.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	// Stop background jobs before the store closes
	if onShutdown != nil {
		onShutdown(ctx)
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	log.Println("Server exiting")
}

// DatabaseOptions maps the store settings onto database options.
func DatabaseOptions(cfg config.Database) []database.Option {
	return []database.Option{
		database.WithLogLevel(database.ParseLogLevel(cfg.LogLevel)),
		database.WithSeed(cfg.SeedDemo),
	}
}

func Run(cfg *config.Config, version string) {
	log.Printf("Starting Reforço Escolar v%s", version)

	ctx := context.Background()

	db, err := database.Init(ctx, cfg.Database.Path, DatabaseOptions(cfg.Database)...)
	if err != nil {
		var initErr *dberrors.StorageInitError
		if errors.As(err, &initErr) {
			log.Fatalf("Storage unavailable at %s (%s): %v", initErr.Path, initErr.Op, initErr.Err)
		}
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()
	log.Printf("Database ready at %s", db.Path())

	reports := services.NewReportService(db)

	var demoMiddleware *demo.Middleware
	if cfg.Demo.Enabled {
		log.Printf("Demo mode enabled - write operations will be blocked")
		demoMiddleware = demo.NewMiddleware(true)
	}

	var reminders *scheduler.PaymentReminderScheduler
	if cfg.PaymentReminders.Enabled {
		reminders = scheduler.NewPaymentReminderScheduler(reports, cfg.PaymentReminders.Schedule)
		if err := reminders.Start(ctx); err != nil {
			log.Fatalf("Failed to start payment reminders: %v", err)
		}
	} else {
		log.Printf("Payment reminders: disabled")
	}

	router := http_controllers.NewRouter(http_controllers.RouterConfig{
		Store:          db,
		Reports:        reports,
		Health:         db,
		DemoMiddleware: demoMiddleware,
		Version:        version,
	})

	onShutdown := func(ctx context.Context) {
		if reminders != nil {
			reminders.Stop()
		}
	}

	Serve(router, cfg, onShutdown)
}
