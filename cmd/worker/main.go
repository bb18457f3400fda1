package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"yacht-charter/cmd/bootstrap"

	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		bootstrap.WorkerModule,
	)

	if err := app.Start(context.Background()); err != nil {
		slog.Error("worker failed to start", "error", err)
		os.Exit(1)
	}

	<-app.Done()

	stopCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := app.Stop(stopCtx); err != nil {
		slog.Error("worker failed to stop cleanly", "error", err)
	}

	slog.Info("worker stopped")
}
