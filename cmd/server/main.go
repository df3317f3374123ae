// Command lifeweeks-server serves the timeline API over gRPC and the HTTP
// gateway, and runs the anniversary scheduler.
package main

import (
	"context"
	"os"

	"github.com/dmitrijs2005/lifeweeks/internal/logging"
	"github.com/dmitrijs2005/lifeweeks/internal/server"
	"github.com/dmitrijs2005/lifeweeks/internal/server/config"
)

func main() {
	ctx := context.Background()
	cfg := config.LoadConfig()

	app, err := server.NewApp(ctx, cfg)
	if err != nil {
		fatal(ctx, cfg, "startup failed", err)
	}

	if err := app.Run(ctx); err != nil {
		fatal(ctx, cfg, "server stopped with error", err)
	}
}

func fatal(ctx context.Context, cfg *config.Config, msg string, err error) {
	logging.NewJSONLogger(os.Stderr, cfg.LogLevel).Error(ctx, msg, "error", err)
	os.Exit(1)
}
