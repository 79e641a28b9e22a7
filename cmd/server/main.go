// Command server runs the HTTP API until SIGINT or SIGTERM.
//
// Exit codes: 0 = clean shutdown, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/healthtrack-backend/internal/app"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config (default: $CONFIG_PATH or ./config.yaml)")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx, *configPath); err != nil {
		stop()
		log.Fatalf("server: %v", err)
	}
}
