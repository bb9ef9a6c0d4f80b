// Command server runs the campus ledger HTTP API.
//
// Usage:
//
//	server
//
// Configuration is read from CONFIG_PATH (YAML) and the environment.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/campus-ledger/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("server: %v", err)
	}
}
