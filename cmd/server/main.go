// Command server runs the QueryDesk HTTP API.
//
// Configuration comes from CONFIG_PATH (or ./config.yaml) and environment
// variables; see internal/config. SIGINT and SIGTERM trigger a graceful
// shutdown.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/querydesk-backend/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Printf("server: %v", err)
		os.Exit(1)
	}
}
