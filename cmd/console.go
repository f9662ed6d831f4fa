package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"stock-tracker/config"
	"stock-tracker/internal/client"
	"stock-tracker/internal/delivery/console"
	"stock-tracker/pkg/logger"

	"github.com/spf13/cobra"
)

var consoleCmd = &cobra.Command{
	Use:   "console",
	Short: "Run the interactive console client against the API server",
	Run:   Console,
}

func Console(cmd *cobra.Command, args []string) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	lg, err := logger.New(cfg.Log.Level, "console")
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}

	api := client.New(cfg.Client)
	app := console.NewApp(lg, api)

	if err := app.Run(ctx); err != nil && err != context.Canceled {
		log.Fatalf("Console client exited with error: %v", err)
	}
}
