package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/pageza/moodbites/backend/internal/client"
	"github.com/pageza/moodbites/backend/internal/logging"
)

func main() {
	var (
		serverURL string
		logLevel  string
	)
	flag.StringVar(&serverURL, "server", "http://localhost:3000", "Base URL of the recipe server")
	flag.StringVar(&logLevel, "log-level", "error", "Log level (debug, info, warn, error)")
	flag.Parse()

	logging.Init(logging.Config{Level: logLevel, Format: "console"})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	term := client.NewTerminal(os.Stdin, os.Stdout)
	session := client.NewSession(client.New(serverURL, nil), term)

	if err := term.Run(ctx, session); err != nil {
		os.Exit(1)
	}
}
