package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"cinehall/internal/config"
	"cinehall/internal/logger"
	"cinehall/internal/messaging"
	"cinehall/internal/notifier"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.LogLevel, cfg.LogFormat)

	nc, err := messaging.NewNATSClient(cfg.NATS)
	if err != nil {
		logger.Fatal("Failed to connect to NATS", "error", err)
	}
	defer nc.Close()

	n := notifier.New(nc)
	if err := n.Start(); err != nil {
		logger.Fatal("Failed to start notifier", "error", err)
	}
	defer n.Stop()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Notifier stopped")
}
