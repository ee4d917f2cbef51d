package main

import (
	"context"
	"os"
	"os/signal"
	"safetytips/internal/auth"
	"safetytips/internal/config"
	"safetytips/internal/console"
	"safetytips/internal/model"
	"safetytips/internal/service"
	"syscall"

	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.ParseConfig()
	if err != nil {
		logrus.WithError(err).Error("Failed to parse config")
		os.Exit(1)
	}

	// 日志写到 stderr，避免和交互输出混在一起
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	cfg.ConfigureLogger()

	repo, err := model.InitRepository(&cfg)
	if err != nil {
		logrus.WithError(err).Error("failed to initialise repository")
		os.Exit(1)
	}

	hasher, err := auth.NewHasher(cfg.PasswordScheme)
	if err != nil {
		logrus.WithError(err).Error("failed to initialise password hasher")
		os.Exit(1)
	}

	if _, err := model.SeedDefaultAdmin(context.Background(), repo, hasher, cfg); err != nil {
		logrus.WithError(err).Warn("failed to seed default administrator")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	svc := service.New(repo, hasher, service.OptionsFromConfig(cfg))
	if err := console.New(svc, os.Stdin, os.Stdout).Run(ctx); err != nil {
		logrus.WithError(err).Error("console stopped")
		os.Exit(1)
	}
}
