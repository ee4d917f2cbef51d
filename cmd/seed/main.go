// Command seed prepares a database: it creates the schema, the default
// administrator and, when the catalogue is empty, the stock safety tips.
package main

import (
	"context"
	"os"
	"safetytips/internal/auth"
	"safetytips/internal/config"
	"safetytips/internal/model"

	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.ParseConfig()
	if err != nil {
		logrus.WithError(err).Error("Failed to parse config")
		os.Exit(1)
	}
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

	ctx := context.Background()
	created, err := model.SeedDefaultAdmin(ctx, repo, hasher, cfg)
	if err != nil {
		logrus.WithError(err).Error("failed to seed default administrator")
		os.Exit(1)
	}

	n, err := model.SeedDefaultTips(ctx, repo)
	if err != nil {
		logrus.WithError(err).Error("failed to seed safety tips")
		os.Exit(1)
	}

	logrus.WithFields(logrus.Fields{
		"db_type":       cfg.DBType,
		"admin_created": created,
		"tips_inserted": n,
	}).Info("seed complete")
}
