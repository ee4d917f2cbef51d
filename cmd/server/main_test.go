package main

import (
	"context"
	"path/filepath"
	"safetytips/internal/config"
	"strings"
	"testing"
)

func TestRunFailsWhenStoreCannotOpen(t *testing.T) {
	cfg := config.Config{DBType: "oracle", PasswordScheme: config.PasswordSchemeBcrypt}

	err := run(context.Background(), cfg)
	if err == nil {
		t.Fatal("expected an error for an unsupported database type")
	}
	if !strings.Contains(err.Error(), "initialise repository") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRunFailsOnUnknownPasswordScheme(t *testing.T) {
	cfg := config.Config{
		DBType:         "sqlite",
		DBPath:         filepath.Join(t.TempDir(), "safety.db"),
		PasswordScheme: "md5",
	}

	err := run(context.Background(), cfg)
	if err == nil {
		t.Fatal("expected an error for an unknown password scheme")
	}
	if !strings.Contains(err.Error(), "initialise password hasher") {
		t.Fatalf("unexpected error: %v", err)
	}
}
