package config

import (
	"testing"
	"time"

	"github.com/sirupsen/logrus"
)

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := ParseConfig()
	if err != nil {
		t.Fatalf("unexpected error parsing config: %v", err)
	}
	if cfg.DBType != "sqlite" {
		t.Errorf("expected sqlite db type, got %q", cfg.DBType)
	}
	if cfg.AdminUsername != "ADMIN" {
		t.Errorf("expected ADMIN bootstrap user, got %q", cfg.AdminUsername)
	}
	if cfg.HTTPHost != "127.0.0.1" {
		t.Errorf("expected loopback host, got %q", cfg.HTTPHost)
	}
	if cfg.PasswordScheme != PasswordSchemeBcrypt {
		t.Errorf("expected bcrypt scheme, got %q", cfg.PasswordScheme)
	}
}

func TestParseConfigOverrides(t *testing.T) {
	t.Setenv("ADMIN_USERNAME", "root")
	t.Setenv("AUDIT_ATOMIC", "true")
	t.Setenv("STORE_TIMEOUT_SECONDS", "9")

	cfg, err := ParseConfig()
	if err != nil {
		t.Fatalf("unexpected error parsing config: %v", err)
	}
	if cfg.AdminUsername != "root" {
		t.Errorf("expected overridden admin username, got %q", cfg.AdminUsername)
	}
	if !cfg.AuditAtomic {
		t.Error("expected atomic audit to be enabled")
	}
	if cfg.StoreTimeout() != 9*time.Second {
		t.Errorf("expected 9s timeout, got %s", cfg.StoreTimeout())
	}
}

func TestStoreTimeoutFallback(t *testing.T) {
	cfg := Config{StoreTimeoutSeconds: 0}
	if cfg.StoreTimeout() != 5*time.Second {
		t.Fatalf("expected default timeout, got %s", cfg.StoreTimeout())
	}
}

func TestRedactedMasksSecrets(t *testing.T) {
	cfg := Config{AdminPassword: "pw", JWTSecret: "secret", DBPassword: "db", DBUser: "app"}
	red := cfg.Redacted()
	if red.AdminPassword == "pw" || red.JWTSecret == "secret" || red.DBPassword == "db" {
		t.Fatalf("expected secrets to be masked, got %+v", red)
	}
	if red.DBUser != "app" {
		t.Fatalf("expected non-secret fields untouched, got %q", red.DBUser)
	}
	if cfg.AdminPassword != "pw" {
		t.Fatal("expected original config to be unchanged")
	}
}

func TestConfigureLogger(t *testing.T) {
	prev := logrus.GetLevel()
	t.Cleanup(func() { logrus.SetLevel(prev) })

	Config{LogLevel: "debug"}.ConfigureLogger()
	if logrus.GetLevel() != logrus.DebugLevel {
		t.Fatalf("expected debug level, got %s", logrus.GetLevel())
	}

	Config{LogLevel: "nonsense"}.ConfigureLogger()
	if logrus.GetLevel() != logrus.InfoLevel {
		t.Fatalf("expected fallback to info, got %s", logrus.GetLevel())
	}
}

func TestDatabasePortFollowsDialect(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want string
	}{
		{name: "mysql default", cfg: Config{DBType: "mysql"}, want: "3306"},
		{name: "postgres default", cfg: Config{DBType: "postgres"}, want: "5432"},
		{name: "postgres mixed case", cfg: Config{DBType: " Postgres "}, want: "5432"},
		{name: "explicit port wins", cfg: Config{DBType: "postgres", DBPort: "6543"}, want: "6543"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cfg.DatabasePort(); got != tt.want {
				t.Errorf("expected port %s, got %s", tt.want, got)
			}
		})
	}
}

func TestParseConfigLeavesPortUnset(t *testing.T) {
	t.Setenv("DBType", "postgres")

	cfg, err := ParseConfig()
	if err != nil {
		t.Fatalf("unexpected error parsing config: %v", err)
	}
	if cfg.DBPort != "" {
		t.Errorf("expected no port default, got %q", cfg.DBPort)
	}
	if cfg.DatabasePort() != "5432" {
		t.Errorf("expected postgres port, got %q", cfg.DatabasePort())
	}
}
