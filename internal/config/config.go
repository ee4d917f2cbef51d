package config

import (
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/sirupsen/logrus"
)

const (
	PasswordSchemeBcrypt = "bcrypt"
	PasswordSchemeSHA256 = "sha256"
)

type Config struct {
	HTTPHost string `env:"HTTP_HOST" envDefault:"127.0.0.1"`
	HTTPPort string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	DBType     string `env:"DBType" envDefault:"sqlite"`
	DSNURL     string `env:"DSN_URL" envDefault:""`
	DBUser     string `env:"DBUser" envDefault:""`
	DBPassword string `env:"DBPassword" envDefault:""`
	DBAddr     string `env:"DBAddr" envDefault:""`
	DBName     string `env:"DBName" envDefault:"safety"`
	DBPath     string `env:"DBPath" envDefault:"datas/safety.db"`
	DBPort     string `env:"DBPort" envDefault:""`

	// Bootstrap administrator. The default password is public knowledge;
	// set ADMIN_PASSWORD in any real deployment.
	AdminUsername string `env:"ADMIN_USERNAME" envDefault:"ADMIN"`
	AdminPassword string `env:"ADMIN_PASSWORD" envDefault:"#sbm@86140764"`

	PasswordScheme      string `env:"PASSWORD_SCHEME" envDefault:"bcrypt"`
	AuditAtomic         bool   `env:"AUDIT_ATOMIC" envDefault:"false"`
	StoreTimeoutSeconds int    `env:"STORE_TIMEOUT_SECONDS" envDefault:"5"`

	JWTSecret            string `env:"JWT_SECRET" envDefault:"dev-secret-change-me"`
	JWTIssuer            string `env:"JWT_ISSUER" envDefault:"safetytips"`
	JWTExpirationMinutes int    `env:"JWT_EXPIRATION_MINUTES" envDefault:"1440"`
}

func ParseConfig() (Config, error) {
	var Conf Config
	err := env.Parse(&Conf)
	if err != nil {
		logrus.WithError(err).Error("env.Parse error")
		return Config{}, err
	}
	logrus.Debugf("%#v\n", Conf.Redacted())
	return Conf, nil
}

// DatabasePort returns DBPort, or the standard port of DBType when unset.
func (c Config) DatabasePort() string {
	if port := strings.TrimSpace(c.DBPort); port != "" {
		return port
	}
	if strings.EqualFold(strings.TrimSpace(c.DBType), "postgres") {
		return "5432"
	}
	return "3306"
}

// StoreTimeout is the per-operation deadline applied to repository calls.
func (c Config) StoreTimeout() time.Duration {
	if c.StoreTimeoutSeconds <= 0 {
		return 5 * time.Second
	}
	return time.Duration(c.StoreTimeoutSeconds) * time.Second
}

// Redacted returns a copy safe to print.
func (c Config) Redacted() Config {
	const mask = "******"
	if c.DBPassword != "" {
		c.DBPassword = mask
	}
	if c.AdminPassword != "" {
		c.AdminPassword = mask
	}
	if c.JWTSecret != "" {
		c.JWTSecret = mask
	}
	if c.DSNURL != "" {
		c.DSNURL = mask
	}
	return c
}

// ConfigureLogger applies LOG_LEVEL to the standard logrus logger.
func (c Config) ConfigureLogger() {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		logrus.WithError(err).WithField("level", c.LogLevel).Warn("unknown log level, using info")
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
}
