package model

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"safetytips/internal/config"
	"safetytips/internal/entity"
	"safetytips/internal/model/sql"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

const (
	DBTypeMySQL    = "mysql"
	DBTypeSQLite   = "sqlite"
	DBTypePostgres = "postgres"
)

// RepositoryFactory 根据数据库类型创建对应的仓库实现
type RepositoryFactory struct{}

// NewRepositoryFactory 创建新的仓库工厂
func NewRepositoryFactory() *RepositoryFactory {
	return &RepositoryFactory{}
}

// InitRepository opens the configured store and creates the schema if absent.
// Failure here is the one error the application cannot continue past.
func InitRepository(cfg *config.Config) (Repository, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is nil")
	}
	return NewRepositoryFactory().CreateRepository(cfg)
}

// CreateRepository 根据配置创建对应的仓库实现
func (f *RepositoryFactory) CreateRepository(cfg *config.Config) (Repository, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.DBType)) {
	case DBTypeMySQL:
		return f.createMySQLRepository(cfg)
	case "", DBTypeSQLite:
		return f.createSQLiteRepository(cfg)
	case DBTypePostgres:
		return f.createPostgresRepository(cfg)
	default:
		return nil, fmt.Errorf("unsupported database type: %s", cfg.DBType)
	}
}

// createMySQLRepository 创建 MySQL 仓库
func (f *RepositoryFactory) createMySQLRepository(cfg *config.Config) (Repository, error) {
	db, err := f.openGormDB(mysql.Open(MySQLDSN(cfg)))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MySQL: %w", err)
	}
	return f.finish(db)
}

// createSQLiteRepository 创建 SQLite 仓库
func (f *RepositoryFactory) createSQLiteRepository(cfg *config.Config) (Repository, error) {
	filePath := cfg.DBPath
	if filePath == "" {
		filePath = "datas/safety.db"
	}

	// SQLite creates the file on connect, but only if the directory exists.
	if dir := filepath.Dir(filePath); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create directory %q: %w", dir, err)
		}
	}

	db, err := f.openGormDB(sqlite.Open(SQLiteDSN(filePath)))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to SQLite: %w", err)
	}
	return f.finish(db)
}

// createPostgresRepository 创建 PostgreSQL 仓库
func (f *RepositoryFactory) createPostgresRepository(cfg *config.Config) (Repository, error) {
	db, err := f.openGormDB(postgres.Open(PostgresDSN(cfg)))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	return f.finish(db)
}

func (f *RepositoryFactory) finish(db *gorm.DB) (Repository, error) {
	if err := MigrateSchema(db); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	return NewGormStore(db), nil
}

// MySQLDSN returns DSN_URL when set, otherwise a DSN built from the DB* fields.
// clientFoundRows makes an update that changes nothing still count as a match.
func MySQLDSN(cfg *config.Config) string {
	if cfg.DSNURL != "" {
		return cfg.DSNURL
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local&clientFoundRows=true",
		cfg.DBUser, cfg.DBPassword, cfg.DBAddr, cfg.DatabasePort(), cfg.DBName)
}

// PostgresDSN returns DSN_URL when set, otherwise a DSN built from the DB* fields.
func PostgresDSN(cfg *config.Config) string {
	if cfg.DSNURL != "" {
		return cfg.DSNURL
	}
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		cfg.DBAddr, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DatabasePort())
}

// SQLiteDSN turns a file path into a DSN with foreign keys enforced on every
// pooled connection, which ON DELETE CASCADE depends on.
func SQLiteDSN(path string) string {
	if strings.Contains(path, "?") {
		return path + "&_foreign_keys=on"
	}
	return path + "?_foreign_keys=on"
}

func (f *RepositoryFactory) openGormDB(dialector gorm.Dialector) (*gorm.DB, error) {
	gormLogger := logger.New(
		log.New(logrus.StandardLogger().Writer(), "", 0),
		logger.Config{
			SlowThreshold:             time.Second * 5,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         gormLogger,
		TranslateError: true,
		NamingStrategy: schema.NamingStrategy{
			SingularTable: true,
		},
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}

// MigrateSchema creates users, tips and activities with their indexes and the
// activities → users cascade.
func MigrateSchema(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.User{},
		&entity.Tip{},
		&entity.Activity{},
	)
}

// GormStore adapts sql.GormRepository to Repository, including transactions.
type GormStore struct {
	*sql.GormRepository
}

// NewGormStore wraps an open connection.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{GormRepository: sql.NewGormRepository(db)}
}

// Transaction implements Repository.
func (s *GormStore) Transaction(ctx context.Context, fn func(tx Repository) error) error {
	return s.GormRepository.Transaction(ctx, func(tx *sql.GormRepository) error {
		return fn(&GormStore{GormRepository: tx})
	})
}

var _ Repository = (*GormStore)(nil)
