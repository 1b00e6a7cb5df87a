package database

import (
	"context"
	"embed"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
	_ "modernc.org/sqlite"

	"caritasAPI/internal/config"
	"caritasAPI/internal/models"
)

//go:embed migrations/*.sql migrations/*.yaml
var migrations embed.FS

func init() {
	sqlx.BindDriver(config.DriverSQLite, sqlx.QUESTION)
}

// Dialect selects the per-engine fragments of SQL that cannot be written portably.
type Dialect string

const (
	Postgres Dialect = config.DriverPostgres
	SQLite   Dialect = config.DriverSQLite
)

// MonthExpr renders a YYYY-MM bucket of a timestamp column.
func (d Dialect) MonthExpr(column string) string {
	if d == SQLite {
		return fmt.Sprintf("strftime('%%Y-%%m', %s)", column)
	}
	return fmt.Sprintf("to_char(%s, 'YYYY-MM')", column)
}

func (d Dialect) CountTablesQuery() string {
	if d == SQLite {
		return `SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%'`
	}
	return `SELECT COUNT(*) FROM information_schema.tables WHERE table_schema = 'public'`
}

func (d Dialect) schemaFile() string {
	return "migrations/" + string(d) + ".sql"
}

type DB struct {
	*sqlx.DB
	Dialect Dialect
}

// New wraps an open connection pool.
func New(db *sqlx.DB, dialect Dialect) *DB {
	return &DB{DB: db, Dialect: dialect}
}

func dataSource(cfg config.DB) string {
	if cfg.Driver == config.DriverSQLite {
		return cfg.DbPATH + "?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_time_format=sqlite"
	}
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.DbHOST,
		cfg.DbPORT,
		cfg.DbUSER,
		cfg.DbPASSWORD,
		cfg.DbNAME,
		cfg.DbSSLMODE,
	)
}

func ConnectDB(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*DB, error) {
	logger.Info("connecting to database",
		zap.String("driver", cfg.DB.Driver),
		zap.String("host", cfg.DB.DbHOST),
		zap.String("dbname", cfg.DB.DbNAME))

	db, err := sqlx.ConnectContext(ctx, cfg.DB.Driver, dataSource(cfg.DB))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if cfg.DB.Driver == config.DriverSQLite {
		// one writer at a time; statements never interleave on the file
		db.SetMaxOpenConns(1)
	} else {
		db.SetMaxOpenConns(cfg.DB.MaxOpenConns)
		db.SetMaxIdleConns(cfg.DB.MaxIdleConns)
	}
	db.SetConnMaxLifetime(30 * time.Minute)

	dbStruct := New(db, Dialect(cfg.DB.Driver))

	if err := dbStruct.HealthCheck(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("database health check failed: %w", err)
	}

	logger.Info("database connection established")
	return dbStruct, nil
}

func (db *DB) CloseDB() error {
	return db.DB.Close()
}

// RunMigrations applies the embedded schema for the current dialect and seeds default settings.
func (db *DB) RunMigrations(ctx context.Context) error {
	schema, err := migrations.ReadFile(db.Dialect.schemaFile())
	if err != nil {
		return fmt.Errorf("failed to read schema: %w", err)
	}

	if _, err := db.ExecContext(ctx, string(schema)); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}

	return db.seedSettings(ctx)
}

type settingSeed struct {
	Key string `yaml:"key"`
	models.SettingValue `yaml:",inline"`
}

func defaultSettings() ([]settingSeed, error) {
	raw, err := migrations.ReadFile("migrations/default_settings.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read default settings: %w", err)
	}

	var seeds []settingSeed
	if err := yaml.Unmarshal(raw, &seeds); err != nil {
		return nil, fmt.Errorf("failed to parse default settings: %w", err)
	}
	return seeds, nil
}

func (db *DB) seedSettings(ctx context.Context) error {
	seeds, err := defaultSettings()
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	for _, s := range seeds {
		_, err := db.Execute(ctx, `
			INSERT INTO site_settings (key, value_en, value_sh, type, updated_at)
			VALUES (?, ?, ?, ?, ?)
			ON CONFLICT (key) DO NOTHING`,
			s.Key, s.EN, s.SH, s.Type, now)
		if err != nil {
			return fmt.Errorf("failed to seed setting %s: %w", s.Key, err)
		}
	}
	return nil
}

func (db *DB) HealthCheck(ctx context.Context) error {
	if db == nil || db.DB == nil {
		return fmt.Errorf("database connection is not initialized")
	}

	return db.PingContext(ctx)
}
