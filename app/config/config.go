package config

import (
	"database/sql"
	"fmt"

	"github.com/caarlos0/env/v11"
	_ "modernc.org/sqlite"
)

// Config holds the runtime settings, read from the environment.
type Config struct {
	Port         int    `env:"PORT" envDefault:"3000"`
	DatabasePath string `env:"DATABASE_PATH" envDefault:"exams.db"`
	JWTSecret    string `env:"JWT_SECRET" envDefault:"exams-control-secret-key"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}

// OpenDB opens the file-backed store. WAL and foreign keys are always on; the
// busy timeout covers the write lock bulk upserts hold.
func OpenDB(path string) (*sql.DB, error) {
	dsn := path + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	db.SetMaxOpenConns(1)
	return db, nil
}
