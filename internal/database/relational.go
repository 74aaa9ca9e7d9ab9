package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"go-contacthub/internal/config"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	"go.uber.org/fx"
)

// OriginDB wraps the relational backend holding the five origin contact tables.
type OriginDB struct {
	DB     *sql.DB
	Driver string // "postgres" or "mysql"
}

// NewOriginDB opens the relational origin store with lifecycle management.
func NewOriginDB(lc fx.Lifecycle, cfg *config.Config) (*OriginDB, error) {
	driver := cfg.OriginDBDriver
	switch driver {
	case "postgres", "mysql":
	default:
		return nil, fmt.Errorf("unsupported origin db driver: %s", driver)
	}

	db, err := sql.Open(driver, cfg.OriginDBDSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open origin database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := db.PingContext(ctx); err != nil {
				return fmt.Errorf("failed to ping origin database: %w", err)
			}
			log.Printf("Connected to origin store (%s)", driver)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return db.Close()
		},
	})

	return &OriginDB{DB: db, Driver: driver}, nil
}

// Placeholder returns the positional placeholder for the configured driver,
// 1-indexed ($1, $2, ... for postgres; ? for mysql).
func (o *OriginDB) Placeholder(n int) string {
	if o.Driver == "postgres" {
		return fmt.Sprintf("$%d", n)
	}
	return "?"
}
