package database

import (
	"database/sql"
	"fmt"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"

	"gitlab.com/olena.kushnir/contacts-api/internal/config"
)

// Open connects to MySQL using the configured credentials and wraps the
// handle for sqlx. It pings the server so that misconfiguration surfaces
// at startup instead of on the first request.
func Open(cfg *config.DatabaseConfig) (*sqlx.DB, error) {
	sqlDB, err := sql.Open("mysql", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	db := sqlx.NewDb(sqlDB, "mysql")
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return db, nil
}
