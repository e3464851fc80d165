package tracking

import (
	"database/sql"
	"fmt"
	"time"

	// MySQL driver registration
	_ "github.com/go-sql-driver/mysql"
)

// Open opens the MySQL connection pool used by the store and verifies it
// with a ping. Connections are pooled; every statement acquires and releases
// one through the pool rather than pinning a connection to a request.
func Open(dsn string, maxOpen, maxIdle int, maxLifetime, maxIdleTime time.Duration) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(maxOpen)
	db.SetMaxIdleConns(maxIdle)
	db.SetConnMaxLifetime(maxLifetime)
	db.SetConnMaxIdleTime(maxIdleTime)

	if err := db.Ping(); err != nil {
		db.Close()

		return nil, fmt.Errorf("ping database: %w", err)
	}

	return db, nil
}
