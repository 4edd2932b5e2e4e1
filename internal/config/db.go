package config

import (
	"context"
	"database/sql"
	"log"
	"sync"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

var (
	// DB is the shared handle. Nil when the service runs without a database.
	DB   *sql.DB
	dbMu sync.Mutex
)

// ConnectDB initializes the shared DB connection from a DSN (idempotent).
func ConnectDB(dsn string) (*sql.DB, error) {
	dbMu.Lock()
	defer dbMu.Unlock()

	if DB != nil {
		return DB, nil
	}

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(10 * time.Minute)
	db.SetConnMaxIdleTime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}

	DB = db
	log.Println("connected to MySQL")
	return DB, nil
}

// CloseDB closes the shared handle if one was opened.
func CloseDB() {
	dbMu.Lock()
	defer dbMu.Unlock()

	if DB == nil {
		return
	}
	if err := DB.Close(); err != nil {
		log.Printf("closing DB: %v", err)
	}
	DB = nil
}
