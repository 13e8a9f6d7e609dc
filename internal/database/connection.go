package database

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

// DB is the global database connection
var DB *sqlx.DB

// Connect establishes a connection to the database. DB_TYPE selects the
// driver: "sqlite" (default, local file) or "postgres" (remote mirror,
// DATABASE_URL).
func Connect() error {
	dbType := os.Getenv("DB_TYPE")
	if dbType == "" {
		dbType = "sqlite"
	}

	var db *sqlx.DB
	var err error

	switch dbType {
	case "postgres":
		dsn := os.Getenv("DATABASE_URL")
		if dsn == "" {
			return fmt.Errorf("DATABASE_URL environment variable is not set")
		}
		db, err = sqlx.Connect("postgres", dsn)
		if err != nil {
			return fmt.Errorf("failed to connect to postgres: %v", err)
		}

	default:
		dataDir := "data"
		if err := os.MkdirAll(dataDir, 0755); err != nil {
			return fmt.Errorf("failed to create data directory: %v", err)
		}
		dbPath := filepath.Join(dataDir, "husnabot.db")
		db, err = sqlx.Connect("sqlite3", dbPath)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %v", err)
		}
		if _, err = db.Exec("PRAGMA foreign_keys = ON"); err != nil {
			return fmt.Errorf("failed to enable foreign keys: %v", err)
		}
		// SQLite doesn't support multiple writers
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
	}

	DB = db
	return initializeSchema()
}

// Close closes the database connection
func Close() error {
	if DB != nil {
		return DB.Close()
	}
	return nil
}

// initializeSchema creates necessary tables if they don't exist
func initializeSchema() error {
	for _, stmt := range schemaStatements() {
		if _, err := DB.Exec(stmt); err != nil {
			return fmt.Errorf("failed to initialize schema: %v", err)
		}
	}
	return nil
}

// schemaStatements returns the DDL for the active driver. Identifiers that
// clash with SQL keywords ("interval") stay quoted so the same column names
// work on both drivers.
func schemaStatements() []string {
	serial := "INTEGER PRIMARY KEY AUTOINCREMENT"
	real := "REAL"
	if DB.DriverName() == "postgres" {
		serial = "BIGSERIAL PRIMARY KEY"
		real = "DOUBLE PRECISION"
	}

	return []string{
		fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS users (
			id %s,
			telegram_id BIGINT UNIQUE NOT NULL,
			username TEXT,
			first_name TEXT,
			last_name TEXT,
			is_admin BOOLEAN DEFAULT false,
			notification_enabled BOOLEAN DEFAULT true,
			notification_hour INTEGER DEFAULT 9,
			session_minutes INTEGER DEFAULT 10,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`, serial),
		`
		CREATE TABLE IF NOT EXISTS names (
			id BIGINT PRIMARY KEY,
			number INTEGER UNIQUE NOT NULL,
			transliteration TEXT NOT NULL,
			arabic TEXT NOT NULL,
			meaning TEXT NOT NULL,
			aliases TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS memory_states (
			id %s,
			user_id BIGINT NOT NULL,
			name_id BIGINT NOT NULL,
			"interval" INTEGER NOT NULL DEFAULT 1,
			ease_factor %s NOT NULL DEFAULT 2.5,
			consecutive_correct INTEGER NOT NULL DEFAULT 0,
			last_quality INTEGER NOT NULL DEFAULT 0,
			last_reviewed TIMESTAMP,
			next_review TIMESTAMP NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			UNIQUE(user_id, name_id)
		)`, serial, real),
		`
		CREATE TABLE IF NOT EXISTS session_results (
			id TEXT PRIMARY KEY,
			user_id BIGINT NOT NULL,
			review_count INTEGER NOT NULL DEFAULT 0,
			new_count INTEGER NOT NULL DEFAULT 0,
			reinforcement_count INTEGER NOT NULL DEFAULT 0,
			correct_count INTEGER NOT NULL DEFAULT 0,
			duration_seconds INTEGER NOT NULL DEFAULT 0,
			completed_at TIMESTAMP NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
	}
}
