package database

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
)

// DBService represents a service that interacts with the database.
type DBService struct {
	DB *sql.DB
}

// NewDBService loads environment variables, opens the postgres connection pool
// and verifies the connection with a ping.
func NewDBService() (*DBService, error) {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, continuing with system environment variables")
	}

	connStr := os.Getenv("DB_CONNECTION_STRING")
	if connStr == "" {
		return nil, fmt.Errorf("missing DB_CONNECTION_STRING in environment variables")
	}

	db, err := sql.Open("pgx", connStr)
	if err != nil {
		return nil, fmt.Errorf("could not open db connection: %v", err)
	}

	db.SetMaxOpenConns(50)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	err = db.Ping()
	if err != nil {
		return nil, fmt.Errorf("could not connect to the database: %v", err)
	}

	return &DBService{DB: db}, nil
}

// Health checks the database connection by pinging it and returns
// a map of health statistics.
func (s *DBService) Health() map[string]string {
	stats := make(map[string]string)

	err := s.DB.Ping()
	if err != nil {
		stats["status"] = "down"
		stats["error"] = fmt.Sprintf("db down: %v", err)
		return stats
	}

	stats["status"] = "up"
	stats["message"] = "It's healthy"
	return stats
}

// Close closes the database connection.
func (s *DBService) Close() error {
	log.Println("Closing database connection")
	return s.DB.Close()
}
