package db

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func ConnectPostgres() *pgxpool.Pool {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Fatal(err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	db, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		log.Fatal(err)
	}

	if err := db.Ping(context.Background()); err != nil {
		log.Fatal("Postgres connection failed:", err)
	}

	log.Println("✅ Connected to PostgreSQL")

	// Initialize schema
	if err := initSchema(db); err != nil {
		log.Fatal("Failed to initialize schema:", err)
	}

	return db
}

// initSchema creates or updates the database schema
func initSchema(db *pgxpool.Pool) error {
	ctx := context.Background()

	// -------------------------------
	// USERS
	// -------------------------------
	userTableSQL := `
		CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			email VARCHAR(255) UNIQUE NOT NULL,
			password VARCHAR(255) NOT NULL,
			role VARCHAR(50) NOT NULL DEFAULT 'CUSTOMER',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, userTableSQL); err != nil {
		return err
	}

	// -------------------------------
	// MENU ITEMS (proteins + sides)
	// -------------------------------
	menuItemsSQL := `
		CREATE TABLE IF NOT EXISTS menu_items (
			ref VARCHAR(100) PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			category VARCHAR(50) NOT NULL,
			variants JSONB NOT NULL DEFAULT '[]',
			image_url VARCHAR(500),
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, menuItemsSQL); err != nil {
		return err
	}

	// -------------------------------
	// ADD-ONS
	// -------------------------------
	addonsSQL := `
		CREATE TABLE IF NOT EXISTS addons (
			ref VARCHAR(100) PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			category VARCHAR(50) NOT NULL,
			active BOOLEAN NOT NULL DEFAULT TRUE,
			currency VARCHAR(10) NOT NULL DEFAULT 'usd',
			amount_minor BIGINT NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, addonsSQL); err != nil {
		return err
	}

	// -------------------------------
	// BUSINESS RULES (single tenant row)
	// -------------------------------
	settingsSQL := `
		CREATE TABLE IF NOT EXISTS settings (
			id INT PRIMARY KEY DEFAULT 1,
			rules JSONB NOT NULL,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			CHECK (id = 1)
		)
	`
	if _, err := db.Exec(ctx, settingsSQL); err != nil {
		return err
	}

	// -------------------------------
	// QUOTES
	// -------------------------------
	quotesSQL := `
		CREATE TABLE IF NOT EXISTS quotes (
			id UUID PRIMARY KEY,
			customer_id UUID NOT NULL,
			customer_email VARCHAR(255) NOT NULL,
			event_date DATE,
			status VARCHAR(50) NOT NULL DEFAULT 'PENDING',
			request JSONB NOT NULL,
			breakdown JSONB NOT NULL,
			total_minor BIGINT NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (customer_id) REFERENCES users(id)
		)
	`
	if _, err := db.Exec(ctx, quotesSQL); err != nil {
		return err
	}

	// -------------------------------
	// CONFIRMATION EMAIL OUTBOX
	// -------------------------------
	emailsSQL := `
		CREATE TABLE IF NOT EXISTS quote_emails (
			id SERIAL PRIMARY KEY,
			quote_id UUID NOT NULL,
			recipient VARCHAR(255) NOT NULL,
			status VARCHAR(50) NOT NULL DEFAULT 'PENDING',
			failure_reason TEXT,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			sent_at TIMESTAMP,
			FOREIGN KEY (quote_id) REFERENCES quotes(id)
		)
	`
	if _, err := db.Exec(ctx, emailsSQL); err != nil {
		return err
	}

	log.Println("✅ Schema initialized successfully")
	return nil
}
