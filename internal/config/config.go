package config

import (
	"fmt"
	"net/url"
	"os"
)

// AdminEmail is the fixed address of the seeded administrator account.
const AdminEmail = "admin@appointment.com"

type Config struct {
	DBHost     string
	DBUser     string
	DBPassword string
	DBPort     string
	DBName     string

	Port      string
	JWTSecret string

	// SeedAdmin gates the startup admin bootstrap. On by default so a
	// fresh database always has exactly one admin account.
	SeedAdmin     bool
	AdminPassword string
}

func Load() Config {
	return Config{
		DBHost:        env("DB_HOST", "127.0.0.1"),
		DBUser:        env("DB_USER", "postgres"),
		DBPassword:    env("DB_PASSWORD", "postgres"),
		DBPort:        env("DB_PORT", "5432"),
		DBName:        env("DB_NAME", "appointment_booking"),
		Port:          env("PORT", "3000"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		SeedAdmin:     env("SEED_ADMIN", "true") != "false",
		AdminPassword: env("ADMIN_PASSWORD", "admin123"),
	}
}

// DSN is the pool connection string for the application database.
func (c Config) DSN() string {
	return c.dsn(c.DBName)
}

// MaintenanceDSN targets the postgres maintenance database, used only to
// create the application database when it does not exist yet.
func (c Config) MaintenanceDSN() string {
	return c.dsn("postgres")
}

func (c Config) dsn(dbName string) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		url.QueryEscape(c.DBUser), url.QueryEscape(c.DBPassword),
		c.DBHost, c.DBPort, dbName)
}

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
