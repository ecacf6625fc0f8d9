package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"appointment-booking-api/internal/auth"
	"appointment-booking-api/internal/config"
	"appointment-booking-api/internal/handler"
	"appointment-booking-api/internal/store"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}

	ctx := context.Background()

	// database bootstrap: create the database if absent, then open the pool
	if err := store.EnsureDatabase(ctx, cfg.MaintenanceDSN(), cfg.DBName); err != nil {
		fatalDB("db bootstrap", err)
	}
	pool, err := store.Connect(ctx, cfg.DSN())
	if err != nil {
		fatalDB("db connect", err)
	}
	defer pool.Close()
	log.Println("connected to postgres")

	st := store.New(pool)

	// schema migration runs before the server accepts traffic; failure is fatal
	migration, err := os.ReadFile("db/migrations/001_init.sql")
	if err != nil {
		log.Fatalf("read migration: %v", err)
	}
	if err := st.Migrate(ctx, string(migration)); err != nil {
		log.Fatalf("migration: %v", err)
	}
	log.Println("migration applied")

	if cfg.SeedAdmin {
		hash, err := auth.HashPassword(cfg.AdminPassword)
		if err != nil {
			log.Fatalf("seed admin: %v", err)
		}
		if err := st.SeedAdmin(ctx, config.AdminEmail, hash); err != nil {
			log.Fatalf("seed admin: %v", err)
		}
		log.Printf("admin account ready (%s)", config.AdminEmail)
	}

	h := handler.New(st, cfg.JWTSecret)

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Authorization"},
	}))
	h.RegisterRoutes(r)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}
	go func() {
		log.Printf("server on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("http: %v", err)
		}
	}()

	// graceful shutdown: stop accepting requests, then drain the pool
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	<-ch
	log.Println("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}

func fatalDB(op string, err error) {
	log.Printf("%s: %v", op, err)
	log.Println("Please ensure:")
	log.Println("1. PostgreSQL is installed and running")
	log.Println("2. Database credentials (DB_HOST, DB_USER, DB_PASSWORD, DB_PORT, DB_NAME) are correct")
	log.Println("3. Run: sudo systemctl start postgresql (Linux) or brew services start postgresql (Mac)")
	os.Exit(1)
}
