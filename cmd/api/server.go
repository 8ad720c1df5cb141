package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	mw "github.com/5w1tchy/reading-list-api/internal/api/middlewares"
	"github.com/5w1tchy/reading-list-api/internal/api/router"
	"github.com/5w1tchy/reading-list-api/internal/repository/sqlconnect"
	storebooks "github.com/5w1tchy/reading-list-api/internal/store/books"
	"github.com/5w1tchy/reading-list-api/pkg/utils"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = ":8080"
	}

	db, err := sqlconnect.ConnectDB()
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	defer db.Close()
	log.Println("database connection OK")

	// Schema is created idempotently; no external migration tooling.
	if err := storebooks.EnsureSchema(context.Background(), db); err != nil {
		log.Fatalf("schema init failed: %v", err)
	}

	rl := mw.NewRateLimiter()
	defer rl.Close()

	handler := utils.ApplyMiddleware(
		router.Router(db),
		mw.Cors,
		mw.ResponseTimeMiddleware,
		rl.Middleware,
		mw.Compression,
		mw.BodySizeLimit,
		mw.RequestID,
		mw.Recovery,
		mw.SecurityHeaders,
	)

	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  time.Minute,
	}

	shutdownErr := make(chan error)
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit
		log.Printf("shutting down server: signal=%s", s)

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
		defer cancel()
		shutdownErr <- server.Shutdown(ctx)
	}()

	log.Printf("server listening on %s (GET/POST /books, GET/PUT/DELETE /books/{id}, GET /health)", addr)
	if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("server error: %v", err)
	}
	if err := <-shutdownErr; err != nil {
		log.Fatalf("shutdown error: %v", err)
	}
	log.Println("server stopped")
}
