package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"allbooks/internal/book"
	"allbooks/internal/exports"
	"allbooks/internal/httpx"
)

func main() {
	loadEnvFiles()
	cfg := loadConfig()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	bookService := book.NewService(book.NewStaticRepository())
	module, err := exports.New(ctx, bookService)
	if err != nil {
		log.Fatalf("cannot initialize exports: %v", err)
	}
	log.Printf("exports ready: %v", module.Names())

	rateLimiter := httpx.NewRateLimitMiddleware(cfg.rateLimitRPS, cfg.rateLimitBurst)
	defer rateLimiter.Close()
	var handler http.Handler = newRouter(bookService, module)
	handler = httpx.RecoveryMiddleware(handler)
	handler = httpx.AccessLogMiddleware(handler)
	handler = rateLimiter.Middleware(handler)
	handler = httpx.RequestSizeLimitMiddleware(1 << 20)(handler)
	handler = httpx.SecurityHeadersMiddleware(cfg.enableHSTS)(handler)
	handler = httpx.CORSMiddleware(cfg.allowedOrigins)(handler)
	handler = httpx.RequestIDMiddleware(handler)

	httpServer := &http.Server{
		Addr:         cfg.addr,
		Handler:      handler,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("shutdown error: %v", err)
		}
	}()

	log.Printf("Starting server on %s", cfg.addr)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server error: %v", err)
	}
	log.Println("server stopped")
}

func newRouter(bookService *book.Service, module *exports.Module) *http.ServeMux {
	bookHandler := book.NewHTTPHandler(bookService)
	exportHandler := exports.NewHTTPHandler(module)

	router := http.NewServeMux()

	router.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.HandleFunc("GET /v1/books", bookHandler.List)
	router.HandleFunc("GET /v1/books/{index}", bookHandler.GetByIndex)

	router.HandleFunc("GET /v1/exports", exportHandler.List)
	router.HandleFunc("GET /v1/exports/{name}", exportHandler.Get)
	router.HandleFunc("POST /v1/exports/{name}/call", exportHandler.Call)

	return router
}
