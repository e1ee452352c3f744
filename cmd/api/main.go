//	@title			Upper Media Storage API
//	@version		1.0
//	@description	Self-hosted media storage: authenticated uploads, public byte-range serving under /cdn/, deletion by public address.
//
//	@host		storage.grupoupper.com.br
//	@BasePath	/
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Shared upload token. Format: **Bearer {token}**

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/grupoupper/storage/internal/config"
	"github.com/grupoupper/storage/internal/media"
	appMiddleware "github.com/grupoupper/storage/internal/middleware"
	"github.com/grupoupper/storage/internal/storage"

	_ "github.com/grupoupper/storage/docs/swagger"
)

func main() {
	cfg := config.Load()

	store, err := storage.New(cfg.MediaRoot, cfg.PublicBaseURL)
	if err != nil {
		log.Fatalf("media root init failed: %v", err)
	}

	if cfg.UploadToken == "" {
		log.Println("warning: UPLOAD_TOKEN is empty, admin endpoints are unauthenticated")
	}

	// Wire dependencies: store → service → handler
	mediaSvc := media.NewService(store, cfg.AllowedExt)
	mediaHandler := media.NewHandler(mediaSvc, store, cfg)

	// Router
	r := chi.NewRouter()
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(appMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "HEAD", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "Range", "X-Request-ID"},
		ExposedHeaders:   []string{"Content-Length", "Content-Range", "Accept-Ranges"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	// Swagger UI — available at http://localhost:8080/swagger/
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	// Public media, byte-range capable
	r.Get("/cdn/*", mediaHandler.ServeCDN)
	r.Head("/cdn/*", mediaHandler.ServeCDN)

	// Admin endpoints guarded by the shared upload token
	r.Route("/admin/media", func(r chi.Router) {
		r.Use(appMiddleware.RequireToken(cfg.UploadToken))
		r.Post("/upload", mediaHandler.Upload)
		r.Post("/delete", mediaHandler.Delete)
		r.Delete("/delete", mediaHandler.Delete)
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
		// No WriteTimeout: range requests stream media files for longer
		// than any fixed deadline.
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	// Start server in goroutine; wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("server listening on :%s (env=%s, media root=%s)", cfg.Port, cfg.AppEnv, cfg.MediaRoot)
		if !cfg.IsProduction() {
			log.Printf("swagger UI at http://localhost:%s/swagger/", cfg.Port)
		}
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	<-quit
	log.Println("shutting down gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("forced shutdown: %v", err)
	}

	log.Println("server stopped")
}
