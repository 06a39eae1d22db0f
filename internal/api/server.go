package api

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/crossplay/xwordsat/internal/cache"
	"github.com/crossplay/xwordsat/internal/config"
	"github.com/crossplay/xwordsat/internal/store"
)

// NewRouter builds the gin engine exposing h's handlers.
func NewRouter(h *Handlers) *gin.Engine {
	router := gin.Default()

	router.GET("/health", h.HandleHealth)
	apiGroup := router.Group("/api")
	apiGroup.POST("/solve", h.HandleSolve)

	return router
}

// Run boots the HTTP service: it connects to Redis and Postgres if
// configured, builds the router, and serves until it receives SIGINT
// or SIGTERM, at which point it shuts down gracefully. Grounded on the
// teacher's cmd/server/main.go bootstrap.
func Run(cfg *config.Config) error {
	h := &Handlers{Backend: cfg.Backend}

	if redisCache, err := cache.OpenRedis(cfg.RedisURL); err != nil {
		log.Printf("redis unavailable, running without solve cache: %v", err)
	} else {
		h.Cache = redisCache
		defer redisCache.Close()
	}

	if st, err := store.Open(cfg.PostgresURL); err != nil {
		log.Printf("postgres unavailable, running without solve audit log: %v", err)
	} else {
		h.Store = st
		defer st.Close()
	}

	router := NewRouter(h)
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server failed: %v", err)
		}
	}()
	log.Printf("xwordsat listening on :%s", cfg.Port)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}
	return nil
}
