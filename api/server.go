package api

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"linkbio-backend/config"
	"linkbio-backend/database"
)

type Server struct {
	*http.Server
	startupTime time.Time
}

func NewServer(database database.Database) (Server, error) {
	c := config.New()

	port := config.GetString(c, "PORT", "8080")
	address := fmt.Sprintf("0.0.0.0:%s", port)

	startupTime := time.Now()

	router := newRouter(database, withConfig(c), withStartupTime(startupTime))

	readTimeout := config.GetDuration(c, "READ_TIMEOUT", 30*time.Second)
	writeTimeout := config.GetDuration(c, "WRITE_TIMEOUT", 30*time.Second)
	idleTimeout := config.GetDuration(c, "IDLE_TIMEOUT", 120*time.Second)

	server := &http.Server{
		Addr:         address,
		Handler:      router,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return Server{server, startupTime}, nil
}

type router struct {
	config      map[string]string
	startupTime time.Time
}

func withConfig(c map[string]string) func(*router) {
	return func(r *router) {
		r.config = c
	}
}

func withStartupTime(startupTime time.Time) func(*router) {
	return func(r *router) {
		r.startupTime = startupTime
	}
}

func newRouter(database database.Database, opts ...func(*router)) *chi.Mux {
	var router router
	for _, opt := range opts {
		opt(&router)
	}

	chiRouter := chi.NewRouter()
	chiRouter.Use(LogInternalServerErrors)

	acceptedOrigins := strings.Split(config.GetString(router.config, "ACCEPTED_ORIGINS", "*"), ",")
	chiRouter.Use(cors.Handler(cors.Options{
		AllowedOrigins:   acceptedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// A missing secret gets a random per-boot value; sessions then expire on
	// every restart, which is safe but noisy, hence the warning.
	secret := config.GetString(router.config, "SESSION_SECRET", "")
	if secret == "" {
		secret = uuid.NewString()
		log.Warn().Msg("SESSION_SECRET not set; using a random per-boot secret, sessions will not survive restarts")
	}
	sessions := newSessionManager(secret)

	handlers := initializeHandlers(database, sessions)

	sessionMiddleware := newSessionMiddleware(sessions)

	setupRoutes(chiRouter, handlers, sessionMiddleware, router.startupTime)

	return chiRouter
}

func (s Server) Start(errChannel chan<- error) {
	log.Info().Msgf("Server started on: %s", s.Addr)
	errChannel <- s.ListenAndServe()
}

func (s Server) ShutdownGracefully(timeout time.Duration) {
	log.Info().Msg("Gracefully shutting down...")

	gracefullCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := s.Shutdown(gracefullCtx); err != nil {
		log.Error().Msgf("Error shutting down the server: %v", err)
	} else {
		log.Info().Msg("HttpServer gracefully shut down")
	}
}
