// Package server wires the application together: it owns the router, the
// route table, and the dependency graph.
//
// COMPOSITION ROOT:
// New() is the one place where concrete types meet — the SQLite repository,
// the services, and the handlers are all constructed and connected here.
// Each layer only receives what it needs: services get repository
// interfaces, handlers get services, and nothing below this package knows
// the others' concrete types.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/sakif/taskmanager/internal/auth"
	"github.com/sakif/taskmanager/internal/config"
	"github.com/sakif/taskmanager/internal/handler"
	"github.com/sakif/taskmanager/internal/middleware"
	sqliteRepo "github.com/sakif/taskmanager/internal/repository/sqlite"
	"github.com/sakif/taskmanager/internal/service"
)

// Server owns the HTTP router and the database connection.
//
// The DB handle is opened in New and closed during Start's shutdown path —
// explicit ownership instead of a package-level global, so there's exactly
// one open/close pair for the process lifetime.
type Server struct {
	router *chi.Mux
	config *config.Config
	logger *slog.Logger
	db     *sqliteRepo.DB
}

// New opens the database and assembles the full dependency chain.
// A failure to open the store is returned to main, which exits — the
// process is useless without it.
func New(cfg *config.Config, logger *slog.Logger) (*Server, error) {
	db, err := sqliteRepo.New(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Server{
		router: chi.NewRouter(),
		config: cfg,
		logger: logger,
		db:     db,
	}

	s.setupRoutes()

	return s, nil
}

// Handler exposes the assembled router. Tests mount it on httptest.Server
// or drive it directly with httptest.NewRecorder.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Close releases the database. Callers that never reach Start (tests) use
// this for cleanup; Start defers it internally.
func (s *Server) Close() error {
	return s.db.Close()
}

// setupRoutes configures middleware and the route table.
//
// ROUTES:
//
//	POST   /register             → create account
//	POST   /login                → check credentials
//	POST   /projects/{userID}    → create project for owner
//	GET    /projects             → list all projects
//	PUT    /projects/{projectID} → replace name/description
//	DELETE /projects/{projectID} → remove project
//
// Middleware order matters — it runs top to bottom: request id and real IP
// first so the logger can use them, recoverer before the handlers so a
// panic becomes a 500 instead of a dead process, CORS last so even error
// responses carry the headers.
func (s *Server) setupRoutes() {
	s.router.Use(chimiddleware.RequestID)
	s.router.Use(chimiddleware.RealIP)
	s.router.Use(chimiddleware.Recoverer)
	s.router.Use(middleware.Logger(s.logger))
	s.router.Use(middleware.CORS(s.config.AllowedOrigins()))

	// Dependency chain: per-entity views of s.db satisfy the repository
	// interfaces; services receive the interfaces, handlers the services.
	authService := service.NewAuthService(s.db.Users(), auth.NewPasswordService(), s.logger)
	projectService := service.NewProjectService(s.db.Projects(), s.logger)

	authHandler := handler.NewAuthHandler(authService, s.logger)
	projectHandler := handler.NewProjectHandler(projectService, s.logger)

	s.router.Post("/register", authHandler.HandleRegister)
	s.router.Post("/login", authHandler.HandleLogin)

	s.router.Get("/projects", projectHandler.HandleList)
	s.router.Post("/projects/{userID}", projectHandler.HandleCreate)
	s.router.Put("/projects/{projectID}", projectHandler.HandleUpdate)
	s.router.Delete("/projects/{projectID}", projectHandler.HandleDelete)
}

// Start runs the HTTP server until SIGINT/SIGTERM, then shuts down
// gracefully: stop accepting connections, drain in-flight requests within
// the shutdown timeout, and finally close the database so the WAL is
// flushed and the file lock released.
func (s *Server) Start() error {
	defer s.db.Close()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", s.config.Port),
		Handler:      s.router,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		IdleTimeout:  s.config.IdleTimeout,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	serverErrors := make(chan error, 1)

	go func() {
		s.logger.Info("server starting",
			slog.Int("port", s.config.Port),
			slog.String("database", s.config.DBPath),
		)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}

	case sig := <-quit:
		s.logger.Info("shutdown signal received", slog.String("signal", sig.String()))

		ctx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		s.logger.Info("server stopped gracefully")
	}

	return nil
}
