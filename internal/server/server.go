package server

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/dealflow/apiserver/config"
	"github.com/dealflow/apiserver/internal/db"
	"github.com/dealflow/apiserver/internal/handlers"
	appmiddleware "github.com/dealflow/apiserver/internal/middleware"
	"github.com/dealflow/apiserver/internal/services"
	"github.com/dealflow/apiserver/internal/store"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

// bootstrapAccounts are ensured at every start, for demo and testing access.
var bootstrapAccounts = []services.BootstrapAccount{
	{Username: "muser", Password: "muser", Email: "owner@example.com", Name: "Mock Company Owner", UserType: "company"},
	{Username: "mpe", Password: "mpe", Email: "investor@example.com", Name: "Mock Private Equity", UserType: "investor"},
}

// Server wraps the HTTP server and router.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	db         *sql.DB
}

// New opens the store, brings the schema current, seeds the bootstrap
// accounts, and wires the router. Migration and seeding run once here,
// before the listener starts; request handling never touches the schema.
func New(ctx context.Context, cfg config.Config) (*Server, error) {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	dbConn, err := db.Open(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(dbConn); err != nil {
		_ = dbConn.Close()
		return nil, err
	}
	logger.Info().Msg("schema migrations applied")

	userRepo := store.NewUserRepository(dbConn)
	companyRepo := store.NewCompanyRepository(dbConn)

	userService := services.NewUserService(userRepo)
	companyService := services.NewCompanyService(companyRepo)

	if err := userService.Seed(ctx, bootstrapAccounts); err != nil {
		_ = dbConn.Close()
		return nil, err
	}
	logger.Info().Int("accounts", len(bootstrapAccounts)).Msg("bootstrap accounts ensured")

	validate := handlers.NewValidator()

	router := chi.NewRouter()
	router.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		middleware.Timeout(60*time.Second),
		appmiddleware.CORS,
	)
	router.Get("/healthz", handlers.Healthz)
	router.Route("/api", func(r chi.Router) {
		handlers.AuthRouter(r, userService, validate)
		r.Route("/companies", func(r chi.Router) {
			handlers.CompanyRouter(r, companyService, validate)
		})
	})

	port := cfg.ServerPort
	if port == 0 {
		port = 8080
	}
	logger.Info().Int("port", port).Msg("server listening")

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &Server{
		httpServer: httpServer,
		router:     router,
		db:         dbConn,
	}, nil
}

// Router exposes the chi router for route registration.
func (s *Server) Router() *chi.Mux {
	return s.router
}

// Start runs the HTTP server.
func (s *Server) Start() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown attempts a graceful shutdown.
func (s *Server) Shutdown() error {
	if s.db != nil {
		_ = s.db.Close()
	}
	return s.httpServer.Close()
}
