package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/ziadkadry99/folio/internal/portfolio"
)

// reloadDebounce groups the burst of events an editor save produces.
const reloadDebounce = 200 * time.Millisecond

// Config holds server configuration.
type Config struct {
	Port        int
	AllowAll    bool   // allow all CORS origins (dev mode)
	ProfilePath string // profile served at /; empty serves the sample profile
	Template    string // template for the live preview
	Watch       bool   // reload the live preview when ProfilePath changes
}

// Server is the preview service: a JSON generation API plus a live preview
// of one profile file.
type Server struct {
	cfg        Config
	gen        *portfolio.Generator
	site       *liveSite
	hub        *hub
	router     chi.Router
	httpServer *http.Server
	stopWatch  context.CancelFunc
}

// New creates a server that renders with gen. The live preview is generated
// once up front; a failure there is logged and reported at /.
func New(cfg Config, gen *portfolio.Generator) *Server {
	s := &Server{
		cfg:  cfg,
		gen:  gen,
		site: newLiveSite(cfg.ProfilePath, cfg.Template, gen),
		hub:  newHub(),
	}
	if err := s.site.reload(); err != nil {
		log.Printf("preview: %v", err)
	}

	s.router = s.buildRouter()
	return s
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS
	corsOpts := cors.Options{
		AllowedOrigins:   []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	// Health check
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(60 * time.Second))
		s.registerAPI(r)
		s.registerLive(r)
	})

	// Long-lived; kept outside the request timeout.
	r.Get("/ws/reload", s.handleReloadSocket)

	return r
}

// Router returns the chi router for registering additional routes.
func (s *Server) Router() chi.Router { return s.router }

// ServerConfig returns the server configuration.
func (s *Server) ServerConfig() Config { return s.cfg }

// Reload regenerates the live preview and tells connected browsers to
// refresh. Failures are pushed to the browsers as well.
func (s *Server) Reload() error {
	if err := s.site.reload(); err != nil {
		s.hub.broadcast(reloadMessage{Type: "error", Error: err.Error()})
		return err
	}
	s.hub.broadcast(reloadMessage{Type: "reload"})
	return nil
}

// Start begins listening on the configured port. With Watch set it also
// watches the profile file for changes.
func (s *Server) Start() error {
	if s.cfg.Watch && s.cfg.ProfilePath != "" {
		ctx, cancel := context.WithCancel(context.Background())
		s.stopWatch = cancel
		err := watchFile(ctx, s.cfg.ProfilePath, reloadDebounce, func() {
			if err := s.Reload(); err != nil {
				log.Printf("preview: %v", err)
				return
			}
			log.Printf("preview: reloaded %s", s.cfg.ProfilePath)
		})
		if err != nil {
			cancel()
			return err
		}
	}

	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("folio preview listening on %s", addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.stopWatch != nil {
		s.stopWatch()
	}
	s.hub.closeAll()
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
