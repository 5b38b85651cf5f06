package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"go.uber.org/zap"

	"teamfortasks/internal/config"
	"teamfortasks/internal/handlers/health"
	"teamfortasks/internal/handlers/landing"
	"teamfortasks/internal/handlers/pricing"
	"teamfortasks/internal/middleware"
	"teamfortasks/internal/services"
	"teamfortasks/web"
)

type Server struct {
	config   config.Config
	log      *zap.SugaredLogger
	services *services.Services
}

func New(cfg config.Config, log *zap.SugaredLogger, svc *services.Services) *Server {
	return &Server{
		config:   cfg,
		log:      log,
		services: svc,
	}
}

// Handler returns the routes wrapped in the middleware chain.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	// Serve static files
	mux.Handle("/static/", http.StripPrefix("/static/",
		http.FileServer(http.FS(web.Static()))))

	// Health check endpoint
	mux.HandleFunc("/health", health.Handler)

	mux.HandleFunc("/api/pricing", pricing.Handler)
	mux.Handle("/", landing.Handler(s.services, s.log))

	return middleware.Chain(mux,
		middleware.RequestID,
		middleware.Recover(s.log),
		middleware.RequestLogger(s.log),
	)
}

// ListenAndServe listens on the configured port until ctx is done, then
// shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.config.Addr())
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is done.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	server := &http.Server{
		Handler:      s.Handler(),
		ReadTimeout:  s.config.Server.ReadTimeout,
		WriteTimeout: s.config.Server.WriteTimeout,
		IdleTimeout:  s.config.Server.IdleTimeout,
	}

	s.log.Infow("serving", "addr", ln.Addr().String())
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Serve(ln)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		s.log.Warnw("server shutdown", "error", err, "timeout", s.config.Server.ShutdownTimeout)
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	s.log.Infow("server stopped")
	return nil
}
