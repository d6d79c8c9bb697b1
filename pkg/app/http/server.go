package http

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/chainsafe/navette/pkg/config"
)

const defaultShutdownTimeout = 30 * time.Second

// Server is an HTTP server that drains in-flight requests on shutdown
type Server struct {
	srv             *http.Server
	shutdownTimeout time.Duration
	logger          *zap.Logger
}

// NewServer builds a server for handler from the server section of the config
func NewServer(handler http.Handler, cfg *config.ServerConfig, logger *zap.Logger) (*Server, error) {
	if handler == nil {
		return nil, errors.New("nil handler")
	}
	if cfg == nil {
		return nil, errors.New("nil server config")
	}

	timeout := cfg.ShutdownTimeout
	if timeout <= 0 {
		timeout = defaultShutdownTimeout
	}

	return &Server{
		srv: &http.Server{
			Addr:         net.JoinHostPort(cfg.Host, fmt.Sprint(cfg.Port)),
			Handler:      handler,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  cfg.IdleTimeout,
		},
		shutdownTimeout: timeout,
		logger:          logger.With(zap.String("component", "http")),
	}, nil
}

// Serve accepts connections on ln until ctx is done or the listener fails,
// then shuts down gracefully. A listener failure is returned after shutdown.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("HTTP server listening", zap.String("address", ln.Addr().String()))
		if err := s.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	var serveErr error
	select {
	case <-ctx.Done():
		s.logger.Info("Shutdown signal received")
	case serveErr = <-errCh:
		if serveErr != nil {
			s.logger.Error("HTTP server error", zap.Error(serveErr))
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	s.logger.Info("Shutting down HTTP server", zap.Duration("timeout", s.shutdownTimeout))
	if err := s.srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	if serveErr != nil {
		return fmt.Errorf("http server failed: %w", serveErr)
	}

	s.logger.Info("HTTP server stopped")
	return nil
}

// ServeAndWait listens on the configured address and serves handler until ctx is done
func ServeAndWait(ctx context.Context, handler http.Handler, logger *zap.Logger, cfg *config.ServerConfig) error {
	s, err := NewServer(handler, cfg, logger)
	if err != nil {
		return err
	}
	ln, err := net.Listen("tcp", s.srv.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.srv.Addr, err)
	}
	return s.Serve(ctx, ln)
}
