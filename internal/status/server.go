// Package status runs the small HTTP listener that answers health probes while
// an interactive session is open.
package status

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"
)

type Server struct {
	server   *http.Server
	listener net.Listener
	logger   *zap.Logger
	done     chan struct{}
}

func healthcheck(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// Handler returns the routes served by the listener.
func Handler(logger *zap.Logger) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthcheck", healthcheck)
	return loggingMiddleware(logger, mux)
}

func loggingMiddleware(logger *zap.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		logger.Debug("status request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("elapsed", time.Since(start)),
		)
	})
}

// Start binds addr and serves in the background.
func Start(addr string, logger *zap.Logger) (*Server, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", addr, err)
	}

	s := &Server{
		server: &http.Server{
			Handler:           Handler(logger),
			ReadHeaderTimeout: 5 * time.Second,
		},
		listener: ln,
		logger:   logger,
		done:     make(chan struct{}),
	}

	go func() {
		defer close(s.done)
		if err := s.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("status listener failed", zap.Error(err))
		}
	}()

	logger.Info("status listener started", zap.String("addr", ln.Addr().String()))
	return s, nil
}

func (s *Server) Addr() string {
	return s.listener.Addr().String()
}

// Shutdown stops accepting requests and waits for the serve loop to return.
func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown status listener: %w", err)
	}
	<-s.done
	s.logger.Info("status listener stopped")
	return nil
}
