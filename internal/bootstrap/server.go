package bootstrap

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-hrm/internal/audit"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ServerConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// StartHTTPServer runs the router until SIGINT or SIGTERM, then drains
// in-flight requests.
func StartHTTPServer(
	router *gin.Engine,
	cfg ServerConfig,
	auditLogger audit.Logger,
) error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	return Serve(router, cfg, auditLogger, quit)
}

// Serve is StartHTTPServer with the stop channel supplied by the caller.
func Serve(
	handler http.Handler,
	cfg ServerConfig,
	auditLogger audit.Logger,
	stop <-chan os.Signal,
) error {
	log := zap.L().Named("bootstrap")
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = 10 * time.Second
	}

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info("HTTP server running", zap.String("port", cfg.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	var reason string
	select {
	case sig := <-stop:
		reason = sig.String()
		log.Info("Shutdown signal received", zap.String("signal", reason))
	case err, ok := <-serveErr:
		if ok {
			log.Error("ListenAndServe error", zap.Error(err))
			return err
		}
		return nil
	}

	// Audit before draining so the entry is written while sinks are still up.
	auditLogger.Log(context.Background(), audit.Entry{
		Action:  audit.ActionServerShutdown,
		Message: "Server is shutting down",
		Meta:    map[string]any{"signal": reason},
	})

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Forced shutdown", zap.Error(err))
		return err
	}
	log.Info("Server exited gracefully")
	return nil
}
