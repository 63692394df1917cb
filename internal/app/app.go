package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/florianilch/zoom-mcp/internal/metrics"
	"github.com/florianilch/zoom-mcp/internal/server"
	"github.com/florianilch/zoom-mcp/internal/tokensource"
	"github.com/florianilch/zoom-mcp/internal/zoomapi"
)

// Version is announced to MCP clients. Overridden at build time.
var Version = "dev"

// App orchestrates the lifecycle of the MCP server and related services.
type App struct {
	cfg    *Config
	server *server.Server
}

// New creates a new App instance.
func New(cfg *Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	// I/O deferred to the first tool call
	tokens, err := NewTokenManager(cfg)
	if err != nil {
		return nil, err
	}

	clientOpts := []zoomapi.Option{
		zoomapi.WithBaseURL(cfg.Upstream.BaseURL),
		zoomapi.WithTimeout(cfg.Upstream.Timeout),
	}
	var serverOpts []server.Option

	if cfg.Metrics.Enabled {
		m := metrics.New(Version)
		clientOpts = append(clientOpts, zoomapi.WithTransport(&metrics.Transport{Metrics: m, Base: http.DefaultTransport}))
		serverOpts = append(serverOpts, server.WithMetrics(m))
	}

	client, err := zoomapi.New(tokens, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create API client: %w", err)
	}

	mcpServer, err := server.New(client, Version, serverOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create MCP server: %w", err)
	}

	return &App{
		cfg:    cfg,
		server: mcpServer,
	}, nil
}

// NewTokenManager builds the token manager described by cfg. No I/O is performed.
func NewTokenManager(cfg *Config) (*tokensource.Manager, error) {
	store, err := cfg.Credentials.NewStore()
	if err != nil {
		return nil, fmt.Errorf("failed to create credentials store: %w", err)
	}

	return tokensource.NewManager(store,
		tokensource.WithTokenURL(cfg.Upstream.TokenURL),
		tokensource.WithHTTPClient(&http.Client{Timeout: cfg.Upstream.Timeout}),
	), nil
}

// Start starts all services and blocks until shutdown is triggered.
// Uses errgroup for runtime error monitoring and shutdown function collection for coordinated cleanup.
func (a *App) Start(ctx context.Context) error {
	g, gCtx := errgroup.WithContext(ctx)

	transport := a.cfg.Server.Transport
	address := a.cfg.Server.Host + ":" + strconv.FormatUint(uint64(a.cfg.Server.Port), 10)
	var shutdownFuncs []func(context.Context) error

	// Startup phase: Start services
	slog.InfoContext(gCtx, "starting MCP server", "transport", string(transport))
	serverErrCh, err := a.server.Start(gCtx, transport, address)
	if err != nil {
		return fmt.Errorf("server startup failed: %w", err)
	}
	shutdownFuncs = append(shutdownFuncs, a.server.Shutdown)

	// Monitor runtime errors - errgroup cancels context on first error
	g.Go(func() error {
		select {
		case err, ok := <-serverErrCh:
			if err != nil {
				slog.ErrorContext(gCtx, "server runtime error", "error", err)
				return fmt.Errorf("server: %w", err)
			}
			if !ok && transport == server.TransportStdio {
				// client closed stdin
				return errStdioClosed
			}
			return nil
		case <-gCtx.Done():
			return nil
		}
	})

	slog.InfoContext(gCtx, "application ready", "transport", string(transport))

	runtimeErr := g.Wait()
	if errors.Is(runtimeErr, errStdioClosed) {
		runtimeErr = nil
	}

	slog.InfoContext(gCtx, "shutting down services")

	// Shutdown phase: Stop all services
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.Shutdown.Timeout)
	defer cancel()

	var errs []error
	if runtimeErr != nil {
		errs = append(errs, fmt.Errorf("runtime: %w", runtimeErr))
	}

	for i := len(shutdownFuncs) - 1; i >= 0; i-- {
		if err := shutdownFuncs[i](shutdownCtx); err != nil {
			slog.ErrorContext(shutdownCtx, "service shutdown failed", "error", err)
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	slog.Info("application stopped")
	return nil
}

var errStdioClosed = errors.New("stdio session closed")
