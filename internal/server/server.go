// Package server exposes the Zoom tool catalog and documentation resources
// over the Model Context Protocol.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/florianilch/zoom-mcp/internal/catalog"
	"github.com/florianilch/zoom-mcp/internal/docs"
	"github.com/florianilch/zoom-mcp/internal/metrics"
)

// Name is the MCP implementation name announced to clients.
const Name = "zoom-api"

// Transport selects how MCP messages reach the server.
type Transport string

const (
	TransportStdio Transport = "stdio"
	TransportHTTP  Transport = "http"
	TransportSSE   Transport = "sse"
)

// Endpoint paths of the network transports.
const (
	HTTPPath    = "/mcp"
	SSEPath     = "/sse"
	MetricsPath = "/metrics"
)

// Option configures a Server.
type Option func(*Server)

// WithMetrics records tool calls and serves them on MetricsPath next to the
// network transports.
func WithMetrics(m metrics.Metrics) Option {
	return func(s *Server) {
		s.metrics = m
	}
}

// Server hosts one MCP server instance.
type Server struct {
	mcp        *mcp.Server
	metrics    metrics.Metrics
	httpServer *http.Server
}

// New registers every catalog tool and the documentation template. Tool calls
// are executed with doer.
func New(doer catalog.Doer, version string, opts ...Option) (*Server, error) {
	if doer == nil {
		return nil, errors.New("missing API client")
	}

	srv := &Server{}
	for _, opt := range opts {
		opt(srv)
	}

	tools, err := catalog.CompileAll()
	if err != nil {
		return nil, err
	}

	s := mcp.NewServer(&mcp.Implementation{
		Name:    Name,
		Version: version,
	}, nil)

	for _, tool := range tools {
		s.AddTool(tool.MCPTool(), srv.instrument(tool.Name, tool.Handler(doer)))
	}
	s.AddResourceTemplate(docs.ResourceTemplate(), docs.Handler)

	slog.Debug("registered MCP capabilities", "tools", len(tools), "resource_template", docs.URITemplate)

	srv.mcp = s
	return srv, nil
}

// instrument records the duration and outcome of each call when metrics are enabled.
func (s *Server) instrument(name string, next mcp.ToolHandler) mcp.ToolHandler {
	if s.metrics == nil {
		return next
	}
	return func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start := time.Now()
		result, err := next(ctx, req)

		outcome := metrics.OutcomeSuccess
		if err != nil || result == nil || result.IsError {
			outcome = metrics.OutcomeError
		}
		s.metrics.ObserveToolCall(name, outcome, time.Since(start).Seconds())
		return result, err
	}
}

// MCP returns the underlying MCP server.
func (s *Server) MCP() *mcp.Server {
	return s.mcp
}

// Handler returns the HTTP handler for a network transport, wrapped in request
// logging and panic recovery.
func (s *Server) Handler(transport Transport) (http.Handler, error) {
	getServer := func(*http.Request) *mcp.Server { return s.mcp }

	var (
		pattern string
		handler http.Handler
	)
	switch transport {
	case TransportHTTP:
		pattern, handler = HTTPPath, mcp.NewStreamableHTTPHandler(getServer, nil)
	case TransportSSE:
		pattern, handler = SSEPath, mcp.NewSSEHandler(getServer, nil)
	default:
		return nil, fmt.Errorf("transport %q is not served over HTTP", transport)
	}

	mux := http.NewServeMux()
	mux.Handle(pattern, applyMiddlewares(handler,
		Logging(slog.Default()),
		Recovery,
	))
	if s.metrics != nil {
		mux.Handle("GET "+MetricsPath, s.metrics.Handler())
	}
	return mux, nil
}

// Start begins serving in the background and returns immediately.
//
// Startup errors (unknown transport, port in use) are returned directly.
// Errors while serving are sent to the returned channel, which is closed when
// serving stops. Stdio serving stops when ctx is cancelled or the client
// disconnects; network transports stop on Shutdown.
func (s *Server) Start(ctx context.Context, transport Transport, address string) (<-chan error, error) {
	errCh := make(chan error, 1)

	if transport == TransportStdio {
		slog.InfoContext(ctx, "serving MCP over stdio")
		go func() {
			if err := s.mcp.Run(ctx, &mcp.StdioTransport{}); err != nil && !errors.Is(err, context.Canceled) {
				errCh <- fmt.Errorf("stdio server failed: %w", err)
			}
			close(errCh)
		}()
		return errCh, nil
	}

	handler, err := s.Handler(transport)
	if err != nil {
		return nil, err
	}

	// Listen synchronously so port conflicts surface immediately.
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return nil, fmt.Errorf("failed to listen on %s: %w", address, err)
	}

	s.httpServer = &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 30 * time.Second,
		IdleTimeout:       90 * time.Second, // SSE streams are long-lived, so no WriteTimeout
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	path := HTTPPath
	if transport == TransportSSE {
		path = SSEPath
	}
	slog.InfoContext(ctx, "serving MCP over HTTP",
		"transport", string(transport),
		"url", "http://"+listener.Addr().String()+path,
	)

	go func() {
		err := s.httpServer.Serve(listener)
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	return errCh, nil
}

// Shutdown gracefully stops a network transport. It is a no-op for stdio.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}

	if err := s.httpServer.Shutdown(ctx); err != nil {
		_ = s.httpServer.Close()
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}
