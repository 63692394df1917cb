package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/florianilch/zoom-mcp/internal/catalog"
	"github.com/florianilch/zoom-mcp/internal/metrics"
	"github.com/florianilch/zoom-mcp/internal/zoomapi"
)

type staticToken string

func (s staticToken) ValidToken(context.Context) (string, error) { return string(s), nil }

// fakeZoom serves a minimal Zoom API: meeting 123 exists, everything else is 404.
func fakeZoom(t *testing.T, hits *atomic.Int32) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		if r.Header.Get("Authorization") != "Bearer cached-token" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = io.WriteString(w, `{"code":124,"message":"Invalid access token."}`)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/v2/meetings/123":
			_, _ = io.WriteString(w, `{"id":123,"topic":"Weekly sync"}`)
		case r.Method == http.MethodDelete && r.URL.Path == "/v2/meetings/123":
			w.WriteHeader(http.StatusNoContent)
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = io.WriteString(w, `{"code":3001,"message":"Not found"}`)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func connect(t *testing.T, doer catalog.Doer) *mcp.ClientSession {
	t.Helper()
	ctx := context.Background()

	s, err := New(doer, "test")
	require.NoError(t, err)

	serverTransport, clientTransport := mcp.NewInMemoryTransports()
	serverSession, err := s.MCP().Connect(ctx, serverTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = serverSession.Close() })

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "v0.0.1"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = session.Close() })

	return session
}

func newClient(t *testing.T, baseURL string) *zoomapi.Client {
	t.Helper()
	c, err := zoomapi.New(staticToken("cached-token"), zoomapi.WithBaseURL(baseURL+"/v2"))
	require.NoError(t, err)
	return c
}

func callText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.Len(t, res.Content, 1)
	text, ok := res.Content[0].(*mcp.TextContent)
	require.True(t, ok)
	return text.Text
}

func TestNew_RequiresDoer(t *testing.T) {
	_, err := New(nil, "test")
	assert.Error(t, err)
}

func TestListTools(t *testing.T) {
	var hits atomic.Int32
	session := connect(t, newClient(t, fakeZoom(t, &hits).URL))

	res, err := session.ListTools(context.Background(), nil)
	require.NoError(t, err)

	names := make([]string, 0, len(res.Tools))
	for _, tool := range res.Tools {
		names = append(names, tool.Name)
	}
	assert.Len(t, names, len(catalog.All()))
	assert.Contains(t, names, "get_meeting")
	assert.Contains(t, names, "create_zoom_room_location")
	assert.Zero(t, hits.Load())
}

func TestCallTool_GetMeeting(t *testing.T) {
	var hits atomic.Int32
	session := connect(t, newClient(t, fakeZoom(t, &hits).URL))

	res, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "get_meeting",
		Arguments: map[string]any{"meeting_id": "123"},
	})
	require.NoError(t, err)

	assert.False(t, res.IsError)
	assert.Equal(t, "{\n  \"id\": 123,\n  \"topic\": \"Weekly sync\"\n}", callText(t, res))
	assert.EqualValues(t, 1, hits.Load())
}

func TestCallTool_GetMeetingNotFound(t *testing.T) {
	var hits atomic.Int32
	session := connect(t, newClient(t, fakeZoom(t, &hits).URL))

	res, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "get_meeting",
		Arguments: map[string]any{"meeting_id": "999"},
	})
	require.NoError(t, err)

	assert.True(t, res.IsError)
	assert.Equal(t, "Error: Not found", callText(t, res))
}

func TestCallTool_DeleteConfirms(t *testing.T) {
	var hits atomic.Int32
	session := connect(t, newClient(t, fakeZoom(t, &hits).URL))

	res, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "delete_meeting",
		Arguments: map[string]any{"meeting_id": "123"},
	})
	require.NoError(t, err)

	assert.False(t, res.IsError)
	assert.Equal(t, "Meeting deleted successfully", callText(t, res))
}

func TestCallTool_InvalidArgumentsStayInBand(t *testing.T) {
	var hits atomic.Int32
	session := connect(t, newClient(t, fakeZoom(t, &hits).URL))

	res, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "get_daily_report",
		Arguments: map[string]any{"year": 2024, "month": 13},
	})
	require.NoError(t, err)

	assert.True(t, res.IsError)
	assert.True(t, strings.HasPrefix(callText(t, res), "Error: "))
	assert.Zero(t, hits.Load())
}

func TestReadResource(t *testing.T) {
	var hits atomic.Int32
	session := connect(t, newClient(t, fakeZoom(t, &hits).URL))

	res, err := session.ReadResource(context.Background(), &mcp.ReadResourceParams{URI: "zoom-api://webhooks"})
	require.NoError(t, err)
	require.Len(t, res.Contents, 1)
	assert.Contains(t, res.Contents[0].Text, "# Zoom Webhooks API")

	res, err = session.ReadResource(context.Background(), &mcp.ReadResourceParams{URI: "zoom-api://unknown"})
	require.NoError(t, err)
	require.Len(t, res.Contents, 1)
	assert.Contains(t, res.Contents[0].Text, "Available categories:")
}

func TestStart_HTTP(t *testing.T) {
	var hits atomic.Int32
	s, err := New(newClient(t, fakeZoom(t, &hits).URL), "test")
	require.NoError(t, err)

	errCh, err := s.Start(context.Background(), TransportHTTP, "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, s.Shutdown(ctx))

	for err := range errCh {
		t.Fatalf("unexpected serve error: %v", err)
	}
}

func TestStart_PortInUse(t *testing.T) {
	occupied := httptest.NewServer(http.NotFoundHandler())
	defer occupied.Close()

	s, err := New(staticDoer{}, "test")
	require.NoError(t, err)

	_, err = s.Start(context.Background(), TransportHTTP, strings.TrimPrefix(occupied.URL, "http://"))
	assert.Error(t, err)
}

func TestHandler_UnknownTransport(t *testing.T) {
	s, err := New(staticDoer{}, "test")
	require.NoError(t, err)

	_, err = s.Handler(TransportStdio)
	assert.Error(t, err)
}

func TestHandler_StreamableHTTP(t *testing.T) {
	var hits atomic.Int32
	s, err := New(newClient(t, fakeZoom(t, &hits).URL), "test")
	require.NoError(t, err)

	handler, err := s.Handler(TransportHTTP)
	require.NoError(t, err)
	httpServer := httptest.NewServer(handler)
	defer httpServer.Close()

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "v0.0.1"}, nil)
	session, err := client.Connect(context.Background(), &mcp.StreamableClientTransport{Endpoint: httpServer.URL + HTTPPath}, nil)
	require.NoError(t, err)
	defer func() { _ = session.Close() }()

	res, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "get_meeting",
		Arguments: map[string]any{"meeting_id": "123"},
	})
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal([]byte(callText(t, res)), &body))
	assert.Equal(t, "Weekly sync", body["topic"])
}

func TestRecovery(t *testing.T) {
	handler := Recovery(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, HTTPPath, nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

type staticDoer struct{}

func (staticDoer) Do(context.Context, zoomapi.Request) zoomapi.Result {
	return zoomapi.Result{StatusCode: http.StatusOK, Body: json.RawMessage(`{}`)}
}

func TestHandler_Metrics(t *testing.T) {
	m := metrics.New("test")
	s, err := New(staticDoer{}, "test", WithMetrics(m))
	require.NoError(t, err)

	handler, err := s.Handler(TransportHTTP)
	require.NoError(t, err)
	httpServer := httptest.NewServer(handler)
	defer httpServer.Close()

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "v0.0.1"}, nil)
	session, err := client.Connect(context.Background(), &mcp.StreamableClientTransport{Endpoint: httpServer.URL + HTTPPath}, nil)
	require.NoError(t, err)
	defer func() { _ = session.Close() }()

	_, err = session.CallTool(context.Background(), &mcp.CallToolParams{Name: "list_users", Arguments: map[string]any{}})
	require.NoError(t, err)
	_, err = session.CallTool(context.Background(), &mcp.CallToolParams{Name: "get_meeting", Arguments: map[string]any{}})
	require.NoError(t, err)

	resp, err := http.Get(httpServer.URL + MetricsPath)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Contains(t, string(body), `zoom_mcp_tools_calls_total{outcome="success",tool="list_users"} 1`)
	assert.Contains(t, string(body), `zoom_mcp_tools_calls_total{outcome="error",tool="get_meeting"} 1`)
}
