// Package toolresult converts Zoom API outcomes into MCP tool results.
//
// Every tool returns exactly one text content item. Failures are reported
// in-band with IsError set, never as protocol errors.
package toolresult

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/url"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/florianilch/zoom-mcp/internal/zoomapi"
)

// serverMessager is implemented by errors carrying a message from the remote side.
type serverMessager interface {
	ServerMessage() string
}

// FromResult routes a gateway result to Success or Failure.
func FromResult(r zoomapi.Result) *mcp.CallToolResult {
	if r.Err != nil {
		return Failure(r.Err)
	}
	return Success(r.Body)
}

// Success renders a response payload as pretty-printed JSON text.
func Success(body json.RawMessage) *mcp.CallToolResult {
	return Text(prettyJSON(body))
}

// Failure renders err as "Error: <message>" with IsError set.
func Failure(err error) *mcp.CallToolResult {
	result := Text("Error: " + ErrorMessage(err))
	result.IsError = true
	return result
}

// Text wraps a fixed message in a successful result.
func Text(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: text},
		},
	}
}

// ErrorMessage prefers a server-supplied message and falls back to the error
// text. Client-side URL wrapping ("Get \"https://...\": ...") is dropped.
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}

	var sm serverMessager
	if errors.As(err, &sm) {
		if msg := sm.ServerMessage(); msg != "" {
			return msg
		}
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Err != nil {
		return urlErr.Err.Error()
	}

	return err.Error()
}

// prettyJSON indents JSON bodies with two spaces. An empty body renders as ""
// and a non-JSON body as a JSON string.
func prettyJSON(body []byte) string {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && json.Valid(trimmed) {
		var buf bytes.Buffer
		if err := json.Indent(&buf, trimmed, "", "  "); err == nil {
			return buf.String()
		}
	}

	quoted, _ := json.Marshal(string(body))
	return string(quoted)
}
