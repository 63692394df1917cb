package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/florianilch/zoom-mcp/internal/toolresult"
	"github.com/florianilch/zoom-mcp/internal/zoomapi"
)

// Doer executes a request against the Zoom API.
type Doer interface {
	Do(ctx context.Context, req zoomapi.Request) zoomapi.Result
}

// Compiled is a Tool with its argument schema resolved for validation.
type Compiled struct {
	Tool
	schema   *jsonschema.Schema
	resolved *jsonschema.Resolved
	validate *validator.Validate
}

// Compile resolves the tool's schema once so calls only validate.
func Compile(t Tool) (*Compiled, error) {
	schema := t.Schema()
	resolved, err := schema.Resolve(nil)
	if err != nil {
		return nil, fmt.Errorf("resolving schema for %s: %w", t.Name, err)
	}
	return &Compiled{
		Tool:     t,
		schema:   schema,
		resolved: resolved,
		validate: validator.New(),
	}, nil
}

// MCPTool returns the MCP declaration of the tool.
func (c *Compiled) MCPTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        c.Name,
		Description: c.Description,
		InputSchema: c.schema,
	}
}

// Validate decodes raw arguments and checks them against the schema and formats.
func (c *Compiled) Validate(raw json.RawMessage) (map[string]any, error) {
	args := map[string]any{}
	if trimmed := bytes.TrimSpace(raw); len(trimmed) > 0 && !bytes.Equal(trimmed, []byte("null")) {
		if err := json.Unmarshal(trimmed, &args); err != nil {
			return nil, fmt.Errorf("invalid arguments: %w", err)
		}
	}

	if err := c.resolved.Validate(args); err != nil {
		return nil, fmt.Errorf("invalid arguments: %w", err)
	}
	if err := checkFormats(c.validate, c.Params, args, ""); err != nil {
		return nil, fmt.Errorf("invalid arguments: %w", err)
	}
	return args, nil
}

// Call validates the arguments, performs the request and normalizes the outcome.
// Every failure is reported in the result, never returned.
func (c *Compiled) Call(ctx context.Context, doer Doer, raw json.RawMessage) *mcp.CallToolResult {
	args, err := c.Validate(raw)
	if err != nil {
		slog.DebugContext(ctx, "rejected tool arguments", "tool", c.Name, "error", err)
		return toolresult.Failure(err)
	}

	req, err := c.Request(args)
	if err != nil {
		return toolresult.Failure(err)
	}

	result := doer.Do(ctx, req)
	if result.OK() && c.Confirmation != "" {
		return toolresult.Text(c.Confirmation)
	}
	return toolresult.FromResult(result)
}

// Handler adapts Call to the MCP server's tool handler signature.
func (c *Compiled) Handler(doer Doer) mcp.ToolHandler {
	return func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		slog.DebugContext(ctx, "handling tool call", "tool", c.Name)
		return c.Call(ctx, doer, req.Params.Arguments), nil
	}
}

// CompileAll compiles every tool in All.
func CompileAll() ([]*Compiled, error) {
	tools := All()
	compiled := make([]*Compiled, 0, len(tools))
	for _, t := range tools {
		c, err := Compile(t)
		if err != nil {
			return nil, err
		}
		compiled = append(compiled, c)
	}
	return compiled, nil
}
