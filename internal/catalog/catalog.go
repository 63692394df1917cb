// Package catalog declares every Zoom tool as static data and dispatches calls
// through one generic routine.
//
// A Tool names an endpoint template, an HTTP verb and its parameters. Each
// Param says where its value goes (path, query, body) and is only sent when
// the caller supplied it. Request shaping is a pure function of the validated
// arguments.
package catalog

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/florianilch/zoom-mcp/internal/zoomapi"
)

// Location is where a parameter's value is placed in the outbound request.
type Location int

const (
	// InBody places the value under its name in the JSON body.
	InBody Location = iota
	// InPath substitutes the value for {name} in the path template.
	InPath
	// InQuery adds the value to the query string.
	InQuery
	// InBodyRoot sends the value itself as the JSON body.
	InBodyRoot
)

// Param declares one tool argument.
type Param struct {
	Name        string
	Description string
	// Type is a JSON Schema type: string, number, boolean, object or array.
	Type     string
	In       Location
	Required bool
	Enum     []string
	Min      *float64
	Max      *float64
	// Format is checked beyond the schema: "email" or "url".
	Format string
	// Properties declares the fields of an object parameter. Objects without
	// properties accept any fields.
	Properties []Param
	// Items declares the element of an array parameter.
	Items *Param
}

// Tool maps an MCP tool name onto one Zoom API endpoint.
type Tool struct {
	Name        string
	Description string
	Method      string
	// Path is relative to the API base URL, with {name} placeholders for path params.
	Path   string
	Params []Param
	// Confirmation replaces the response body on success when set.
	// Used by delete tools whose responses are empty.
	Confirmation string
}

// All returns every tool in registration order.
func All() []Tool {
	groups := [][]Tool{
		meetingTools,
		userTools,
		webinarTools,
		accountTools,
		chatTools,
		phoneTools,
		contactTools,
		recordingTools,
		reportTools,
		webhookTools,
		roomTools,
	}

	var tools []Tool
	for _, group := range groups {
		tools = append(tools, group...)
	}
	return tools
}

// Request builds the outbound request from validated arguments. Arguments that
// are absent or null are left out; undeclared arguments are ignored.
func (t Tool) Request(args map[string]any) (zoomapi.Request, error) {
	req := zoomapi.Request{Method: t.Method}
	endpoint := t.Path

	var (
		query    url.Values
		body     map[string]any
		rootBody any
	)

	for _, p := range t.Params {
		value, ok := args[p.Name]
		if !ok || value == nil {
			if p.In == InPath {
				return zoomapi.Request{}, fmt.Errorf("missing path parameter %q", p.Name)
			}
			continue
		}

		switch p.In {
		case InPath:
			s, err := scalarString(value)
			if err != nil {
				return zoomapi.Request{}, fmt.Errorf("path parameter %q: %w", p.Name, err)
			}
			if s == "" {
				return zoomapi.Request{}, fmt.Errorf("path parameter %q is empty", p.Name)
			}
			endpoint = strings.ReplaceAll(endpoint, "{"+p.Name+"}", url.PathEscape(s))
		case InQuery:
			s, err := scalarString(value)
			if err != nil {
				return zoomapi.Request{}, fmt.Errorf("query parameter %q: %w", p.Name, err)
			}
			if query == nil {
				query = url.Values{}
			}
			query.Set(p.Name, s)
		case InBody:
			if body == nil {
				body = map[string]any{}
			}
			body[p.Name] = value
		case InBodyRoot:
			rootBody = value
		}
	}

	req.Path = endpoint
	req.Query = query

	switch {
	case rootBody != nil:
		req.Body = rootBody
	case t.Method == http.MethodPost || t.Method == http.MethodPatch || t.Method == http.MethodPut:
		if body == nil {
			body = map[string]any{}
		}
		req.Body = body
	case body != nil:
		req.Body = body
	}

	return req, nil
}

// scalarString renders a decoded JSON scalar the way it appears in a URL.
func scalarString(v any) (string, error) {
	switch v := v.(type) {
	case string:
		return v, nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case bool:
		return strconv.FormatBool(v), nil
	case json.Number:
		return v.String(), nil
	default:
		return "", fmt.Errorf("expected a scalar, got %T", v)
	}
}
