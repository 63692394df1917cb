// Package docs serves static Zoom API reference text as the MCP resource
// template zoom-api://{category}.
package docs

import (
	"context"
	"embed"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Scheme is the URI scheme of documentation resources.
const Scheme = "zoom-api"

// URITemplate addresses one documentation category.
const URITemplate = Scheme + "://{category}"

// MIMEType of every documentation page.
const MIMEType = "text/markdown"

//go:embed content/*.md
var content embed.FS

// Categories lists the documented categories in index order.
var Categories = []string{
	"overview",
	"meetings",
	"users",
	"webinars",
	"account",
	"chat",
	"phone",
	"recordings",
	"webhooks",
}

// Lookup returns the page for category, matched case-insensitively. Unknown
// categories yield the Index and false.
func Lookup(category string) (string, bool) {
	key := strings.ToLower(strings.TrimSpace(category))
	for _, c := range Categories {
		if c != key {
			continue
		}
		data, err := content.ReadFile("content/" + c + ".md")
		if err != nil {
			break
		}
		return strings.TrimRight(string(data), "\n"), true
	}
	return Index(), false
}

// Index lists every category and how to address it.
func Index() string {
	var b strings.Builder
	b.WriteString("# Zoom API Documentation\n\nAvailable categories:\n")
	for _, c := range Categories {
		b.WriteString("- " + c + "\n")
	}
	b.WriteString("\nAccess documentation by using: " + URITemplate)
	return b.String()
}

// CategoryFromURI extracts the category from a zoom-api:// URI. Query strings
// and fragments are ignored.
func CategoryFromURI(uri string) string {
	category := strings.TrimPrefix(uri, Scheme+"://")
	if i := strings.IndexAny(category, "?#"); i >= 0 {
		category = category[:i]
	}
	return strings.Trim(category, "/")
}

// ResourceTemplate declares the documentation template.
func ResourceTemplate() *mcp.ResourceTemplate {
	return &mcp.ResourceTemplate{
		Name:        "api_docs",
		Description: "Reference for a Zoom API category. Unknown categories list the available ones.",
		URITemplate: URITemplate,
		MIMEType:    MIMEType,
	}
}

// Handler reads a documentation resource. It never fails: unknown categories
// resolve to the index.
func Handler(_ context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	text, _ := Lookup(CategoryFromURI(req.Params.URI))
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{
			{URI: req.Params.URI, MIMEType: MIMEType, Text: text},
		},
	}, nil
}
