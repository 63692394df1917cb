package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/florianilch/zoom-mcp/internal/zoomapi"
)

// fakeDoer records requests and returns a canned result.
type fakeDoer struct {
	result   zoomapi.Result
	requests []zoomapi.Request
}

func (d *fakeDoer) Do(_ context.Context, req zoomapi.Request) zoomapi.Result {
	d.requests = append(d.requests, req)
	return d.result
}

func compile(t *testing.T, name string) *Compiled {
	t.Helper()
	c, err := Compile(findTool(t, name))
	require.NoError(t, err)
	return c
}

func textOf(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.Len(t, result.Content, 1)
	text, ok := result.Content[0].(*mcp.TextContent)
	require.True(t, ok)
	return text.Text
}

func TestCompileAll(t *testing.T) {
	compiled, err := CompileAll()
	require.NoError(t, err)
	require.Len(t, compiled, len(All()))

	for _, c := range compiled {
		tool := c.MCPTool()
		assert.Equal(t, c.Name, tool.Name)
		assert.NotNil(t, tool.InputSchema)
	}
}

func TestSchema_RequiredAndConstraints(t *testing.T) {
	schema := findTool(t, "create_meeting").Schema()

	assert.Equal(t, "object", schema.Type)
	assert.ElementsMatch(t, []string{"user_id", "topic", "type"}, schema.Required)

	typ := schema.Properties["type"]
	require.NotNil(t, typ)
	assert.Equal(t, "number", typ.Type)
	require.NotNil(t, typ.Minimum)
	require.NotNil(t, typ.Maximum)
	assert.InDelta(t, 1, *typ.Minimum, 0)
	assert.InDelta(t, 8, *typ.Maximum, 0)
}

func TestSchema_NestedObjects(t *testing.T) {
	schema := findTool(t, "invite_people").Schema()

	questions := schema.Properties["custom_questions"]
	require.NotNil(t, questions)
	assert.Equal(t, "array", questions.Type)
	require.NotNil(t, questions.Items)
	assert.Equal(t, "object", questions.Items.Type)
	assert.ElementsMatch(t, []string{"title", "value"}, questions.Items.Required)
}

func TestCall_Success(t *testing.T) {
	doer := &fakeDoer{result: zoomapi.Result{StatusCode: http.StatusOK, Body: json.RawMessage(`{"id":123,"topic":"T"}`)}}

	result := compile(t, "get_meeting").Call(context.Background(), doer, json.RawMessage(`{"meeting_id":"123"}`))

	assert.False(t, result.IsError)
	assert.Equal(t, "{\n  \"id\": 123,\n  \"topic\": \"T\"\n}", textOf(t, result))
	require.Len(t, doer.requests, 1)
	assert.Equal(t, "/meetings/123", doer.requests[0].Path)
}

func TestCall_NotFound(t *testing.T) {
	doer := &fakeDoer{result: zoomapi.Result{
		StatusCode: http.StatusNotFound,
		Err:        &zoomapi.APIError{StatusCode: http.StatusNotFound, Code: 3001, Message: "Not found"},
	}}

	result := compile(t, "get_meeting").Call(context.Background(), doer, json.RawMessage(`{"meeting_id":"999"}`))

	assert.True(t, result.IsError)
	assert.Equal(t, "Error: Not found", textOf(t, result))
}

func TestCall_TransportError(t *testing.T) {
	doer := &fakeDoer{result: zoomapi.Result{Err: errors.New("connection refused")}}

	result := compile(t, "list_users").Call(context.Background(), doer, nil)

	assert.True(t, result.IsError)
	assert.Equal(t, "Error: connection refused", textOf(t, result))
}

func TestCall_DeleteConfirmation(t *testing.T) {
	doer := &fakeDoer{result: zoomapi.Result{StatusCode: http.StatusNoContent}}

	result := compile(t, "delete_meeting").Call(context.Background(), doer, json.RawMessage(`{"meeting_id":"123"}`))

	assert.False(t, result.IsError)
	assert.Equal(t, "Meeting deleted successfully", textOf(t, result))
}

func TestCall_DeleteFailureIsNotConfirmed(t *testing.T) {
	doer := &fakeDoer{result: zoomapi.Result{
		StatusCode: http.StatusNotFound,
		Err:        &zoomapi.APIError{StatusCode: http.StatusNotFound, Message: "Meeting does not exist"},
	}}

	result := compile(t, "delete_meeting").Call(context.Background(), doer, json.RawMessage(`{"meeting_id":"123"}`))

	assert.True(t, result.IsError)
	assert.Equal(t, "Error: Meeting does not exist", textOf(t, result))
}

func TestCall_NullArgumentsAreEmpty(t *testing.T) {
	doer := &fakeDoer{result: zoomapi.Result{StatusCode: http.StatusOK, Body: json.RawMessage(`{}`)}}

	result := compile(t, "get_account_profile").Call(context.Background(), doer, json.RawMessage(`null`))

	assert.False(t, result.IsError)
	require.Len(t, doer.requests, 1)
	assert.Equal(t, "/accounts/me", doer.requests[0].Path)
}

func TestCall_RejectsInvalidArguments(t *testing.T) {
	tests := []struct {
		name string
		tool string
		args string
	}{
		{name: "missing required", tool: "create_meeting", args: `{"user_id":"me","type":2}`},
		{name: "missing path param", tool: "get_meeting", args: `{}`},
		{name: "wrong type", tool: "get_meeting", args: `{"meeting_id":true}`},
		{name: "out of range", tool: "create_meeting", args: `{"user_id":"me","topic":"T","type":9}`},
		{name: "page size too large", tool: "list_users", args: `{"page_size":301}`},
		{name: "enum", tool: "list_users", args: `{"status":"deleted"}`},
		{name: "month", tool: "get_daily_report", args: `{"year":2024,"month":13}`},
		{name: "email format", tool: "invite_people", args: `{"meeting_id":"1","first_name":"A","last_name":"B","email":"not-an-email"}`},
		{name: "nested email format", tool: "create_channel", args: `{"name":"c","type":1,"members":[{"email":"x"}]}`},
		{name: "url format", tool: "create_webhook", args: `{"url":"nope","event_types":["meeting.started"]}`},
		{name: "nested required", tool: "create_user", args: `{"action":"create","user_info":{"type":1}}`},
		{name: "malformed json", tool: "list_users", args: `{`},
		{name: "not an object", tool: "list_users", args: `[1]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doer := &fakeDoer{}

			result := compile(t, tt.tool).Call(context.Background(), doer, json.RawMessage(tt.args))

			assert.True(t, result.IsError)
			assert.Contains(t, textOf(t, result), "Error: invalid arguments")
			assert.Empty(t, doer.requests, "no request may be sent for invalid arguments")
		})
	}
}

func TestCall_AcceptsValidFormats(t *testing.T) {
	doer := &fakeDoer{result: zoomapi.Result{StatusCode: http.StatusCreated, Body: json.RawMessage(`{"registrant_id":"r1"}`)}}

	args := `{"meeting_id":"1","first_name":"A","last_name":"B","email":"a@example.com",` +
		`"custom_questions":[{"title":"Team","value":"Platform"}]}`
	result := compile(t, "invite_people").Call(context.Background(), doer, json.RawMessage(args))

	assert.False(t, result.IsError, textOf(t, result))
	require.Len(t, doer.requests, 1)
	assert.Equal(t, "/meetings/1/registrants", doer.requests[0].Path)
	body, ok := doer.requests[0].Body.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "a@example.com", body["email"])
	assert.NotContains(t, body, "meeting_id")
}

func TestHandler_NeverReturnsError(t *testing.T) {
	doer := &fakeDoer{result: zoomapi.Result{Err: errors.New("boom")}}
	handler := compile(t, "list_users").Handler(doer)

	result, err := handler(context.Background(), &mcp.CallToolRequest{Params: &mcp.CallToolParamsRaw{Arguments: json.RawMessage(`{}`)}})

	require.NoError(t, err)
	assert.True(t, result.IsError)
}
