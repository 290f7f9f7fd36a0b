package mcpserver

import (
	"context"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/calder/jot/internal/testutil"
)

func testServer(t *testing.T) *Server {
	t.Helper()
	return New(testutil.TestService(t))
}

func callTool(t *testing.T, srv *Server, name string, args map[string]any) *mcp.CallToolResult {
	t.Helper()
	ctx := context.Background()
	req := mcp.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args

	// mcp-go has no direct "call tool" test helper, so the handlers are
	// invoked directly.
	var result *mcp.CallToolResult
	var err error
	switch name {
	case "list_notes":
		result, err = srv.listNotes(ctx, req)
	case "get_note":
		result, err = srv.getNote(ctx, req)
	case "create_note":
		result, err = srv.createNote(ctx, req)
	case "update_note":
		result, err = srv.updateNote(ctx, req)
	case "delete_note":
		result, err = srv.deleteNote(ctx, req)
	default:
		t.Fatalf("unknown tool: %s", name)
	}
	if err != nil {
		t.Fatalf("tool %s error: %v", name, err)
	}
	return result
}

func resultText(r *mcp.CallToolResult) string {
	if len(r.Content) > 0 {
		if tc, ok := r.Content[0].(mcp.TextContent); ok {
			return tc.Text
		}
	}
	return ""
}

func TestCreateAndGetNoteTools(t *testing.T) {
	srv := testServer(t)

	res := callTool(t, srv, "create_note", map[string]any{"title": "Hello", "content": "World"})
	if res.IsError {
		t.Fatalf("create_note failed: %s", resultText(res))
	}
	if !strings.Contains(resultText(res), `"title": "Hello"`) {
		t.Errorf("create_note result = %s", resultText(res))
	}

	res = callTool(t, srv, "get_note", map[string]any{"id": 1})
	if res.IsError {
		t.Fatalf("get_note failed: %s", resultText(res))
	}
	if !strings.Contains(resultText(res), `"content": "World"`) {
		t.Errorf("get_note result = %s", resultText(res))
	}
}

func TestGetNoteToolAbsent(t *testing.T) {
	srv := testServer(t)

	res := callTool(t, srv, "get_note", map[string]any{"id": 42})
	if !res.IsError {
		t.Errorf("get_note on absent id should be a tool error")
	}
}

func TestListNotesToolWithKeyword(t *testing.T) {
	srv := testServer(t)

	callTool(t, srv, "create_note", map[string]any{"title": "apple", "content": "crisp"})
	callTool(t, srv, "create_note", map[string]any{"title": "cherry", "content": "tart"})

	res := callTool(t, srv, "list_notes", map[string]any{"keyword": "apple"})
	if res.IsError {
		t.Fatalf("list_notes failed: %s", resultText(res))
	}
	text := resultText(res)
	if !strings.Contains(text, "apple") || strings.Contains(text, "cherry") {
		t.Errorf("list_notes result = %s", text)
	}
}

func TestUpdateNoteTool(t *testing.T) {
	srv := testServer(t)

	callTool(t, srv, "create_note", map[string]any{"title": "v1", "content": "c1"})

	res := callTool(t, srv, "update_note", map[string]any{"id": 1, "title": "v2", "content": "c2"})
	if res.IsError {
		t.Fatalf("update_note failed: %s", resultText(res))
	}
	if !strings.Contains(resultText(res), `"title": "v2"`) {
		t.Errorf("update_note result = %s", resultText(res))
	}

	res = callTool(t, srv, "update_note", map[string]any{"id": 42, "title": "x", "content": "y"})
	if !res.IsError {
		t.Errorf("update_note on absent id should be a tool error")
	}
}

func TestDeleteNoteTool(t *testing.T) {
	srv := testServer(t)

	callTool(t, srv, "create_note", map[string]any{"title": "bye", "content": "now"})

	res := callTool(t, srv, "delete_note", map[string]any{"id": 1})
	if res.IsError {
		t.Fatalf("delete_note failed: %s", resultText(res))
	}

	res = callTool(t, srv, "delete_note", map[string]any{"id": 1})
	if !res.IsError {
		t.Errorf("second delete_note should be a tool error")
	}
}

func TestMissingRequiredArgument(t *testing.T) {
	srv := testServer(t)

	res := callTool(t, srv, "create_note", map[string]any{"title": "only"})
	if !res.IsError {
		t.Errorf("create_note without content should be a tool error")
	}
}
