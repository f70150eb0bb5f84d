package mcp

import (
	"context"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/omarselim0/shopmate/internal/catalog"
	"github.com/omarselim0/shopmate/internal/support"
)

func testResponder() (*support.Responder, *support.SessionStore) {
	cat := catalog.New(
		[]catalog.Order{
			{OrderID: 12345, ProductName: "Red Hoodie", Status: "Shipped", DeliveryDate: "2025-09-03"},
		},
		[]catalog.Product{
			{Name: "Red Hoodie", AvailableSizes: "S, M, L", StockStatus: "In Stock"},
		},
		[]catalog.FAQ{
			{Question: "How long does shipping take?", Answer: "Shipping takes 3-5 business days."},
		},
	)
	return support.NewResponder(cat), support.NewSessionStore(nil)
}

func TestToolDefinitions(t *testing.T) {
	tests := []struct {
		name     string
		tool     mcp.Tool
		wantName string
	}{
		{"support_message", supportMessageTool, "support_message"},
		{"search_docs", searchDocsTool, "search_docs"},
		{"ask_docs", askDocsTool, "ask_docs"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.tool.Name != tt.wantName {
				t.Errorf("tool name = %q, want %q", tt.tool.Name, tt.wantName)
			}
			if tt.tool.Description == "" {
				t.Error("tool description should not be empty")
			}
		})
	}
}

func TestNewServer(t *testing.T) {
	responder, sessions := testResponder()
	srv := NewServer(nil, responder, sessions)

	if srv == nil {
		t.Fatal("NewServer returned nil")
	}
	if srv.mcp == nil {
		t.Fatal("MCP server not initialized")
	}
	if srv.responder != responder {
		t.Error("responder not set correctly")
	}
}

func TestHandleSupportMessage(t *testing.T) {
	responder, sessions := testResponder()
	srv := NewServer(nil, responder, sessions)
	ctx := context.Background()

	t.Run("tracking", func(t *testing.T) {
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{
			"message": "track order 12345",
		}

		result, err := srv.handleSupportMessage(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.IsError {
			t.Fatalf("unexpected tool error: %v", result.Content)
		}

		text := resultText(t, result)
		if !strings.Contains(text, "intent: tracking") {
			t.Errorf("result = %q, want tracking intent", text)
		}
		if !strings.Contains(text, "Red Hoodie") {
			t.Errorf("result = %q, want order status reply", text)
		}
	})

	t.Run("missing message", func(t *testing.T) {
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{}

		result, err := srv.handleSupportMessage(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.IsError {
			t.Error("expected error for missing message")
		}
	})

	t.Run("session continuity", func(t *testing.T) {
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{
			"message": "cancel my order 12345",
		}
		result, err := srv.handleSupportMessage(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		text := resultText(t, result)
		sessionID := strings.TrimPrefix(strings.SplitN(text, "\n", 2)[0], "session_id: ")
		if sessionID == "" {
			t.Fatal("no session id in result")
		}

		req.Params.Arguments = map[string]any{
			"message":    "it arrived too late",
			"session_id": sessionID,
		}
		result, err = srv.handleSupportMessage(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(resultText(t, result), "has been cancelled") {
			t.Errorf("follow-up result = %q", resultText(t, result))
		}
	})
}

func TestDocToolsSkippedWithoutEngine(t *testing.T) {
	responder, sessions := testResponder()
	srv := NewServer(nil, responder, sessions)

	if srv.engine != nil {
		t.Fatal("engine should be nil")
	}
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()

	if len(result.Content) == 0 {
		t.Fatal("empty tool result")
	}
	text, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("unexpected content type %T", result.Content[0])
	}
	return text.Text
}
