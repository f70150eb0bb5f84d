package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/omarselim0/shopmate/internal/vectordb"
)

// handleSupportMessage runs one turn through the support responder.
func (s *Server) handleSupportMessage(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	message, err := request.RequireString("message")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: message"), nil
	}

	sessionID := request.GetString("session_id", "")
	sess, turn := s.sessions.Respond(s.responder, sessionID, message)

	return mcp.NewToolResultText(fmt.Sprintf("session_id: %s\nintent: %s\n\n%s", sess.ID, turn.Intent, turn.Bot)), nil
}

// handleSearchDocs performs semantic search over the ingested documents.
func (s *Server) handleSearchDocs(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := request.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: query"), nil
	}

	limit := request.GetInt("limit", 0)
	results, err := s.engine.Search(ctx, query, limit)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("search failed: %v", err)), nil
	}

	if len(results) == 0 {
		return mcp.NewToolResultText("No results found. Ingest some PDFs with `shopmate ingest` first."), nil
	}

	return mcp.NewToolResultText(vectordb.FormatResults(results)), nil
}

// handleAskDocs answers a question over the ingested documents.
func (s *Server) handleAskDocs(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	question, err := request.RequireString("question")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: question"), nil
	}

	sessionID := request.GetString("session_id", "")
	answer, err := s.engine.Ask(ctx, sessionID, question)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("question failed: %v", err)), nil
	}

	return mcp.NewToolResultText(answer), nil
}
