package mcp

import "github.com/mark3labs/mcp-go/mcp"

// supportMessageTool defines the support_message MCP tool.
var supportMessageTool = mcp.NewTool("support_message",
	mcp.WithDescription("Send one message to the store support assistant. Handles order tracking, cancellations, refunds, product availability, and store policy questions."),
	mcp.WithString("message",
		mcp.Required(),
		mcp.Description("The customer message"),
	),
	mcp.WithString("session_id",
		mcp.Description("Session id from a previous call; omit to start a new conversation"),
	),
)

// searchDocsTool defines the search_docs MCP tool.
var searchDocsTool = mcp.NewTool("search_docs",
	mcp.WithDescription("Search the ingested PDF documents semantically. Returns matching excerpts with their source file and page."),
	mcp.WithString("query",
		mcp.Required(),
		mcp.Description("Natural language search query"),
	),
	mcp.WithNumber("limit",
		mcp.Description("Maximum number of results to return (default 4)"),
	),
)

// askDocsTool defines the ask_docs MCP tool.
var askDocsTool = mcp.NewTool("ask_docs",
	mcp.WithDescription("Ask a question about the ingested PDF documents. Answers are grounded in retrieved excerpts and cite their sources."),
	mcp.WithString("question",
		mcp.Required(),
		mcp.Description("The question to answer"),
	),
	mcp.WithString("session_id",
		mcp.Description("Session id for conversational follow-ups"),
	),
)
