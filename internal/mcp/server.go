package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/omarselim0/shopmate/internal/docchat"
	"github.com/omarselim0/shopmate/internal/support"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Server wraps an MCP server that exposes the shop assistant as tools.
type Server struct {
	engine    *docchat.Engine
	responder *support.Responder
	sessions  *support.SessionStore
	mcp       *server.MCPServer
}

// NewServer creates a new MCP server with the given dependencies. The
// doc-chat engine is optional; its tools are skipped when it is nil.
func NewServer(engine *docchat.Engine, responder *support.Responder, sessions *support.SessionStore) *Server {
	s := &Server{
		engine:    engine,
		responder: responder,
		sessions:  sessions,
	}

	s.mcp = server.NewMCPServer(
		"shopmate",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

// registerTools adds all tool definitions and their handlers to the MCP server.
func (s *Server) registerTools() {
	s.mcp.AddTool(supportMessageTool, s.handleSupportMessage)
	if s.engine != nil {
		s.mcp.AddTool(searchDocsTool, s.handleSearchDocs)
		s.mcp.AddTool(askDocsTool, s.handleAskDocs)
	}
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}
