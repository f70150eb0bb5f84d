package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/omarselim0/shopmate/internal/mcp"
	"github.com/omarselim0/shopmate/internal/support"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the MCP server on stdio",
	Long: `Exposes the shop assistant to AI agents over the Model Context
Protocol: support_message for the support responder, and search_docs /
ask_docs for the ingested documents.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig()
		exitOnError(err)

		cat, err := loadCatalog(cfg)
		exitOnError(err)

		database, err := openDatabase(cfg)
		exitOnError(err)
		defer database.Close()

		engine, err := createDocChatEngine(cmd.Context(), cfg, database)
		if err != nil {
			// Stdout carries the protocol; diagnostics go to stderr.
			fmt.Fprintf(os.Stderr, "document tools disabled: %v\n", err)
			engine = nil
		}

		srv := mcp.NewServer(engine, support.NewResponder(cat), support.NewSessionStore(database))
		exitOnError(srv.Serve())
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
