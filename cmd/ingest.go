package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/omarselim0/shopmate/internal/progress"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest [dir]",
	Short: "Ingest PDF documents into the vector store",
	Long: `Walks the given directory (default "."), extracts text from every
matching PDF, chunks and embeds it, and persists the vector store under
the data dir. Include and exclude globs come from the config.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		root := "."
		if len(args) == 1 {
			root = args[0]
		}

		cfg, err := loadConfig()
		exitOnError(err)

		database, err := openDatabase(cfg)
		exitOnError(err)
		defer database.Close()

		ctx := cmd.Context()
		engine, err := createDocChatEngine(ctx, cfg, database)
		exitOnError(err)

		stats, err := engine.IngestDir(ctx, root, cfg.Include, cfg.Exclude, progress.NewReporter())
		exitOnError(err)

		exitOnError(engine.Persist(ctx, vectorStoreDir(cfg)))

		fmt.Printf("Ingested %d files (%d chunks)\n", stats.Files, stats.Chunks)
		for _, f := range stats.Failed {
			fmt.Printf("  failed: %s\n", f)
		}
	},
}

func init() {
	rootCmd.AddCommand(ingestCmd)
}
