package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/omarselim0/shopmate/internal/pdf"
)

var statsCmd = &cobra.Command{
	Use:   "stats <file.pdf> [file.pdf...]",
	Short: "Show page and word counts for PDF files",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()

		totalPages, totalWords := 0, 0
		for _, path := range args {
			doc, err := pdf.Extract(ctx, path)
			exitOnError(err)

			fmt.Printf("%s: %d pages, %d words\n", path, doc.PageCount, doc.WordCount)
			totalPages += doc.PageCount
			totalWords += doc.WordCount
		}

		if len(args) > 1 {
			fmt.Printf("total: %d pages, %d words\n", totalPages, totalWords)
		}
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
