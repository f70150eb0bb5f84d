package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/omarselim0/shopmate/internal/study"
)

var summaryExport string

var summaryCmd = &cobra.Command{
	Use:   "summary <file.pdf>",
	Short: "Summarize a PDF as study notes",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig()
		exitOnError(err)

		provider, err := createLLMProviderFromConfig(cfg)
		exitOnError(err)

		ctx := cmd.Context()
		text, err := extractPDFText(ctx, args[0])
		exitOnError(err)

		tutor := study.NewTutor(provider, cfg.WordLimit)
		summary, err := tutor.Summarize(ctx, text)
		exitOnError(err)

		fmt.Println(summary)

		if summaryExport != "" {
			exitOnError(study.ExportHTML("Summary", summary, summaryExport))
			fmt.Printf("Exported to %s\n", summaryExport)
		}
	},
}

func init() {
	summaryCmd.Flags().StringVar(&summaryExport, "export", "", "write the summary to an HTML file")
	rootCmd.AddCommand(summaryCmd)
}
