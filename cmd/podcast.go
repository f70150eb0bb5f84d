package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/omarselim0/shopmate/internal/podcast"
)

var podcastOut string

var podcastCmd = &cobra.Command{
	Use:   "podcast <file.pdf>",
	Short: "Turn a PDF into a two-host podcast script",
	Long: `Generates a dialogue script for two hosts discussing the document.
The script is cleaned for text-to-speech: no markdown, no symbols a TTS
engine would read aloud.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig()
		exitOnError(err)

		provider, err := createLLMProviderFromConfig(cfg)
		exitOnError(err)

		ctx := cmd.Context()
		text, err := extractPDFText(ctx, args[0])
		exitOnError(err)

		script, err := podcast.NewWriter(provider).Generate(ctx, text)
		exitOnError(err)

		for _, seg := range script.Segments {
			fmt.Printf("%s: %s\n", seg.Speaker, seg.Text)
		}

		if podcastOut != "" {
			exitOnError(os.WriteFile(podcastOut, []byte(script.Text), 0o644))
			fmt.Printf("Wrote script to %s\n", podcastOut)
		}
	},
}

func init() {
	podcastCmd.Flags().StringVarP(&podcastOut, "out", "o", "", "write the cleaned script to a file")
	rootCmd.AddCommand(podcastCmd)
}
