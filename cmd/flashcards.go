package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/omarselim0/shopmate/internal/study"
)

var flashcardsExport string

var flashcardsCmd = &cobra.Command{
	Use:   "flashcards <file.pdf>",
	Short: "Generate flashcards from a PDF",
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
		cards, raw, err := tutor.Flashcards(ctx, text)
		exitOnError(err)

		if len(cards) == 0 {
			// The model ignored the format; show what it said anyway.
			fmt.Println(raw)
			return
		}

		q := color.New(color.Bold)
		for i, c := range cards {
			q.Printf("%d. Q: %s\n", i+1, c.Question)
			fmt.Printf("   A: %s\n\n", c.Answer)
		}

		if flashcardsExport != "" {
			md := study.FlashcardsMarkdown("Flashcards", cards)
			exitOnError(study.ExportHTML("Flashcards", md, flashcardsExport))
			fmt.Printf("Exported to %s\n", flashcardsExport)
		}
	},
}

func init() {
	flashcardsCmd.Flags().StringVar(&flashcardsExport, "export", "", "write the flashcards to an HTML file")
	rootCmd.AddCommand(flashcardsCmd)
}
