package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
)

var askInteractive bool

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask a question about the ingested documents",
	Long: `Answers a question over the ingested PDFs using retrieval. With
--interactive, starts a conversation that remembers earlier turns.`,
	Args: cobra.ArbitraryArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig()
		exitOnError(err)

		database, err := openDatabase(cfg)
		exitOnError(err)
		defer database.Close()

		ctx := cmd.Context()
		engine, err := createDocChatEngine(ctx, cfg, database)
		exitOnError(err)

		if !askInteractive {
			question := strings.TrimSpace(strings.Join(args, " "))
			if question == "" {
				exitOnError(fmt.Errorf("provide a question or use --interactive"))
			}
			answer, err := engine.Ask(ctx, "", question)
			exitOnError(err)
			fmt.Println(answer)
			return
		}

		sessionID := uuid.New().String()
		bot := color.New(color.FgCyan)
		for {
			prompt := promptui.Prompt{Label: "ask"}
			input, err := prompt.Run()
			if err != nil {
				return
			}
			input = strings.TrimSpace(input)
			if input == "" {
				continue
			}
			if lower := strings.ToLower(input); lower == "exit" || lower == "quit" {
				return
			}

			answer, err := engine.Ask(ctx, sessionID, input)
			if err != nil {
				color.Red("error: %v", err)
				continue
			}
			bot.Println(answer)
		}
	},
}

func init() {
	askCmd.Flags().BoolVarP(&askInteractive, "interactive", "i", false, "conversational mode")
	rootCmd.AddCommand(askCmd)
}
