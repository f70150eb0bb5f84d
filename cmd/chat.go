package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/omarselim0/shopmate/internal/support"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Talk to the support assistant in the terminal",
	Long: `Starts an interactive support conversation. Ask about order status,
cancellations, refunds, product availability, or store policies.
Type "reset" to start over and "exit" to leave.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig()
		exitOnError(err)

		cat, err := loadCatalog(cfg)
		exitOnError(err)

		database, err := openDatabase(cfg)
		exitOnError(err)
		defer database.Close()

		responder := support.NewResponder(cat)
		sessions := support.NewSessionStore(database)
		sess := sessions.Create()

		bot := color.New(color.FgCyan)
		dim := color.New(color.Faint)

		bot.Println("Hi! I'm the Shopmate support assistant. How can I help?")
		dim.Println(`(type "reset" to start over, "exit" to leave)`)

		for {
			prompt := promptui.Prompt{Label: "you"}
			input, err := prompt.Run()
			if err != nil {
				// Ctrl-C or Ctrl-D ends the conversation.
				return
			}

			switch strings.ToLower(strings.TrimSpace(input)) {
			case "":
				continue
			case "exit", "quit":
				bot.Println("Goodbye!")
				return
			case "reset":
				if err := sessions.Reset(cmd.Context(), sess.ID); err != nil {
					exitOnError(err)
				}
				dim.Println("(conversation reset)")
				continue
			}

			_, turn := sessions.Respond(responder, sess.ID, input)
			bot.Println(turn.Bot)
			if verbose {
				dim.Println(fmt.Sprintf("(intent: %s)", turn.Intent))
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(chatCmd)
}
