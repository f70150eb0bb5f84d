package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/omarselim0/shopmate/internal/study"
)

var quizShowAnswers bool

var quizCmd = &cobra.Command{
	Use:   "quiz <file.pdf>",
	Short: "Generate a multiple choice quiz from a PDF and take it",
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
		quiz, err := tutor.GenerateQuiz(ctx, text)
		exitOnError(err)

		if quizShowAnswers {
			printQuizWithAnswers(quiz)
			return
		}

		answers := make([]string, 0, len(quiz))
		for i, q := range quiz {
			fmt.Printf("\n%d. %s\n", i+1, q.Prompt)
			for _, key := range []string{"a", "b", "c", "d"} {
				fmt.Printf("   %s) %s\n", key, q.Options[key])
			}

			sel := promptui.Select{
				Label: "Your answer",
				Items: []string{"a", "b", "c", "d"},
			}
			_, choice, err := sel.Run()
			if err != nil {
				return
			}
			answers = append(answers, choice)
		}

		result := study.Grade(quiz, answers)
		fmt.Println()
		for i, r := range result.Results {
			if r.Correct {
				color.Green("%d. correct", i+1)
			} else {
				color.Red("%d. wrong (answer: %s)", i+1, r.Expected)
			}
		}
		fmt.Printf("\nScore: %d/%d\n", result.Score, result.Total)
	},
}

func printQuizWithAnswers(quiz study.Quiz) {
	for i, q := range quiz {
		fmt.Printf("\n%d. %s\n", i+1, q.Prompt)
		for _, key := range []string{"a", "b", "c", "d"} {
			fmt.Printf("   %s) %s\n", key, q.Options[key])
		}
		fmt.Printf("   Answer: %s\n", q.Answer)
	}
}

func init() {
	quizCmd.Flags().BoolVar(&quizShowAnswers, "show-answers", false, "print the quiz with answers instead of taking it")
	rootCmd.AddCommand(quizCmd)
}
