package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/omarselim0/shopmate/internal/study"
)

var (
	bookmarkFile    string
	bookmarkPage    int
	bookmarkSnippet string
)

var bookmarksCmd = &cobra.Command{
	Use:   "bookmarks",
	Short: "List saved bookmarks",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig()
		exitOnError(err)

		database, err := openDatabase(cfg)
		exitOnError(err)
		defer database.Close()

		bookmarks, err := study.NewBookmarkStore(database).List(cmd.Context())
		exitOnError(err)

		fmt.Println(study.FormatBookmarks(bookmarks))
	},
}

var bookmarkAddCmd = &cobra.Command{
	Use:   "add <note>",
	Short: "Save a bookmark",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig()
		exitOnError(err)

		database, err := openDatabase(cfg)
		exitOnError(err)
		defer database.Close()

		store := study.NewBookmarkStore(database)
		id, err := store.Save(cmd.Context(), bookmarkFile, bookmarkPage, args[0], bookmarkSnippet)
		exitOnError(err)

		fmt.Printf("Saved bookmark %s\n", id)
	},
}

var bookmarkRemoveCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a bookmark",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig()
		exitOnError(err)

		database, err := openDatabase(cfg)
		exitOnError(err)
		defer database.Close()

		exitOnError(study.NewBookmarkStore(database).Delete(cmd.Context(), args[0]))
		fmt.Println("Deleted")
	},
}

func init() {
	bookmarkAddCmd.Flags().StringVar(&bookmarkFile, "file", "", "source file the bookmark refers to")
	bookmarkAddCmd.Flags().IntVar(&bookmarkPage, "page", 0, "page number in the source file")
	bookmarkAddCmd.Flags().StringVar(&bookmarkSnippet, "snippet", "", "quoted text or answer to save with the note")

	bookmarksCmd.AddCommand(bookmarkAddCmd)
	bookmarksCmd.AddCommand(bookmarkRemoveCmd)
	rootCmd.AddCommand(bookmarksCmd)
}
