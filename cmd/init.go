package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/omarselim0/shopmate/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a config file interactively",
	Run: func(cmd *cobra.Command, args []string) {
		if _, err := os.Stat(cfgFile); err == nil {
			exitOnError(fmt.Errorf("%s already exists; remove it first to reconfigure", cfgFile))
		}

		cfg, err := config.RunWizard()
		exitOnError(err)

		exitOnError(cfg.Save(cfgFile))
		fmt.Printf("Wrote %s\n", cfgFile)
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
