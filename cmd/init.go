package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/scholarsite/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize scholarsite configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure where site data lives and where the rendered site goes, and writes scholarsite.yml.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
