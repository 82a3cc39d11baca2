package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/schemasite/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize schemasite configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to choose the schema source and output directory, and writes a .schemasite.yml file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
