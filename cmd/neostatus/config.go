package main

import (
	"github.com/spf13/cobra"

	"github.com/ardnew/neostatus/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the resolved configuration as TOML",
	Long: `Prints the configuration after the file, NEOSTATUS_* environment ` +
		`variables and flags have been applied. The output is a valid --config file.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := config.Marshal(cfg)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}
