package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ardnew/neostatus/command"
	"github.com/ardnew/neostatus/config"
)

var sendCmd = &cobra.Command{
	Use:   "send INDEX COLOR",
	Short: "Set one status slot on the device",
	Long: `Sends a vendor output report setting slot INDEX to COLOR. COLOR is a ` +
		`preset (off, red, green, blue, orange) or a hex triplet such as #ff5500. ` +
		`The slot lights until it is not refreshed for the configured timeout.`,
	Example: `  neostatus send 3 red
  neostatus send 0 '#00ff80'`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := parseIndex(args[0])
		if err != nil {
			return err
		}
		color, err := config.ParseColor(args[1])
		if err != nil {
			return err
		}

		h, err := openHost()
		if err != nil {
			return err
		}
		defer h.Close()

		var buf [command.SetLEDReportSize]byte
		n := command.EncodeReport(buf[:], index, color)
		if err := h.SendReport(buf[:n]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "slot %d <- %s\n", index, config.FormatColor(color))
		return nil
	},
}
