package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ardnew/neostatus/device/class/hid"
)

var (
	pressHold    time.Duration
	pressTimeout time.Duration
)

var pressCmd = &cobra.Command{
	Use:   "press",
	Short: "Press the device button and print the keyboard reports it sends",
	Long: `Pulls the button pin low for --duration, then acknowledges and prints each ` +
		`keyboard report until the all-released report arrives.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		h, err := openHost()
		if err != nil {
			return err
		}
		defer h.Close()

		ctx, cancel := context.WithTimeout(cmd.Context(), pressTimeout)
		defer cancel()

		pressErr := make(chan error, 1)
		go func() { pressErr <- h.Press(ctx, pressHold) }()

		out := cmd.OutOrStdout()
		var reports []hid.KeyboardReport
		for !macroComplete(reports) {
			r, err := h.ReadKeyboardReport(ctx)
			if err != nil {
				return fmt.Errorf("read keyboard report: %w", err)
			}
			fmt.Fprintln(out, formatKeyboardReport(r))
			reports = append(reports, r)
		}
		return <-pressErr
	},
}

func init() {
	f := pressCmd.Flags()
	f.DurationVar(&pressHold, "duration", 50*time.Millisecond, "how long the button is held down")
	f.DurationVar(&pressTimeout, "wait", 5*time.Second, "give up if the macro has not completed")
}

// macroComplete reports whether reports end with a release that follows
// at least one pressed report.
func macroComplete(reports []hid.KeyboardReport) bool {
	pressed := false
	for _, r := range reports {
		if !r.IsEmpty() {
			pressed = true
		} else if pressed {
			return true
		}
	}
	return false
}
