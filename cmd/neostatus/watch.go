package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"slices"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ardnew/neostatus/pkg"
	"github.com/ardnew/neostatus/status"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Print strip frames as the device latches them",
	Long: `Decodes every latched WS2812 frame and prints it when it differs from ` +
		`the previous one. Keyboard reports sent meanwhile are acknowledged and ` +
		`printed so a button press does not stall the device.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		h, err := openHost()
		if err != nil {
			return err
		}
		defer h.Close()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		out := cmd.OutOrStdout()

		go func() {
			for {
				r, err := h.ReadKeyboardReport(ctx)
				if errors.Is(err, pkg.ErrProtocol) {
					pkg.LogWarn(component, "bad keyboard report", "error", err)
					continue
				}
				if err != nil {
					return
				}
				fmt.Fprintf(out, "key %s\n", formatKeyboardReport(r))
			}
		}()

		var last []status.Color
		for {
			frame, err := h.ReadFrame(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return nil
				}
				if errors.Is(err, pkg.ErrProtocol) {
					pkg.LogWarn(component, "bad frame", "error", err)
					continue
				}
				return err
			}
			if slices.Equal(frame, last) {
				continue
			}
			last = frame
			fmt.Fprintln(out, formatFrame(frame))
		}
	},
}
