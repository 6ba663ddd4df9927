package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ardnew/neostatus/config"
	"github.com/ardnew/neostatus/pkg"
	"github.com/ardnew/neostatus/pkg/journal"
)

// component identifies this executable for structured logging.
const component = pkg.ComponentCLI

var (
	configPath string
	deviceDir  string

	// cfg is resolved before any subcommand runs.
	cfg config.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "neostatus",
	Short: "USB status-LED controller and its simulated host",
	Long: `neostatus drives a strip of status LEDs from USB HID output reports and ` +
		`sends a Ctrl+Alt+Del keyboard macro when its button is pressed. The run ` +
		`command hosts the controller on a simulated FIFO board; send, press and ` +
		`watch attach to that board as the USB host.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		resolved, err := config.Resolve(configPath, cmd.Flags())
		if err != nil {
			return err
		}
		cfg = resolved
		return setupLogging(cfg)
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&configPath, "config", "c", "", "TOML configuration file")
	pf.StringVarP(&deviceDir, "device", "d", "", "device directory on the bus (default: the only device)")
	config.RegisterFlags(pf)

	rootCmd.AddCommand(runCmd, sendCmd, pressCmd, watchCmd, configCmd, versionCmd)
}

// Execute adds all child commands to the root command and sets flags
// appropriately.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// setupLogging applies the log section of cfg to the shared logger.
func setupLogging(cfg config.Config) error {
	level, err := pkg.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	pkg.SetLogLevel(level)

	if strings.EqualFold(cfg.Log.Format, "journal") {
		if journal.Available() {
			pkg.SetLogger(slog.New(journal.NewHandler(pkg.Leveler())))
			return nil
		}
		pkg.SetLogFormat(pkg.LogFormatText)
		pkg.LogWarn(component, "journal not available, logging to stderr")
		return nil
	}

	format, err := pkg.ParseLogFormat(cfg.Log.Format)
	if err != nil {
		return fmt.Errorf("log format: %w", err)
	}
	pkg.SetLogFormat(format)
	return nil
}
