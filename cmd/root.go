package cmd

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"golemstat/internal/command"
	"golemstat/pkg/logging"
)

// Exit codes for CLI commands. These follow common conventions so the
// tool can be scripted.
const (
	// ExitCodeSuccess indicates successful execution.
	ExitCodeSuccess = 0
	// ExitCodeError indicates a general error (invalid arguments,
	// location failure, decode failure).
	ExitCodeError = 1
	// ExitCodeNodeDown indicates a companion executable could not be
	// run or exited non-zero.
	ExitCodeNodeDown = 2
)

var debugFlag bool

// rootCmd represents the base command for the golemstat application.
var rootCmd = &cobra.Command{
	Use:   "golemstat",
	Short: "Report the health of a local Golem provider node",
	Long: `golemstat inspects a locally running Golem provider node by driving
the command-line interfaces of its two background services (the yagna
core daemon and the ya-provider agent) and decoding what they print.`,
	// SilenceUsage prevents Cobra from printing the usage message on
	// errors that are handled by the application.
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := logging.LevelInfo
		if debugFlag {
			level = logging.LevelDebug
		}
		logging.InitForCLI(level, os.Stderr)
	},
}

// SetVersion sets the version for the root command. Called from the
// main package to inject the build-time version.
func SetVersion(v string) {
	rootCmd.Version = v
}

// GetVersion returns the current version of the application.
func GetVersion() string {
	return rootCmd.Version
}

// Execute is the main entry point for the CLI application.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "golemstat version %s\n" .Version}}`)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(getExitCode(err))
	}
}

// getExitCode maps the error taxonomy to semantic exit codes.
func getExitCode(err error) int {
	var execErr *command.ExecutionError
	if errors.As(err, &execErr) {
		return ExitCodeNodeDown
	}
	return ExitCodeError
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "enable debug logging")

	rootCmd.AddCommand(newStatusCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newSelfUpdateCmd())
}
