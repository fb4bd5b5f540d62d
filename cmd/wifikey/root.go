package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nao1215/wifikey/internal/config"
)

// exitAborted is the exit status after an interrupt (128 + SIGINT).
const exitAborted = 130

// errAborted is returned when the operator interrupted the run.
var errAborted = errors.New("aborted by user")

// NewRootCmd creates the root command. Running it without a subcommand
// lists the saved networks and prints their passwords.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wifikey",
		Short: "Show the passwords of saved Wi-Fi networks",
		Long: `wifikey lists the Wi-Fi networks saved on this machine and prints their
passwords.

  Windows  netsh wlan show profiles / show profile key=clear
  macOS    networksetup and the login keychain (security find-generic-password)
  Linux    nmcli, falling back to NetworkManager keyfiles

Some secrets require elevated privileges: run from an Administrator prompt
on Windows or with sudo on Linux. On macOS the keychain asks for permission
for each network.

Examples:
  # Print every saved network and its password
  wifikey

  # Write a JSON report readable only by the current user
  wifikey --json -o networks.json

  # Read keyfiles from a different directory
  sudo wifikey --connections-dir /mnt/etc/NetworkManager/system-connections`,
		Version:       getVersion(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runRootCmd,
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	cmd.Flags().DurationP("timeout", "t", config.DefaultTimeout,
		"Time limit for each external command")
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .wifikey in current, user config or home directory)")
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Write report to specified file path with owner-only permissions")
	cmd.Flags().String("connections-dir", config.DefaultConnectionsDir,
		"NetworkManager keyfile directory used when nmcli lists nothing")
	cmd.Flags().Bool("no-prompt", false,
		"Never ask for an SSID when no saved network is listed")
	cmd.Flags().Bool("color", false,
		"Colorize the terminal report")

	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command and exits with its status.
func Execute() {
	os.Exit(exitCode(NewRootCmd().ExecuteContext(context.Background())))
}

// exitCode prints err on stderr and maps it to an exit status.
func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errAborted):
		fmt.Fprintln(os.Stderr, "Aborted by user.")
		return exitAborted
	default:
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
}
