package provider

import "errors"

var (
	// ErrListingFailed is returned when the OS profile listing command
	// could not be run or exited with a failure status.
	ErrListingFailed = errors.New("failed to list saved wireless profiles")

	// ErrNoWirelessDevice is returned when no wireless hardware port was
	// found on macOS.
	ErrNoWirelessDevice = errors.New("could not detect preferred Wi-Fi networks automatically")

	// ErrNoConnections is returned when neither nmcli nor the keyfile
	// directory produced any connection on Linux.
	ErrNoConnections = errors.New("no NetworkManager connections found or permission denied")
)
