// Package main provides the entry point for the wifikey CLI.
//
// wifikey lists the Wi-Fi networks saved on the local machine and prints
// their passwords, using netsh on Windows, the keychain on macOS and
// NetworkManager on Linux.
//
// Usage:
//
//	wifikey
//	wifikey --json -o networks.json
//
// See --help for all available options.
package main

func main() {
	Execute()
}
