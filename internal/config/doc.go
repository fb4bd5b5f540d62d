// Package config holds the run configuration of wifikey: command timeouts,
// report format and destination, the NetworkManager keyfile directory and
// the netsh labels used on localized Windows installations.
//
// Values come from three layers, lowest precedence first: the defaults of
// NewConfig, an optional YAML file (.wifikey), and command-line flags.
package config
