// Package provider implements profile enumeration and secret retrieval for
// each supported platform.
//
// A Provider is selected once per run with New and held for the run's
// duration:
//   - Windows uses netsh
//   - MacOS uses networksetup and the security keychain tool
//   - Linux uses nmcli and falls back to NetworkManager keyfiles
//
// Providers only shell out through a command.Runner and read files, so all
// of them compile and are tested on every OS.
//
// Retrieve never fails for a single profile: access problems, timeouts and
// missing fields all map to a model.Result. The only error it returns is
// the cancellation of the run itself.
package provider
