// Package command runs the external OS tools that wifikey depends on
// (netsh, networksetup, security, nmcli).
//
// Every invocation is bounded by a timeout. A command that exits with a
// non-zero status is not an error at this layer: the caller inspects
// Result.ExitCode. Errors are reserved for problems running the command
// at all:
//   - ErrUnavailable when the executable cannot be found or started
//   - ErrTimeout when the command exceeded its time budget
//   - context.Canceled when the run was interrupted by the operator
//
// Providers depend on the Runner interface so that tests can substitute
// canned output (see the commandtest package).
package command
