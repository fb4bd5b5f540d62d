// Package parser extracts structured fields from the semi-structured text
// printed by OS wireless tools and from NetworkManager keyfiles.
//
// The rules are shared by every provider:
//   - "Label : Value" lines (netsh, networksetup) via LabelValue and LabelValues
//   - quote and whitespace trimming via StripQuotes
//   - [section] / key=value keyfiles via ParseKeyFile
//   - the macOS keychain "password: ..." output via KeychainSecret
//   - nmcli terse output via SplitTerse
//
// A missing field is reported as ("", false); nothing in this package
// panics on malformed input.
package parser
