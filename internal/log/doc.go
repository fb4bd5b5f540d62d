// Package log provides the application logger. It is a thin layer over
// log/slog whose handler masks credentials before they reach the output.
//
// Retrieved Wi-Fi keys travel through the program as plain strings, and
// command output captured for diagnostics may contain them as well. The
// SecureHandler masks:
//   - attributes whose key names a secret (psk, password, key_content, ...)
//   - string values that look like tool output carrying a key, such as
//     "Key Content : ...", "psk=..." or `password: "..."` lines
//
// Masking also applies in verbose mode, so a debug log can be shared
// without leaking network keys.
//
//	logger := log.NewSecureLogger(os.Stderr, verbose)
//	logger.Debug("keyfile parsed", "path", path, "psk", psk) // psk=***REDACTED***
package log
