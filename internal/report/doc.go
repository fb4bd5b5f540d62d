// Package report renders a finished run.
//
//   - SimpleWriter: the terminal format, one "SSID / Password" block per
//     entry, optionally colored
//   - JSONWriter: structured output for scripts
//   - MarkdownWriter: a GitHub-flavored table built with nao1215/markdown
//
// Each profile that has no recoverable secret is shown with a fixed
// marker instead of a value (see NotFoundMarker and DeniedMarker).
package report
