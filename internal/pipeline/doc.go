// Package pipeline runs one wifikey session as a fixed sequence of steps:
// detect the platform, enumerate saved profiles, optionally ask the
// operator for a profile name, and retrieve each secret.
//
// Steps share a Session that lives for a single run. A step returns an
// error only for conditions that end the run (an unsupported platform or
// cancellation); everything else is recorded in the session's report so
// the operator always receives a complete report.
//
// Retrieval is strictly sequential. Every profile enumerated gets exactly
// one report entry, in enumeration order.
package pipeline
