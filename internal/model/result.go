package model

import "encoding/json"

// Outcome is the tag of a Result.
type Outcome int

const (
	// OutcomeNotFound means the provider confirmed that no secret is
	// stored, or the expected field was absent from its output.
	OutcomeNotFound Outcome = iota

	// OutcomeFound means the secret was recovered.
	OutcomeFound

	// OutcomeDenied means the provider refused access, timed out, or
	// returned output that could not be used.
	OutcomeDenied
)

// String returns the outcome name used in machine-readable output.
func (o Outcome) String() string {
	switch o {
	case OutcomeFound:
		return "found"
	case OutcomeNotFound:
		return "not_found"
	case OutcomeDenied:
		return "denied"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// Result is the outcome of looking up the secret of one profile.
// Secret is only meaningful when Outcome is
// OutcomeFound.
type Result struct {
	Outcome Outcome
	Secret  string

	// Reason is a short diagnostic explaining a NotFound or Denied outcome.
	Reason string
}

// Found returns a Result carrying a recovered secret.
func Found(secret string) Result {
	return Result{Outcome: OutcomeFound, Secret: secret}
}

// NotFound returns a Result stating that no secret is stored.
func NotFound(reason string) Result {
	return Result{Outcome: OutcomeNotFound, Reason: reason}
}

// Denied returns a Result stating that access to the secret was refused.
func Denied(reason string) Result {
	return Result{Outcome: OutcomeDenied, Reason: reason}
}

// IsFound reports whether the secret was recovered.
func (r Result) IsFound() bool {
	return r.Outcome == OutcomeFound
}

// resultJSON is the serialized form of Result.
type resultJSON struct {
	Outcome Outcome `json:"outcome"`
	Secret  string  `json:"secret,omitempty"`
	Reason  string  `json:"reason,omitempty"`
}

// MarshalJSON omits the secret for outcomes other than OutcomeFound.
func (r Result) MarshalJSON() ([]byte, error) {
	out := resultJSON{Outcome: r.Outcome, Reason: r.Reason}
	if r.Outcome == OutcomeFound {
		out.Secret = r.Secret
	}
	return json.Marshal(out)
}
