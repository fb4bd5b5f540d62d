package model

import "time"

// Entry pairs a profile with the outcome of its secret lookup.
type Entry struct {
	Profile Profile `json:"profile"`
	Result  Result  `json:"result"`
}

// Report is the ordered result of one run.
// Entries are kept in enumeration order; nothing is sorted or merged.
type Report struct {
	// Platform is the detected host platform.
	Platform Platform `json:"platform"`

	// Host is a free-form description of the host OS (e.g. "ubuntu 24.04").
	Host string `json:"host,omitempty"`

	// DateScanned is the time the run started.
	DateScanned time.Time `json:"date_scanned"`

	// Entries holds one entry per enumerated profile.
	Entries []Entry `json:"entries"`

	// Diagnostics are operator-facing hints collected during the run,
	// such as a tool being unavailable or a privilege problem.
	Diagnostics []string `json:"diagnostics,omitempty"`

	// ManualEntry is true when the single entry was typed by the operator
	// because automatic enumeration found nothing.
	ManualEntry bool `json:"manual_entry,omitempty"`
}

// NewReport creates an empty report for the given platform.
func NewReport(platform Platform) *Report {
	return &Report{
		Platform:    platform,
		DateScanned: time.Now(),
		Entries:     make([]Entry, 0),
	}
}

// Add appends an entry. Duplicated profile names are kept.
func (r *Report) Add(profile Profile, result Result) {
	r.Entries = append(r.Entries, Entry{Profile: profile, Result: result})
}

// AddDiagnostic records an operator-facing hint. Empty and repeated
// messages are ignored.
func (r *Report) AddDiagnostic(msg string) {
	if msg == "" {
		return
	}
	for _, d := range r.Diagnostics {
		if d == msg {
			return
		}
	}
	r.Diagnostics = append(r.Diagnostics, msg)
}

// Len returns the number of entries.
func (r *Report) Len() int {
	return len(r.Entries)
}

// Count returns the number of entries with the given outcome.
func (r *Report) Count(outcome Outcome) int {
	n := 0
	for _, e := range r.Entries {
		if e.Result.Outcome == outcome {
			n++
		}
	}
	return n
}
