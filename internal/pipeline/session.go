package pipeline

import (
	"github.com/nao1215/wifikey/internal/model"
	"github.com/nao1215/wifikey/internal/platform"
	"github.com/nao1215/wifikey/internal/provider"
)

// Session is the state of one run. It is created per run and passed to
// every step; nothing in it outlives the process.
type Session struct {
	// Info is the detected host.
	Info platform.Info

	// Provider is selected once by the detect step.
	Provider provider.Provider

	// Profiles are the enumerated profiles, in OS order.
	Profiles []model.Profile

	// Report accumulates the results.
	Report *model.Report

	// Steps lists the steps that completed.
	Steps []string
}

// NewSession returns a session with an empty report.
func NewSession() *Session {
	return &Session{Report: model.NewReport(model.PlatformUnsupported)}
}
