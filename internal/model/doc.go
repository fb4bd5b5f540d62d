// Package model defines the core data structures used throughout wifikey.
//
// This package contains the following main types:
//   - Platform: The closed set of host platforms a provider can serve
//   - Profile: A saved wireless network profile discovered on the host
//   - Result: The outcome of one secret lookup (found, not found, denied)
//   - Report: The ordered list of profile/result pairs produced by a run
//
// Models live in their own package so that the provider, pipeline and
// report packages can share them without import cycles. All of them are
// transient: nothing here is persisted past the end of a run.
package model
