// SPDX-License-Identifier: MIT

package matrix

// Test bridge (white-box) for the internal options snapshot.
// Lives in a _test file, so it is invisible in production builds.

// OptionsSnapshot is a read-only view of the resolved Options.
type OptionsSnapshot struct {
	ValidateNaNInf bool
}

// GatherOptionsSnapshot resolves opts and returns the effective settings.
func GatherOptionsSnapshot(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{ValidateNaNInf: o.validateNaNInf}
}
