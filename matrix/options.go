// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for payload construction.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors,
//   - gatherOptions helper (internal).
//
// Notes:
//   - Expression leaves admit every IEEE-754 double, so the finite-only
//     policy is opt-in here (unlike dense kernels that feed numeric solvers).
//   - Options are resolved once at construction; a built Dense is immutable
//     and carries no policy afterwards.
package matrix

// ---------- Defaults (single source of truth) ----------

// DefaultValidateNaNInf toggles strict finite-value validation on ingestion.
// false ⇒ NaN, +Inf and -Inf are stored verbatim.
const DefaultValidateNaNInf = false

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option` and resolve
// them via gatherOptions.
type Options struct {
	validateNaNInf bool // DefaultValidateNaNInf
}

// WithValidateNaNInf enables strict finite-value validation.
// Construction then fails with ErrNaNInf on the first NaN or ±Inf entry
// (row-major scan order).
//
// Complexity:
//   - Time O(1), Space O(1).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables NaN/Inf validation (the default).
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// defaultOptions returns Options populated from the Default* constants.
func defaultOptions() Options {
	return Options{
		validateNaNInf: DefaultValidateNaNInf,
	}
}

// gatherOptions applies setters left-to-right over the defaults.
// Implementation:
//   - Stage 1: start from defaultOptions().
//   - Stage 2: apply each non-nil Option in order (last write wins).
//
// Complexity:
//   - Time O(len(opts)), Space O(1).
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn == nil {
			continue // nil options are ignored
		}
		fn(&o)
	}

	return o
}
