// SPDX-License-Identifier: MIT

// Package matrix - textual rendering of values and payloads.
//
// Rendering contract (stable, round-trip safe):
//   - 1e-3 ≤ |v| < 1e7 : plain decimal with at least one fractional digit ("1.0", "2.5").
//   - otherwise        : scientific with an upper-case 'E', no '+' and no zero padding in the exponent ("1.0E7", "1.5E-4").
//   - zero             : "0.0" / "-0.0".
//   - non-finite       : "NaN", "Infinity", "-Infinity".
//
// Digits are the shortest sequence that parses back to the same float64.

package matrix

import (
	"math"
	"strconv"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtOpen     = "Matrix["
	_fmtClose    = "]"
	_fmtRowOpen  = "["
	_fmtRowClose = "]"
	_fmtSep      = ", "
	_fmtRowSep   = "; "

	_fmtNaN    = "NaN"
	_fmtPosInf = "Infinity"
	_fmtNegInf = "-Infinity"

	// decimal window for plain notation: [decimalLow, decimalHigh)
	decimalLow  = 1e-3
	decimalHigh = 1e7
)

// FormatValue renders v under the package rendering contract.
// Complexity: O(1) (bounded by float64 digit count).
func FormatValue(v float64) string {
	switch {
	case math.IsNaN(v):
		return _fmtNaN
	case math.IsInf(v, 1):
		return _fmtPosInf
	case math.IsInf(v, -1):
		return _fmtNegInf
	case v == 0:
		if math.Signbit(v) {
			return "-0.0"
		}
		return "0.0"
	}

	abs := math.Abs(v)
	if abs >= decimalLow && abs < decimalHigh {
		s := strconv.FormatFloat(v, 'f', -1, 64)
		if !strings.Contains(s, ".") {
			s += ".0"
		}
		return s
	}

	// 'e' with shortest digits yields e.g. "1.5e-04" or "1e+07".
	s := strconv.FormatFloat(v, 'e', -1, 64)
	mant, exp, _ := strings.Cut(s, "e")
	if !strings.Contains(mant, ".") {
		mant += ".0"
	}
	n, err := strconv.Atoi(exp)
	if err != nil {
		// strconv always emits a well-formed exponent
		panic("matrix: FormatValue: malformed exponent " + exp)
	}

	return mant + "E" + strconv.Itoa(n)
}

// FormatRow renders a row as "[v0, v1, ..., vk]".
func FormatRow(row []float64) string {
	var sb strings.Builder
	writeRow(&sb, row)

	return sb.String()
}

// writeRow appends "[v0, v1, ...]" to sb.
func writeRow(sb *strings.Builder, row []float64) {
	sb.WriteString(_fmtRowOpen)
	for j, v := range row {
		if j > 0 {
			sb.WriteString(_fmtSep)
		}
		sb.WriteString(FormatValue(v))
	}
	sb.WriteString(_fmtRowClose)
}

// formatDense renders "Matrix[" + row0 + "; " + row1 + ... + "]".
func formatDense(m *Dense) string {
	var sb strings.Builder
	sb.WriteString(_fmtOpen)
	for i := 0; i < m.r; i++ {
		if i > 0 {
			sb.WriteString(_fmtRowSep)
		}
		writeRow(&sb, m.data[i*m.c:(i+1)*m.c])
	}
	sb.WriteString(_fmtClose)

	return sb.String()
}
