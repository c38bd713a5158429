// Package gate implements the theoretical-mode semantic gate: negative
// values/quantities and zero-value crossing throws are only legal when
// the caller opts in.
package gate

import (
	"strings"

	"github.com/varkor/siteswap/internal/ast"
)

// RawContainsNegative reports whether the whitespace-stripped, lower-cased
// source string contains a '-' anywhere. It inspects the raw string
// rather than the decomposed events, so a negative quantity buried inside
// an exponent (e.g. "5^-1") is caught the same way as a negative value.
// The siteswap package calls it only after parsing succeeds, so input the
// grammar rejects (such as a bare "-") is reported as a syntax error.
func RawContainsNegative(raw string) bool {
	return strings.ContainsRune(raw, '-')
}

// CrossingZero reports whether pattern contains an event with value 0 and
// a nonzero crossing offset — the other theoretical-only construct.
func CrossingZero(p ast.Pattern) bool {
	for _, g := range p.Groups {
		for _, a := range g.Actions {
			for _, e := range a.Events {
				if e.Value == 0 && e.Offset != 0 {
					return true
				}
			}
		}
	}
	return false
}
