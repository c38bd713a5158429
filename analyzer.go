// Package siteswap analyses siteswap juggling notation: parsing,
// validating, and classifying a pattern string.
package siteswap

import (
	"strings"

	"github.com/varkor/siteswap/internal/ast"
	"github.com/varkor/siteswap/internal/canon"
	"github.com/varkor/siteswap/internal/gate"
	"github.com/varkor/siteswap/internal/handinfer"
	"github.com/varkor/siteswap/internal/normalize"
	"github.com/varkor/siteswap/internal/parser"
	"github.com/varkor/siteswap/internal/rangeinfer"
	"github.com/varkor/siteswap/internal/render"
	"github.com/varkor/siteswap/internal/solver"
)

// Analyze runs the full pipeline: lexing, parsing, semantic gating,
// hand-count inference, normalisation, range inference, delta/state
// solving, ground classification, and re-serialisation. It returns a
// *SiteswapError when the input isn't a siteswap expression at all; a
// syntactically valid but invalid-as-juggling pattern comes back as a
// Result with Valid=false and no error.
func Analyze(pattern string, opts Options) (Result, error) {
	if err := opts.Validate(); err != nil {
		return Result{}, err
	}
	opts = opts.withDefaults()

	raw := preprocess(pattern)
	if raw == "" {
		return Result{Pattern: "ε", Valid: false, Period: 0}, nil
	}

	groups, hands, err := decompose(raw, opts)
	if err != nil {
		return Result{}, err
	}

	normGroups, period, mass := normalize.Normalize(groups, hands)
	handsEffective := 1
	if hands != nil {
		handsEffective = *hands
	}

	if period == 0 {
		return Result{Pattern: raw, Valid: false, Period: 0, Hands: hands}, nil
	}
	if mass%period != 0 {
		return Result{Pattern: raw, Valid: false, Period: period, Hands: hands}, nil
	}
	cardinality := mass / period

	ranges, err := rangeinfer.Infer(normGroups, handsEffective, opts.MaximumLength)
	if err != nil {
		return Result{}, newRangeError(raw, err.Error())
	}

	deltas := solver.BuildDelta(normGroups, handsEffective, ranges)
	states, valid := solver.Solve(deltas, ranges, period)
	if !valid {
		return Result{Pattern: raw, Valid: false, Period: period, Hands: hands}, nil
	}

	ground := solver.Classify(states, ranges, cardinality, handsEffective)
	normalised := render.Pattern(normGroups, handsEffective)

	return Result{
		Pattern:     raw,
		Normalised:  normalised,
		Valid:       true,
		Period:      period,
		Cardinality: cardinality,
		Hands:       hands,
		Ground:      ground,
		Excited:     !ground,
	}, nil
}

// Fingerprint parses and normalises pattern exactly as Analyze does and
// returns a content-addressable digest of the result, independent of
// whichever of several equivalent textual forms produced it. It returns
// the same errors Analyze would for syntactically or semantically
// rejected input, and an error if the pattern does not resolve to a
// valid periodic pattern (a fingerprint is only meaningful for one).
func Fingerprint(pattern string, opts Options) ([32]byte, error) {
	if err := opts.Validate(); err != nil {
		return [32]byte{}, err
	}
	opts = opts.withDefaults()

	raw := preprocess(pattern)
	if raw == "" {
		return [32]byte{}, newSyntaxError("ε", "empty pattern has no fingerprint", "")
	}

	groups, hands, err := decompose(raw, opts)
	if err != nil {
		return [32]byte{}, err
	}

	normGroups, period, mass := normalize.Normalize(groups, hands)
	handsEffective := 1
	if hands != nil {
		handsEffective = *hands
	}
	if period == 0 {
		return [32]byte{}, newSyntaxError(raw, "pattern has zero period, no stable fingerprint", "")
	}
	if mass%period != 0 {
		return [32]byte{}, newSyntaxError(raw, "pattern has non-integer cardinality, no stable fingerprint", "")
	}

	ranges, err := rangeinfer.Infer(normGroups, handsEffective, opts.MaximumLength)
	if err != nil {
		return [32]byte{}, newRangeError(raw, err.Error())
	}
	if _, valid := solver.Solve(solver.BuildDelta(normGroups, handsEffective, ranges), ranges, period); !valid {
		return [32]byte{}, newSyntaxError(raw, "pattern is not a valid juggling pattern, no stable fingerprint", "")
	}

	digest, err := canon.Fingerprint(normGroups, handsEffective)
	if err != nil {
		return [32]byte{}, err
	}
	return digest, nil
}

// decompose runs grammar recognition, chain decomposition, the semantic
// gate, and hand-count inference. groups is returned already mutated with
// Hand assignments.
func decompose(raw string, opts Options) (groups []ast.Group, hands *int, err error) {
	p, perr := parser.Parse(raw)
	if perr != nil {
		se, ok := perr.(*parser.SyntaxError)
		if !ok {
			return nil, nil, newSyntaxError(raw, perr.Error(), "")
		}
		return nil, nil, newSyntaxError(raw, se.Message, se.Fragment)
	}

	if !opts.AllowTheoreticalPatterns {
		if gate.RawContainsNegative(raw) {
			return nil, nil, newTheoreticalError(raw, "negative values or quantities require AllowTheoreticalPatterns")
		}
		if gate.CrossingZero(p) {
			return nil, nil, newTheoreticalError(raw, "zero-value crossing throws require AllowTheoreticalPatterns")
		}
	}

	hands, herr := handinfer.Resolve(p.Groups)
	if herr != nil {
		he := herr.(*handinfer.Error)
		switch he.Kind {
		case handinfer.InconsistentHandCount:
			return nil, nil, newHandCountError(raw, he.Message)
		case handinfer.OffsetExceedsHands:
			return nil, nil, newOffsetError(raw, he.Message)
		default:
			return nil, nil, newSuppressionError(raw, he.Message)
		}
	}

	return p.Groups, hands, nil
}

// preprocess strips whitespace and lower-cases the input.
func preprocess(pattern string) string {
	var b strings.Builder
	for _, r := range pattern {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		b.WriteRune(r)
	}
	return strings.ToLower(b.String())
}
