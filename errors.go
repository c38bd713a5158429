package siteswap

import (
	"fmt"
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// ErrorKind tags the reason Analyze refused to even attempt an analysis.
// These are distinct from an analysis that completes and reports
// valid=false: a SiteswapError means the input isn't a siteswap expression
// at all.
type ErrorKind int

const (
	// SyntacticallyInvalid means the grammar rejected the input outright.
	SyntacticallyInvalid ErrorKind = iota
	// TheoreticalDisallowed means the input uses negative values,
	// negative quantities, or a crossing zero-throw while
	// Options.AllowTheoreticalPatterns is false.
	TheoreticalDisallowed
	// InconsistentHandCount means two explicit synchronous tuples in the
	// same pattern have different arity.
	InconsistentHandCount
	// OffsetExceedsHands means an event's crossing offset is not smaller
	// than the effective hand count.
	OffsetExceedsHands
	// InvalidSuppression means a group's suppression count is outside
	// [0, len(actions)).
	InvalidSuppression
	// StateRangeTooLarge means the inferred per-hand beat range exceeds
	// Options.MaximumLength before any solver allocation would occur.
	StateRangeTooLarge
)

// String names the error kind the way callers building "not a siteswap"
// UX expect to see it.
func (k ErrorKind) String() string {
	switch k {
	case SyntacticallyInvalid:
		return "SyntacticallyInvalid"
	case TheoreticalDisallowed:
		return "TheoreticalDisallowed"
	case InconsistentHandCount:
		return "InconsistentHandCount"
	case OffsetExceedsHands:
		return "OffsetExceedsHands"
	case InvalidSuppression:
		return "InvalidSuppression"
	case StateRangeTooLarge:
		return "StateRangeTooLarge"
	default:
		return "Unknown"
	}
}

// SiteswapError is the single tagged error type Analyze raises for
// not-a-siteswap input (as opposed to a well-formed but invalid pattern,
// which comes back as a Result with Valid=false).
type SiteswapError struct {
	Kind        ErrorKind
	Message     string
	Pattern     string // the offending, whitespace-stripped/lower-cased pattern
	Suggestions []string
}

func (e *SiteswapError) Error() string {
	return fmt.Sprintf("%s: %s (pattern %q)", e.Kind, e.Message, e.Pattern)
}

// alphabet is the fixed set of single-byte tokens the grammar recognises;
// used to rank plausible corrections for a rejected fragment.
var alphabet = []string{
	"0", "1", "2", "3", "4", "5", "6", "7", "8", "9",
	"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l", "m", "n", "o",
	"{", "}", "[", "]", "(", ")", ",", "x", "!", "^", "-",
}

// suggest ranks the fixed token alphabet against the rejected fragment and
// returns the closest few candidates. The alphabet is small and fixed, so
// a Levenshtein-ish rank against a one-or-few-byte fragment is cheap and
// meaningful.
func suggest(fragment string) []string {
	if fragment == "" {
		return nil
	}
	ranks, found := fuzzy.RankFindFold(fragment, alphabet)
	if !found {
		return nil
	}
	sort.Sort(ranks)
	out := make([]string, 0, 3)
	for i, r := range ranks {
		if i >= 3 {
			break
		}
		out = append(out, r.Target)
	}
	return out
}

func newSyntaxError(pattern, message, fragment string) *SiteswapError {
	return &SiteswapError{
		Kind:        SyntacticallyInvalid,
		Message:     message,
		Pattern:     pattern,
		Suggestions: suggest(fragment),
	}
}

func newTheoreticalError(pattern, message string) *SiteswapError {
	return &SiteswapError{Kind: TheoreticalDisallowed, Message: message, Pattern: pattern}
}

func newHandCountError(pattern, message string) *SiteswapError {
	return &SiteswapError{Kind: InconsistentHandCount, Message: message, Pattern: pattern}
}

func newOffsetError(pattern, message string) *SiteswapError {
	return &SiteswapError{Kind: OffsetExceedsHands, Message: message, Pattern: pattern}
}

func newSuppressionError(pattern, message string) *SiteswapError {
	return &SiteswapError{Kind: InvalidSuppression, Message: message, Pattern: pattern}
}

func newRangeError(pattern, message string) *SiteswapError {
	return &SiteswapError{Kind: StateRangeTooLarge, Message: message, Pattern: pattern}
}
