package siteswap_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/varkor/siteswap"
)

// TestIdempotentNormalisation checks that re-analysing a valid pattern's
// Normalised string reproduces the same Normalised string.
func TestIdempotentNormalisation(t *testing.T) {
	for _, pattern := range []string{"744", "333", "531", "91", "[43]23", "b4^6", "(4,4)", "(4,4)!", "(3,0)!(0,3)!"} {
		pattern := pattern
		t.Run(pattern, func(t *testing.T) {
			first, err := siteswap.Analyze(pattern, siteswap.DefaultOptions())
			require.NoError(t, err)
			require.True(t, first.Valid)

			second, err := siteswap.Analyze(first.Normalised, siteswap.DefaultOptions())
			require.NoError(t, err)
			require.True(t, second.Valid)

			assert.Equal(t, first.Normalised, second.Normalised)
		})
	}
}

// TestPeriodRepetitionInvariant checks that repeating a pattern's text k
// times yields the same period, cardinality, ground state, and
// normalised form.
func TestPeriodRepetitionInvariant(t *testing.T) {
	for _, pattern := range []string{"3", "531", "441"} {
		pattern := pattern
		t.Run(pattern, func(t *testing.T) {
			once, err := siteswap.Analyze(pattern, siteswap.DefaultOptions())
			require.NoError(t, err)
			require.True(t, once.Valid)

			repeated, err := siteswap.Analyze(strings.Repeat(pattern, 3), siteswap.DefaultOptions())
			require.NoError(t, err)
			require.True(t, repeated.Valid)

			if diff := cmp.Diff(once.Period, repeated.Period); diff != "" {
				t.Errorf("period mismatch (-once +repeated):\n%s", diff)
			}
			assert.Equal(t, once.Cardinality, repeated.Cardinality)
			assert.Equal(t, once.Ground, repeated.Ground)
			assert.Equal(t, once.Normalised, repeated.Normalised)
		})
	}
}

// TestCardinalityTimesPeriodEqualsMass checks that cardinality times
// period equals the total thrown value mass over one period.
func TestCardinalityTimesPeriodEqualsMass(t *testing.T) {
	cases := []struct {
		pattern string
		mass    int
	}{
		{"744", 15}, // 7+4+4
		{"531", 9},  // 5+3+1
		{"91", 10},  // 9+1
	}
	for _, c := range cases {
		c := c
		t.Run(c.pattern, func(t *testing.T) {
			result, err := siteswap.Analyze(c.pattern, siteswap.DefaultOptions())
			require.NoError(t, err)
			require.True(t, result.Valid)
			assert.Equal(t, c.mass, result.Cardinality*result.Period)
		})
	}
}

// TestExcitedIsGroundComplement checks that Excited is always the
// logical complement of Ground.
func TestExcitedIsGroundComplement(t *testing.T) {
	for _, pattern := range []string{"744", "91", "[43]23", "531"} {
		result, err := siteswap.Analyze(pattern, siteswap.DefaultOptions())
		require.NoError(t, err)
		require.True(t, result.Valid)
		assert.Equal(t, !result.Ground, result.Excited)
	}
}

func TestOptionsValidateRejectsNegativeMaximumLength(t *testing.T) {
	_, err := siteswap.Analyze("744", siteswap.Options{MaximumLength: -1})
	require.Error(t, err)
}

func TestFingerprintStableAcrossEquivalentRenderings(t *testing.T) {
	a, err := siteswap.Fingerprint("333", siteswap.DefaultOptions())
	require.NoError(t, err)
	b, err := siteswap.Fingerprint("3^3", siteswap.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestFingerprintDiffersForDifferentPatterns(t *testing.T) {
	a, err := siteswap.Fingerprint("531", siteswap.DefaultOptions())
	require.NoError(t, err)
	b, err := siteswap.Fingerprint("744", siteswap.DefaultOptions())
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestFingerprintRejectsEmptyPattern(t *testing.T) {
	_, err := siteswap.Fingerprint("", siteswap.DefaultOptions())
	require.Error(t, err)
}

func TestSuggestionsPopulatedOnSyntaxError(t *testing.T) {
	_, err := siteswap.Analyze("{a}", siteswap.DefaultOptions())
	require.Error(t, err)
	var se *siteswap.SiteswapError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, siteswap.SyntacticallyInvalid, se.Kind)
	assert.Equal(t, `{a}`, se.Pattern)
	assert.NotEmpty(t, se.Suggestions)
}
