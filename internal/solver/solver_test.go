package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/varkor/siteswap/internal/ast"
	"github.com/varkor/siteswap/internal/rangeinfer"
)

func explicitGroup(quantity int, values ...int) ast.Group {
	actions := make([]ast.Action, len(values))
	for i, v := range values {
		actions[i] = ast.Action{Events: []ast.Event{{Value: v, Quantity: 1}}}
	}
	return ast.Group{Actions: actions, Quantity: quantity}
}

// TestSolveValidThreeBallCascade exercises the canonical "3" pattern: one
// hand, period 1, no collision.
func TestSolveValidThreeBallCascade(t *testing.T) {
	groups := []ast.Group{explicitGroup(1, 3)}
	ranges, err := rangeinfer.Infer(groups, 1, 100)
	require.NoError(t, err)

	deltas := BuildDelta(groups, 1, ranges)
	states, valid := Solve(deltas, ranges, 1)
	require.True(t, valid)
	assert.NotEmpty(t, states[0])
}

// TestSolveCollisionIsInvalid exercises "321": a genuine collision at beat
// 3 makes the zero-outside-window assumption self-inconsistent.
func TestSolveCollisionIsInvalid(t *testing.T) {
	groups := []ast.Group{
		explicitGroup(1, 3),
		explicitGroup(1, 2),
		explicitGroup(1, 1),
	}
	// "321" is one-handed with groups laid consecutively; collapse isn't
	// relevant here since BuildDelta/Infer assume the final group list.
	ranges, err := rangeinfer.Infer(groups, 1, 100)
	require.NoError(t, err)
	deltas := BuildDelta(groups, 1, ranges)
	_, valid := Solve(deltas, ranges, 3)
	assert.False(t, valid)
}

func TestClassifyGroundState(t *testing.T) {
	groups := []ast.Group{explicitGroup(1, 3)}
	ranges, err := rangeinfer.Infer(groups, 1, 100)
	require.NoError(t, err)
	deltas := BuildDelta(groups, 1, ranges)
	states, valid := Solve(deltas, ranges, 1)
	require.True(t, valid)

	ground := Classify(states, ranges, 3, 1)
	assert.True(t, ground)
}

func TestClassifyExcitedState(t *testing.T) {
	groups := []ast.Group{explicitGroup(1, 9), explicitGroup(1, 1)}
	ranges, err := rangeinfer.Infer(groups, 1, 100)
	require.NoError(t, err)
	deltas := BuildDelta(groups, 1, ranges)
	states, valid := Solve(deltas, ranges, 2)
	require.True(t, valid)

	ground := Classify(states, ranges, 5, 1)
	assert.False(t, ground)
}
