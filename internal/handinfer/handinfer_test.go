package handinfer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/varkor/siteswap/internal/ast"
)

func action(v int) ast.Action {
	return ast.Action{Events: []ast.Event{{Value: v, Quantity: 1}}}
}

func TestResolveNoExplicitTupleIsOneHanded(t *testing.T) {
	groups := []ast.Group{
		{Actions: []ast.Action{action(5)}, Implicit: true},
		{Actions: []ast.Action{action(3)}, Implicit: true},
	}
	hands, err := Resolve(groups)
	require.NoError(t, err)
	assert.Nil(t, hands)
}

func TestResolveExplicitTupleSetsHandCount(t *testing.T) {
	groups := []ast.Group{
		{Actions: []ast.Action{action(4), action(4)}},
	}
	hands, err := Resolve(groups)
	require.NoError(t, err)
	require.NotNil(t, hands)
	assert.Equal(t, 2, *hands)
}

func TestResolveInconsistentHandCount(t *testing.T) {
	groups := []ast.Group{
		{Actions: []ast.Action{action(4), action(4)}},
		{Actions: []ast.Action{action(4), action(4), action(4)}},
	}
	_, err := Resolve(groups)
	require.Error(t, err)
	he := err.(*Error)
	assert.Equal(t, InconsistentHandCount, he.Kind)
}

func TestResolveOffsetExceedsHands(t *testing.T) {
	groups := []ast.Group{
		{Actions: []ast.Action{
			{Events: []ast.Event{{Value: 6, Offset: 2, Quantity: 1}}},
			{Events: []ast.Event{{Value: 4, Offset: 2, Quantity: 1}}},
		}},
	}
	_, err := Resolve(groups)
	require.Error(t, err)
	he := err.(*Error)
	assert.Equal(t, OffsetExceedsHands, he.Kind)
}

func TestResolveInvalidSuppression(t *testing.T) {
	groups := []ast.Group{
		{Actions: []ast.Action{action(4), action(4)}, Suppression: 2},
	}
	_, err := Resolve(groups)
	require.Error(t, err)
	he := err.(*Error)
	assert.Equal(t, InvalidSuppression, he.Kind)
}

// TestAssignHandsRotatesAroundExplicitTuples exercises the rotating hand
// counter: it resets to 0 after an explicit tuple and increments per
// implicit group, with a leading contiguous run re-based to close the
// cycle.
func TestAssignHandsRotatesAroundExplicitTuples(t *testing.T) {
	groups := []ast.Group{
		{Actions: []ast.Action{action(3)}, Implicit: true},       // leading implicit
		{Actions: []ast.Action{action(4), action(4)}},            // explicit, resets counter
		{Actions: []ast.Action{action(5)}, Implicit: true},       // hand 0
		{Actions: []ast.Action{action(2)}, Implicit: true},       // hand 1
	}
	hands, err := Resolve(groups)
	require.NoError(t, err)
	require.NotNil(t, hands)
	assert.Equal(t, 2, *hands)
	assert.Equal(t, 0, groups[2].Hand)
	assert.Equal(t, 1, groups[3].Hand)
	// Two trailing implicits after the tuple (count=2) means the leading
	// run of 1 implicit re-bases to continue that count: (2+0)%2 = 0.
	assert.Equal(t, 0, groups[0].Hand)
}
