// Package render re-serialises a normalised group list back to
// canonical siteswap text.
package render

import (
	"strconv"
	"strings"

	"github.com/varkor/siteswap/internal/ast"
)

const cutoff = 2

// Pattern renders a fully-normalised group list (post implicit-to-explicit
// conversion) to its canonical string form.
func Pattern(groups []ast.Group, handsEffective int) string {
	var b strings.Builder
	for _, g := range groups {
		renderChainElement(&b, renderGroup(g, handsEffective), g.Quantity)
	}
	return b.String()
}

// renderChainElement implements the "sequences" rule shared by events,
// actions, and groups: repeat the rendering quantity-1 more times, or
// append ^quantity when that would be negative or at least cutoff.
func renderChainElement(b *strings.Builder, rendered string, quantity int) {
	if quantity < 0 || quantity >= cutoff {
		b.WriteString(rendered)
		if quantity != 1 {
			b.WriteByte('^')
			b.WriteString(convertInteger(quantity))
		}
		return
	}
	for i := 0; i < quantity; i++ {
		b.WriteString(rendered)
	}
}

// renderGroup distinguishes genuine explicit tuples from groups that were
// only expanded to hands_effective width by normalize's implicit-to-explicit
// conversion (ast.Group.Implicit survives that conversion precisely so
// this choice can still be made here). A bracketing rule of
// "len(actions)>1 or hands_effective==1" would bracket every group in a
// one-handed pattern (every group there is implicit, and
// hands_effective==1 always holds), contradicting normalising "333" to
// "3"; this renders bare whenever Implicit is set, independent of
// handsEffective (see DESIGN.md).
func renderGroup(g ast.Group, handsEffective int) string {
	if g.Implicit {
		slot := ((g.Hand % handsEffective) + handsEffective) % handsEffective
		return renderAction(g.Actions[slot])
	}

	var b strings.Builder
	b.WriteByte('(')
	for i, a := range g.Actions {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(renderAction(a))
	}
	b.WriteByte(')')
	for i := 0; i < g.Suppression; i++ {
		b.WriteByte('!')
	}
	return b.String()
}

func renderAction(a ast.Action) string {
	if len(a.Events) == 1 && a.Events[0].Quantity == 1 {
		return renderEvent(a.Events[0])
	}
	var b strings.Builder
	b.WriteByte('[')
	for _, e := range a.Events {
		renderChainElement(&b, renderEvent(baseEvent(e)), e.Quantity)
	}
	b.WriteByte(']')
	return b.String()
}

// baseEvent strips quantity to 1 so renderChainElement controls repetition
// without renderEvent double-applying it.
func baseEvent(e ast.Event) ast.Event {
	e.Quantity = 1
	return e
}

func renderEvent(e ast.Event) string {
	var b strings.Builder
	b.WriteString(convertInteger(e.Value))
	switch {
	case e.Offset >= 0 && e.Offset < cutoff:
		for i := 0; i < e.Offset; i++ {
			b.WriteByte('x')
		}
	default:
		b.WriteByte('x')
		b.WriteByte('^')
		b.WriteString(convertInteger(e.Offset))
	}
	return b.String()
}

// convertInteger renders a value in the notation's own alphabet: decimal
// digit, then letter a-o, then braced decimal for anything else.
func convertInteger(n int) string {
	switch {
	case n >= 0 && n < 10:
		return strconv.Itoa(n)
	case n >= 10 && n < 25:
		return string(rune('a' + n - 10))
	default:
		return "{" + strconv.Itoa(n) + "}"
	}
}
