// Package canon computes a content fingerprint for a normalised pattern,
// independent of the cosmetic choices its string rendering makes. It is
// a supplemental feature for callers that want to deduplicate or cache
// by pattern identity rather than by rendered text.
package canon

import (
	"github.com/fxamacker/cbor/v2"
	"golang.org/x/crypto/blake2b"

	"github.com/varkor/siteswap/internal/ast"
)

// projection is the canonical CBOR shape hashed for a pattern: plain,
// exported, deterministically ordered fields only, independent of
// internal AST representation choices (a two-pass canonicalize-then-hash
// design: project to a canonical shape, then cbor.Marshal it in
// canonical/deterministic mode before hashing).
type projection struct {
	Hands int                `cbor:"hands"`
	Groups []groupProjection `cbor:"groups"`
}

type groupProjection struct {
	Actions     [][]eventProjection `cbor:"actions"`
	Suppression int                 `cbor:"suppression"`
	Quantity    int                 `cbor:"quantity"`
}

type eventProjection struct {
	Value    int `cbor:"value"`
	Offset   int `cbor:"offset"`
	Quantity int `cbor:"quantity"`
}

// Fingerprint hashes a fully-normalised group list (post implicit-to-
// explicit conversion) to a content-addressable digest: two patterns
// with identical post-normalisation semantics, however they were
// originally written, hash identically.
func Fingerprint(groups []ast.Group, handsEffective int) ([32]byte, error) {
	p := projection{Hands: handsEffective, Groups: make([]groupProjection, len(groups))}
	for i, g := range groups {
		gp := groupProjection{Suppression: g.Suppression, Quantity: g.Quantity}
		gp.Actions = make([][]eventProjection, len(g.Actions))
		for j, a := range g.Actions {
			ep := make([]eventProjection, len(a.Events))
			for k, e := range a.Events {
				ep[k] = eventProjection{Value: e.Value, Offset: e.Offset, Quantity: e.Quantity}
			}
			gp.Actions[j] = ep
		}
		p.Groups[i] = gp
	}

	opts := cbor.CanonicalEncOptions()
	mode, err := opts.EncMode()
	if err != nil {
		return [32]byte{}, err
	}
	encoded, err := mode.Marshal(p)
	if err != nil {
		return [32]byte{}, err
	}

	return blake2b.Sum256(encoded), nil
}
