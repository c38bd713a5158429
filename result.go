package siteswap

// Result is the observable output of Analyze.
type Result struct {
	// Pattern is the input after whitespace-stripping and lower-casing,
	// or "ε" for the empty pattern.
	Pattern string
	// Normalised is the canonical re-serialisation; only meaningful when
	// Valid is true.
	Normalised string
	Valid      bool
	// Period and Cardinality are signed; Period is 0 exactly when Valid
	// is false and the pattern was empty or had zero net beats.
	Period      int
	Cardinality int
	// Hands is nil when no explicit synchronous tuple was seen anywhere
	// in the pattern (one-handed).
	Hands    *int
	Ground   bool
	Excited  bool
}
