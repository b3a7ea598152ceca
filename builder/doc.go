// Package builder provides “functional‐options”‐style constructors for
// walker fixtures: deterministic node lists with well-known cycle structure,
// used by tests, benchmarks and examples.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:     a function that mutates builderConfig before use.
//     – builderConfig:     holds RNG and ID‐scheme.
//   - Node‐ID schemes (IDFn implementations):
//     – DefaultIDFn:       decimal strings ("0","1",…).
//     – SymbolIDFn:        single letters ("A","B",…).
//     – ExcelColumnIDFn:   Excel‐style columns ("A","Z","AA",…).
//     – TriLetterIDFn:     fixed-width labels ("AAA","AAB",…,"ZZZ").
//     – SymbolNumberIDFn:  prefixed decimals ("v0","v1",…).
//   - Constructors (Constructor implementations):
//     – Ring(n):           L walks forward, R walks backward; period n.
//     – Chain(n):          reaches a self-looping sink after n-1 steps.
//     – Lollipop(t, l):    pre-period t, node period l, regardless of tape.
//     – Random(n):         seeded random successors.
//
// Constructors compose: BuildNodes(opts, Ring(3), Lollipop(2, 4)) numbers the
// second block after the first, so IDs never collide.
//
// Guarantees:
//
//   - Fast‐fail on invalid option parameters via panics in option‐constructors.
//   - Sentinel errors (ErrTooFewVertices, ErrNeedRandSource, ErrConstructFailed)
//     for invalid build parameters, wrapped with the constructor name.
package builder
