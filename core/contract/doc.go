// Package contract provides boundary validation for text-processing
// operations through declared call descriptors and per-operation predicate
// sets. Each guarded operation resolves caller-supplied arguments against an
// ordered parameter declaration, evaluates its contract, and either fails
// with a descriptive Violation or hands the resolved bundle to the
// operation unchanged.
//
// # Features
//
//   - Declarative call descriptors: ordered (name, required, default)
//     parameter lists resolved once per call
//   - Positional and keyword argument binding with default application
//   - Fail-fast predicate evaluation: the first unmet rule aborts the call
//   - Three-class violation taxonomy (arity, type, value) matchable with
//     errors.Is
//   - Reusable rule builders for type membership, integer ranges,
//     uniqueness, set disjointness, structural pairs, and callables
//   - Sanctioned normalizations only: scalar-to-sequence coercion and
//     write-back of dependent defaults
//   - Pure guards: no shared mutable state across calls, no side effects
//     beyond the returned violation
//
// # Declaring an Operation
//
// An operation registers its descriptor and contract once, typically from
// the owning package's init:
//
//	import "github.com/dmitrymomot/textkit/core/contract"
//
//	func init() {
//		contract.Register(contract.Descriptor{
//			Op: "vocab.from_list",
//			Params: []contract.Param{
//				{Name: "word_list", Required: true},
//				{Name: "special_tokens"},
//				{Name: "special_first", Default: true},
//			},
//		}, func(b contract.Bundle) error {
//			return contract.Apply(
//				contract.UniqueStrings(b, "word_list"),
//				contract.Present(b, "special_tokens", contract.UniqueStrings(b, "special_tokens")),
//				contract.Present(b, "special_tokens", contract.Disjoint(b, "word_list", "special_tokens")),
//				contract.IsBool(b, "special_first"),
//			)
//		})
//	}
//
// # Guarding a Call
//
// The operation's entry point guards before executing:
//
//	b, err := contract.Guard("vocab.from_list", []any{words, special, true}, nil)
//	if err != nil {
//		return nil, err // the operation never runs
//	}
//	// proceed with b.StringSlice("word_list"), ...
//
// # Violation Handling
//
// Every failure is a *Violation carrying the operation, the offending
// parameter, and the unmet constraint. Callers branch on the class:
//
//	if errors.Is(err, contract.ErrArity) { ... } // malformed call shape
//	if errors.Is(err, contract.ErrType)  { ... } // wrong value kind
//	if errors.Is(err, contract.ErrValue) { ... } // right kind, bad content
//
// Violations are synchronous and fatal to the call: there is no retry, no
// recovery, and no partial success.
package contract
