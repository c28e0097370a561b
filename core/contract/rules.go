package contract

import (
	"fmt"
	"math"
	"reflect"
	"sort"
	"strings"
)

// IntMax is the upper bound for 32-bit sized parameters such as vocabulary
// sizes and token identifiers.
const IntMax = math.MaxInt32

// Rule is a single field-level predicate. It returns nil on pass and the
// Violation describing the unmet constraint on failure. Rules are evaluated
// in declaration order and short-circuit on the first failure.
type Rule func() *Violation

// Apply evaluates rules in order and returns the first violation, if any.
// Partial validation is never surfaced as success.
func Apply(rules ...Rule) error {
	for _, r := range rules {
		if v := r(); v != nil {
			return v
		}
	}
	return nil
}

// Present gates a rule on the parameter being supplied: when the bound value
// is nil the gated rule passes vacuously.
func Present(b Bundle, name string, r Rule) Rule {
	return func() *Violation {
		if b.IsNil(name) {
			return nil
		}
		return r()
	}
}

// Required fails when the parameter was resolved to nil.
func Required(b Bundle, name string) Rule {
	return func() *Violation {
		if b.IsNil(name) {
			return Valuef(name, "is not provided")
		}
		return nil
	}
}

// IsString requires the bound value to be a string.
func IsString(b Bundle, name string) Rule {
	return func() *Violation {
		if _, ok := b[name].(string); !ok {
			return Typef(name, "must be a string, got %s", kindOf(b[name]))
		}
		return nil
	}
}

// IsBool requires the bound value to be a bool.
func IsBool(b Bundle, name string) Rule {
	return func() *Violation {
		if _, ok := b[name].(bool); !ok {
			return Typef(name, "must be a boolean, got %s", kindOf(b[name]))
		}
		return nil
	}
}

// IsInt requires the bound value to be of any integer kind.
func IsInt(b Bundle, name string) Rule {
	return func() *Violation {
		if _, ok := intValue(b[name]); !ok {
			return Typef(name, "must be an integer, got %s", kindOf(b[name]))
		}
		return nil
	}
}

// IsStringSlice requires the bound value to be a []string.
func IsStringSlice(b Bundle, name string) Rule {
	return func() *Violation {
		if _, ok := b[name].([]string); !ok {
			return Typef(name, "must be a list of strings, got %s", kindOf(b[name]))
		}
		return nil
	}
}

// InRange requires an integer value within [lo, hi] inclusive.
func InRange(b Bundle, name string, lo, hi int64) Rule {
	return func() *Violation {
		n, ok := intValue(b[name])
		if !ok {
			return Typef(name, "must be an integer, got %s", kindOf(b[name]))
		}
		if n < lo || n > hi {
			return Valuef(name, "must be within [%d, %d], got %d", lo, hi, n)
		}
		return nil
	}
}

// IsUint32 requires a non-negative integer that fits in 32 bits.
func IsUint32(b Bundle, name string) Rule {
	return InRange(b, name, 0, math.MaxUint32)
}

// Positive requires an integer value strictly greater than zero.
func Positive(b Bundle, name string) Rule {
	return func() *Violation {
		n, ok := intValue(b[name])
		if !ok {
			return Typef(name, "must be an integer, got %s", kindOf(b[name]))
		}
		if n <= 0 {
			return Valuef(name, "must be a positive integer, got %d", n)
		}
		return nil
	}
}

// UniqueStrings requires a []string without duplicate entries. The failure
// message names the first duplicated word.
func UniqueStrings(b Bundle, name string) Rule {
	return func() *Violation {
		words, ok := b[name].([]string)
		if !ok {
			return Typef(name, "must be a list of strings, got %s", kindOf(b[name]))
		}
		seen := make(map[string]struct{}, len(words))
		for _, w := range words {
			if _, dup := seen[w]; dup {
				return Valuef(name, "contains duplicate word: %q", w)
			}
			seen[w] = struct{}{}
		}
		return nil
	}
}

// Disjoint requires the two []string parameters to share no entries. The
// failure message lists the offending intersection.
func Disjoint(b Bundle, first, second string) Rule {
	return func() *Violation {
		a, ok := b[first].([]string)
		if !ok {
			return Typef(first, "must be a list of strings, got %s", kindOf(b[first]))
		}
		c, ok := b[second].([]string)
		if !ok {
			return Typef(second, "must be a list of strings, got %s", kindOf(b[second]))
		}
		set := make(map[string]struct{}, len(a))
		for _, w := range a {
			set[w] = struct{}{}
		}
		var common []string
		for _, w := range c {
			if _, shared := set[w]; shared {
				common = append(common, w)
			}
		}
		if len(common) > 0 {
			sort.Strings(common)
			return Valuef(second, "%s and %s contain duplicate words: {%s}",
				first, second, strings.Join(common, ", "))
		}
		return nil
	}
}

// IsPad requires a (token, width) pair: a two-element sequence holding a
// string and an integer.
func IsPad(b Bundle, name string) Rule {
	return func() *Violation {
		pair, ok := b[name].([]any)
		if !ok || len(pair) != 2 {
			return Valuef(name, "must be a (string, int) pair of pad token and pad width")
		}
		if _, ok := pair[0].(string); !ok {
			return Valuef(name, "must be a (string, int) pair of pad token and pad width")
		}
		if _, ok := intValue(pair[1]); !ok {
			return Valuef(name, "must be a (string, int) pair of pad token and pad width")
		}
		return nil
	}
}

// PadWidthNonNegative requires the width element of an already shape-checked
// pad pair to be zero or greater.
func PadWidthNonNegative(b Bundle, name string) Rule {
	return func() *Violation {
		pair, ok := b[name].([]any)
		if !ok || len(pair) != 2 {
			return Valuef(name, "must be a (string, int) pair of pad token and pad width")
		}
		n, ok := intValue(pair[1])
		if !ok {
			return Valuef(name, "must be a (string, int) pair of pad token and pad width")
		}
		if n < 0 {
			return Valuef(name, "pad width must not be negative, got %d", n)
		}
		return nil
	}
}

// FreqRangeRule requires a two-element sequence of optional integers
// (lo, hi) satisfying 0 <= lo <= hi. Either bound may be nil to leave the
// range open on that side.
func FreqRangeRule(b Bundle, name string) Rule {
	return func() *Violation {
		pair, ok := b[name].([]any)
		if !ok {
			return Typef(name, "must be a pair of two integers or an integer and a nil")
		}
		if len(pair) != 2 {
			return Valuef(name, "must be a pair of two integers or an integer and a nil")
		}
		for _, bound := range pair {
			if bound == nil {
				continue
			}
			if _, ok := intValue(bound); !ok {
				return Valuef(name, "must be a pair of two integers or an integer and a nil")
			}
		}
		lo, hasLo := intValue(pair[0])
		hi, hasHi := intValue(pair[1])
		if hasLo && lo < 0 {
			return Valuef(name, "range [a, b] should satisfy 0 <= a <= b, got a=%d", lo)
		}
		if hasLo && hasHi && lo > hi {
			return Valuef(name, "range [a, b] should satisfy 0 <= a <= b, got a=%d b=%d", lo, hi)
		}
		return nil
	}
}

// IsCallable requires the bound value to be a non-nil function.
func IsCallable(b Bundle, name string) Rule {
	return func() *Violation {
		v := b[name]
		if v == nil {
			return Typef(name, "must be a callable function, got nil")
		}
		rv := reflect.ValueOf(v)
		if rv.Kind() != reflect.Func || rv.IsNil() {
			return Typef(name, "must be a callable function, got %s", kindOf(v))
		}
		return nil
	}
}

// kindOf describes a value's runtime kind for violation messages.
func kindOf(v any) string {
	if v == nil {
		return "nil"
	}
	return fmt.Sprintf("%T", v)
}
