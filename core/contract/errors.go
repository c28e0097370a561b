package contract

import (
	"errors"
	"fmt"
)

// Sentinel errors classify every contract failure. Each Violation matches
// exactly one of them through errors.Is, so callers can branch on the
// failure class without parsing messages.
var (
	// ErrArity indicates a malformed call shape: a missing required
	// parameter, an unknown parameter name, or too many positional values.
	ErrArity = errors.New("arity violation")

	// ErrType indicates a supplied value of the wrong runtime kind.
	ErrType = errors.New("type violation")

	// ErrValue indicates a value of the right kind with invalid content:
	// out of range, malformed structure, duplicate entries, or a broken
	// cross-field relationship.
	ErrValue = errors.New("value violation")
)

// Kind enumerates the violation classes.
type Kind uint8

const (
	KindArity Kind = iota + 1
	KindType
	KindValue
)

// String returns the lowercase class name.
func (k Kind) String() string {
	switch k {
	case KindArity:
		return "arity"
	case KindType:
		return "type"
	case KindValue:
		return "value"
	default:
		return "unknown"
	}
}

func (k Kind) sentinel() error {
	switch k {
	case KindArity:
		return ErrArity
	case KindType:
		return ErrType
	case KindValue:
		return ErrValue
	default:
		return nil
	}
}

// Violation is the immutable failure record produced when a contract
// predicate is unmet. It names the operation, the offending parameter,
// and the expected shape. A Violation always aborts the call; the wrapped
// operation never runs.
type Violation struct {
	Kind    Kind
	Op      string
	Param   string
	Message string
}

// Error implements the error interface.
func (v *Violation) Error() string {
	switch {
	case v.Op != "" && v.Param != "":
		return fmt.Sprintf("%s: %s: %s", v.Op, v.Param, v.Message)
	case v.Op != "":
		return fmt.Sprintf("%s: %s", v.Op, v.Message)
	case v.Param != "":
		return fmt.Sprintf("%s: %s", v.Param, v.Message)
	default:
		return v.Message
	}
}

// Is matches the violation against its class sentinel, enabling
// errors.Is(err, contract.ErrValue) style checks.
func (v *Violation) Is(target error) bool {
	return target == v.Kind.sentinel()
}

// Typef builds a type-class Violation for the named parameter.
func Typef(param, format string, args ...any) *Violation {
	return &Violation{Kind: KindType, Param: param, Message: fmt.Sprintf(format, args...)}
}

// Valuef builds a value-class Violation for the named parameter.
func Valuef(param, format string, args ...any) *Violation {
	return &Violation{Kind: KindValue, Param: param, Message: fmt.Sprintf(format, args...)}
}
