package contract

import (
	"errors"
	"fmt"
	"sync"
)

// Contract is the validation predicate set bound to one operation. It runs
// to completion before the wrapped operation executes, is pure apart from
// the two sanctioned bundle normalizations, and returns the first violation
// it finds.
type Contract func(Bundle) error

type operation struct {
	desc  Descriptor
	check Contract
}

var (
	registryMu sync.RWMutex
	registry   = make(map[string]operation)
)

// Register declares a guarded operation. The contract may be nil for
// operations whose guard performs arity resolution only. Register panics on
// an empty operation name or a duplicate registration: both are programmer
// errors that must surface at startup, not at call time.
func Register(d Descriptor, c Contract) {
	if d.Op == "" {
		panic("contract: descriptor must name an operation")
	}
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, dup := registry[d.Op]; dup {
		panic(fmt.Sprintf("contract: operation %q already registered", d.Op))
	}
	registry[d.Op] = operation{desc: d, check: c}
}

// Guard resolves the raw arguments of one call against the named
// operation's declaration and evaluates its contract. On success it returns
// the resolved bundle, normalized where the contract sanctions it, ready to
// be handed to the operation verbatim. On failure it returns a Violation
// and the operation must not run.
func Guard(op string, args []any, kwargs map[string]any) (Bundle, error) {
	registryMu.RLock()
	entry, ok := registry[op]
	registryMu.RUnlock()
	if !ok {
		return nil, &Violation{Kind: KindArity, Op: op, Message: "unknown operation"}
	}

	b, err := entry.desc.Bind(args, kwargs)
	if err != nil {
		return nil, err
	}

	if entry.check != nil {
		if err := entry.check(b); err != nil {
			var v *Violation
			if errors.As(err, &v) && v.Op == "" {
				v.Op = op
			}
			return nil, err
		}
	}

	return b, nil
}
