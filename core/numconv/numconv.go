package numconv

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/dmitrymomot/textkit/core/contract"
)

var (
	// ErrNotANumber is returned when the input text does not parse as a
	// number of the target type.
	ErrNotANumber = errors.New("text is not a number")
	// ErrOutOfRange is returned when the parsed value does not fit the
	// target type.
	ErrOutOfRange = errors.New("number out of range for target type")
)

// DataType is the numeric type text is converted into. Only the listed
// types are accepted; anything else fails the construction contract.
type DataType string

const (
	Int8    DataType = "int8"
	Int16   DataType = "int16"
	Int32   DataType = "int32"
	Int64   DataType = "int64"
	Uint8   DataType = "uint8"
	Uint16  DataType = "uint16"
	Uint32  DataType = "uint32"
	Uint64  DataType = "uint64"
	Float16 DataType = "float16"
	Float32 DataType = "float32"
	Float64 DataType = "float64"
)

// float16Max is the largest finite value representable in IEEE 754 half
// precision.
const float16Max = 65504

const opToNumber = "numconv.to_number"

func init() {
	contract.Register(contract.Descriptor{
		Op:     opToNumber,
		Params: []contract.Param{{Name: "data_type", Required: true}},
	}, func(b contract.Bundle) error {
		return contract.Apply(dataTypeRule(b, "data_type"))
	})
}

// dataTypeRule requires one of the recognized numeric target types.
func dataTypeRule(b contract.Bundle, name string) contract.Rule {
	return func() *contract.Violation {
		dt, ok := b.Value(name).(DataType)
		if !ok {
			return contract.Typef(name, "must be a numeric data type")
		}
		switch dt {
		case Int8, Int16, Int32, Int64, Uint8, Uint16, Uint32, Uint64,
			Float16, Float32, Float64:
			return nil
		default:
			return contract.Valuef(name, "unrecognized numeric data type %q", string(dt))
		}
	}
}

// ToNumber converts decimal text into a numeric value of a fixed target
// type.
type ToNumber struct {
	typ DataType
}

// New builds a guarded converter targeting dt.
func New(dt DataType) (*ToNumber, error) {
	b, err := contract.Guard(opToNumber, []any{dt}, nil)
	if err != nil {
		return nil, err
	}
	return &ToNumber{typ: b.Value("data_type").(DataType)}, nil
}

// DataType reports the conversion target.
func (c *ToNumber) DataType() DataType {
	return c.typ
}

// Convert parses text into the target type. Signed targets return int64,
// unsigned targets uint64, and floating-point targets float64; the value is
// guaranteed to fit the declared width.
func (c *ToNumber) Convert(text string) (any, error) {
	switch c.typ {
	case Int8, Int16, Int32, Int64:
		return c.convertInt(text)
	case Uint8, Uint16, Uint32, Uint64:
		return c.convertUint(text)
	default:
		return c.convertFloat(text)
	}
}

func (c *ToNumber) convertInt(text string) (int64, error) {
	bits := map[DataType]int{Int8: 8, Int16: 16, Int32: 32, Int64: 64}[c.typ]
	n, err := strconv.ParseInt(text, 10, bits)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, fmt.Errorf("%w: %q as %s", ErrOutOfRange, text, c.typ)
		}
		return 0, fmt.Errorf("%w: %q", ErrNotANumber, text)
	}
	return n, nil
}

func (c *ToNumber) convertUint(text string) (uint64, error) {
	bits := map[DataType]int{Uint8: 8, Uint16: 16, Uint32: 32, Uint64: 64}[c.typ]
	n, err := strconv.ParseUint(text, 10, bits)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, fmt.Errorf("%w: %q as %s", ErrOutOfRange, text, c.typ)
		}
		return 0, fmt.Errorf("%w: %q", ErrNotANumber, text)
	}
	return n, nil
}

func (c *ToNumber) convertFloat(text string) (float64, error) {
	bits := 64
	if c.typ == Float16 || c.typ == Float32 {
		bits = 32
	}
	f, err := strconv.ParseFloat(text, bits)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, fmt.Errorf("%w: %q as %s", ErrOutOfRange, text, c.typ)
		}
		return 0, fmt.Errorf("%w: %q", ErrNotANumber, text)
	}
	if c.typ == Float16 && math.Abs(f) > float16Max {
		return 0, fmt.Errorf("%w: %q as %s", ErrOutOfRange, text, c.typ)
	}
	return f, nil
}
