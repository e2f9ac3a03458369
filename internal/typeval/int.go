package typeval

import (
	"context"
	"encoding/json"
	"fmt"
)

// Int wraps a 64-bit integer value.
type Int struct {
	value int64
}

// NewInt wraps an integer.
func NewInt(v int64) *Int {
	return &Int{value: v}
}

// Value returns the wrapped integer.
func (v *Int) Value() int64 {
	if v == nil {
		return 0
	}
	return v.value
}

// Equal reports structural equality on the wrapped value.
func (v *Int) Equal(other *Int) bool {
	if v == nil || other == nil {
		return v == other
	}
	return v.value == other.value
}

// Kind implements Value.
func (v *Int) Kind() Kind { return KindInt }

// IsAbsent implements Value.
func (v *Int) IsAbsent() bool { return v == nil }

// ValidateFormat always passes: every bit pattern is a valid integer.
func (v *Int) ValidateFormat(param, tool string) Result {
	return OK()
}

// ValidateRequired always passes: zero is a present value for numbers.
func (v *Int) ValidateRequired(param, tool string) Result {
	return OK()
}

// ValidateRange compares the wrapped integer against coerced bounds.
func (v *Int) ValidateRange(spec RangeSpec, param, tool string) Result {
	min, err := toInt64(spec.Min.Raw())
	if err != nil {
		return conversionError(CodeIntConversionError, param, tool, spec.Min.Raw(), "integer")
	}
	max, err := toInt64(spec.Max.Raw())
	if err != nil {
		return conversionError(CodeIntConversionError, param, tool, spec.Max.Raw(), "integer")
	}

	ok := v.value > min && v.value < max
	if spec.Inclusive {
		ok = v.value >= min && v.value <= max
	}
	if ok {
		return OK()
	}

	msg := spec.Message
	if msg == "" {
		msg = fmt.Sprintf("%s must be %s %d and %d, got %d", param, rangeWord(spec.Inclusive), min, max, v.value)
	}
	clamped := max
	if v.value <= min {
		clamped = min
	}
	return fail(
		Error{Param: param, Code: CodeOutOfRange, Message: msg, Value: v.value, Tool: tool},
		Suggestion{Param: param, Text: fmt.Sprintf("use a value closer to %d", clamped), Example: clamped},
	)
}

// ValidateExistence implements Value with the default external lookup.
func (v *Int) ValidateExistence(ctx context.Context, check ExistenceCheck, param, tool string) Result {
	return checkExistence(ctx, check, param, tool, v.value)
}

// MarshalJSON renders the wrapped value as a JSON number.
func (v *Int) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.value)
}

// UnmarshalJSON is the controlled setter used during deserialization.
func (v *Int) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &v.value)
}
