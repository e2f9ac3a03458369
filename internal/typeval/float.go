package typeval

import (
	"context"
	"encoding/json"
	"fmt"
	"math"

	"github.com/spf13/cast"
)

// Float wraps a single-precision floating point value. Suggestions are
// formatted to two decimal places.
type Float struct {
	value float32
}

// NewFloat wraps a single-precision float.
func NewFloat(v float32) *Float {
	return &Float{value: v}
}

// Value returns the wrapped float.
func (v *Float) Value() float32 {
	if v == nil {
		return 0
	}
	return v.value
}

// Equal reports structural equality on the wrapped value.
func (v *Float) Equal(other *Float) bool {
	if v == nil || other == nil {
		return v == other
	}
	return v.value == other.value
}

// Kind implements Value.
func (v *Float) Kind() Kind { return KindFloat }

// IsAbsent implements Value.
func (v *Float) IsAbsent() bool { return v == nil }

// ValidateFormat rejects the NaN and infinity sentinels.
func (v *Float) ValidateFormat(param, tool string) Result {
	f := float64(v.value)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return fail(
			Error{Param: param, Code: CodeInvalidFloat, Message: param + " is not a finite number", Value: v.value, Tool: tool},
			Suggestion{Param: param, Text: "supply a finite numeric value for " + param, Example: float32(0)},
		)
	}
	return OK()
}

// ValidateRequired always passes: zero is a present value for numbers.
func (v *Float) ValidateRequired(param, tool string) Result {
	return OK()
}

// ValidateRange compares the wrapped float against coerced bounds.
func (v *Float) ValidateRange(spec RangeSpec, param, tool string) Result {
	min, err := cast.ToFloat32E(spec.Min.Raw())
	if err != nil {
		return conversionError(CodeFloatConversionError, param, tool, spec.Min.Raw(), "float")
	}
	max, err := cast.ToFloat32E(spec.Max.Raw())
	if err != nil {
		return conversionError(CodeFloatConversionError, param, tool, spec.Max.Raw(), "float")
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
		msg = fmt.Sprintf("%s must be %s %.2f and %.2f, got %.2f", param, rangeWord(spec.Inclusive), min, max, v.value)
	}
	clamped := max
	if v.value <= min {
		clamped = min
	}
	return fail(
		Error{Param: param, Code: CodeOutOfRange, Message: msg, Value: v.value, Tool: tool},
		Suggestion{Param: param, Text: fmt.Sprintf("use a value closer to %.2f", clamped), Example: clamped},
	)
}

// ValidateExistence implements Value with the default external lookup.
func (v *Float) ValidateExistence(ctx context.Context, check ExistenceCheck, param, tool string) Result {
	return checkExistence(ctx, check, param, tool, v.value)
}

// MarshalJSON renders the wrapped value as a JSON number.
func (v *Float) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.value)
}

// UnmarshalJSON is the controlled setter used during deserialization.
func (v *Float) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &v.value)
}

// Double wraps a double-precision floating point value. Suggestions are
// formatted to four decimal places.
type Double struct {
	value float64
}

// NewDouble wraps a double-precision float.
func NewDouble(v float64) *Double {
	return &Double{value: v}
}

// Value returns the wrapped double.
func (v *Double) Value() float64 {
	if v == nil {
		return 0
	}
	return v.value
}

// Equal reports structural equality on the wrapped value.
func (v *Double) Equal(other *Double) bool {
	if v == nil || other == nil {
		return v == other
	}
	return v.value == other.value
}

// Kind implements Value.
func (v *Double) Kind() Kind { return KindDouble }

// IsAbsent implements Value.
func (v *Double) IsAbsent() bool { return v == nil }

// ValidateFormat rejects the NaN and infinity sentinels.
func (v *Double) ValidateFormat(param, tool string) Result {
	if math.IsNaN(v.value) || math.IsInf(v.value, 0) {
		return fail(
			Error{Param: param, Code: CodeInvalidDouble, Message: param + " is not a finite number", Value: v.value, Tool: tool},
			Suggestion{Param: param, Text: "supply a finite numeric value for " + param, Example: float64(0)},
		)
	}
	return OK()
}

// ValidateRequired always passes: zero is a present value for numbers.
func (v *Double) ValidateRequired(param, tool string) Result {
	return OK()
}

// ValidateRange compares the wrapped double against coerced bounds.
func (v *Double) ValidateRange(spec RangeSpec, param, tool string) Result {
	min, err := cast.ToFloat64E(spec.Min.Raw())
	if err != nil {
		return conversionError(CodeDoubleConversionError, param, tool, spec.Min.Raw(), "double")
	}
	max, err := cast.ToFloat64E(spec.Max.Raw())
	if err != nil {
		return conversionError(CodeDoubleConversionError, param, tool, spec.Max.Raw(), "double")
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
		msg = fmt.Sprintf("%s must be %s %.4f and %.4f, got %.4f", param, rangeWord(spec.Inclusive), min, max, v.value)
	}
	clamped := max
	if v.value <= min {
		clamped = min
	}
	return fail(
		Error{Param: param, Code: CodeOutOfRange, Message: msg, Value: v.value, Tool: tool},
		Suggestion{Param: param, Text: fmt.Sprintf("use a value closer to %.4f", clamped), Example: clamped},
	)
}

// ValidateExistence implements Value with the default external lookup.
func (v *Double) ValidateExistence(ctx context.Context, check ExistenceCheck, param, tool string) Result {
	return checkExistence(ctx, check, param, tool, v.value)
}

// MarshalJSON renders the wrapped value as a JSON number.
func (v *Double) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.value)
}

// UnmarshalJSON is the controlled setter used during deserialization.
func (v *Double) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &v.value)
}
