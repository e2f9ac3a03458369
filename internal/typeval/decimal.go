package typeval

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
)

// Decimal wraps an arbitrary-precision decimal value. Suggestions are
// formatted to two decimal places.
type Decimal struct {
	value decimal.Decimal
}

// NewDecimal wraps a decimal.
func NewDecimal(v decimal.Decimal) *Decimal {
	return &Decimal{value: v}
}

// NewDecimalFromString wraps a decimal parsed from its string form.
func NewDecimalFromString(s string) (*Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid decimal %q: %w", s, err)
	}
	return &Decimal{value: d}, nil
}

// Value returns the wrapped decimal.
func (v *Decimal) Value() decimal.Decimal {
	if v == nil {
		return decimal.Zero
	}
	return v.value
}

// Equal reports structural equality on the wrapped value.
func (v *Decimal) Equal(other *Decimal) bool {
	if v == nil || other == nil {
		return v == other
	}
	return v.value.Equal(other.value)
}

// Kind implements Value.
func (v *Decimal) Kind() Kind { return KindDecimal }

// IsAbsent implements Value.
func (v *Decimal) IsAbsent() bool { return v == nil }

// ValidateFormat always passes: a parsed decimal is well-formed by
// construction.
func (v *Decimal) ValidateFormat(param, tool string) Result {
	return OK()
}

// ValidateRequired always passes: zero is a present value for numbers.
func (v *Decimal) ValidateRequired(param, tool string) Result {
	return OK()
}

// ValidateRange compares the wrapped decimal against coerced bounds.
func (v *Decimal) ValidateRange(spec RangeSpec, param, tool string) Result {
	min, err := toDecimal(spec.Min.Raw())
	if err != nil {
		return conversionError(CodeDecimalConversionError, param, tool, spec.Min.Raw(), "decimal")
	}
	max, err := toDecimal(spec.Max.Raw())
	if err != nil {
		return conversionError(CodeDecimalConversionError, param, tool, spec.Max.Raw(), "decimal")
	}

	ok := v.value.GreaterThan(min) && v.value.LessThan(max)
	if spec.Inclusive {
		ok = v.value.GreaterThanOrEqual(min) && v.value.LessThanOrEqual(max)
	}
	if ok {
		return OK()
	}

	msg := spec.Message
	if msg == "" {
		msg = fmt.Sprintf("%s must be %s %s and %s, got %s",
			param, rangeWord(spec.Inclusive), min.StringFixed(2), max.StringFixed(2), v.value.StringFixed(2))
	}
	clamped := max
	if v.value.LessThanOrEqual(min) {
		clamped = min
	}
	return fail(
		Error{Param: param, Code: CodeOutOfRange, Message: msg, Value: v.value, Tool: tool},
		Suggestion{Param: param, Text: fmt.Sprintf("use a value closer to %s", clamped.StringFixed(2)), Example: clamped},
	)
}

// ValidateExistence implements Value with the default external lookup.
func (v *Decimal) ValidateExistence(ctx context.Context, check ExistenceCheck, param, tool string) Result {
	return checkExistence(ctx, check, param, tool, v.value)
}

// MarshalJSON renders the wrapped value as a JSON number.
func (v *Decimal) MarshalJSON() ([]byte, error) {
	return v.value.MarshalJSON()
}

// UnmarshalJSON is the controlled setter used during deserialization.
func (v *Decimal) UnmarshalJSON(data []byte) error {
	return v.value.UnmarshalJSON(data)
}
