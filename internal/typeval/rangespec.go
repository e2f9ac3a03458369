package typeval

import (
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
)

// Bound holds one end of a range declaration. Bounds are heterogeneous by
// design: they may arrive from static code or dynamic configuration and are
// interpreted by the wrapper kind that consumes them at validation time.
type Bound struct {
	raw any
}

// BoundOf wraps a raw bound value.
func BoundOf(v any) Bound {
	return Bound{raw: v}
}

// Raw returns the underlying bound value.
func (b Bound) Raw() any {
	return b.raw
}

// RangeSpec declares lower and upper bounds for one field. Inclusive selects
// >=/<= comparison; exclusive selects >/<. Message, when set, replaces the
// default error message on a range failure.
type RangeSpec struct {
	Min       Bound
	Max       Bound
	Inclusive bool
	Message   string
}

// Between declares an inclusive range [min, max].
func Between(min, max any) RangeSpec {
	return RangeSpec{Min: BoundOf(min), Max: BoundOf(max), Inclusive: true}
}

// BetweenExclusive declares an exclusive range (min, max).
func BetweenExclusive(min, max any) RangeSpec {
	return RangeSpec{Min: BoundOf(min), Max: BoundOf(max)}
}

// WithMessage returns a copy of the spec carrying a custom failure message.
func (s RangeSpec) WithMessage(msg string) RangeSpec {
	s.Message = msg
	return s
}

// CheckKind verifies at configuration time that both bounds can be coerced
// to the given kind. A range on the guid kind is never applicable and always
// an error here. Validation-time coercion still degrades to a reported
// conversion error, so dynamically-sourced bounds that pass this check may
// still fail soft later.
func (s RangeSpec) CheckKind(k Kind) error {
	switch k {
	case KindGuid:
		return fmt.Errorf("range is not applicable to the guid kind")
	case KindBool:
		return nil
	case KindInt, KindCollection:
		for _, b := range []Bound{s.Min, s.Max} {
			if _, err := toInt64(b.Raw()); err != nil {
				return fmt.Errorf("bound %v is not an integer: %w", b.Raw(), err)
			}
		}
	case KindFloat, KindDouble:
		for _, b := range []Bound{s.Min, s.Max} {
			if _, err := cast.ToFloat64E(b.Raw()); err != nil {
				return fmt.Errorf("bound %v is not numeric: %w", b.Raw(), err)
			}
		}
	case KindDecimal:
		for _, b := range []Bound{s.Min, s.Max} {
			if _, err := toDecimal(b.Raw()); err != nil {
				return fmt.Errorf("bound %v is not a decimal: %w", b.Raw(), err)
			}
		}
	case KindString:
		for _, b := range []Bound{s.Min, s.Max} {
			if _, err := toInt64(b.Raw()); err != nil {
				return fmt.Errorf("bound %v is not a length: %w", b.Raw(), err)
			}
		}
	case KindDateTime:
		for _, b := range []Bound{s.Min, s.Max} {
			if _, err := toDateTime(b.Raw()); err != nil {
				return fmt.Errorf("bound %v is not a date-time: %w", b.Raw(), err)
			}
		}
	}
	return nil
}

// rangeWord renders the comparison mode for default range messages.
func rangeWord(inclusive bool) string {
	if inclusive {
		return "between"
	}
	return "strictly between"
}

// conversionError reports a bound that could not be coerced to the
// consuming wrapper's kind. This is the deliberate soft-degrade path for
// malformed configuration: the failure is data, never a panic.
func conversionError(code Code, param, tool string, bound any, kind string) Result {
	return fail(
		Error{Param: param, Code: code, Message: fmt.Sprintf("range bound %v for %s cannot be read as %s", bound, param, kind), Value: bound, Tool: tool},
		Suggestion{Param: param, Text: fmt.Sprintf("declare %s range bounds as %s values", param, kind), Example: bound},
	)
}

// toInt64 coerces a heterogeneous bound to int64. Fractional floats are
// rejected rather than truncated: a misdeclared bound must surface as a
// conversion error, not silently loosen the range.
func toInt64(raw any) (int64, error) {
	switch v := raw.(type) {
	case float32:
		if float64(v) != math.Trunc(float64(v)) {
			return 0, fmt.Errorf("bound %v has a fractional part", raw)
		}
	case float64:
		if v != math.Trunc(v) {
			return 0, fmt.Errorf("bound %v has a fractional part", raw)
		}
	}
	return cast.ToInt64E(raw)
}

// toDecimal coerces a heterogeneous bound to a decimal.
func toDecimal(raw any) (decimal.Decimal, error) {
	switch v := raw.(type) {
	case decimal.Decimal:
		return v, nil
	default:
		s, err := cast.ToStringE(raw)
		if err != nil {
			return decimal.Zero, err
		}
		return decimal.NewFromString(s)
	}
}

// toDateTime coerces a heterogeneous bound to a time.Time. Strings are
// accepted in the message layout, bare date, and RFC 3339 forms.
func toDateTime(raw any) (time.Time, error) {
	switch v := raw.(type) {
	case time.Time:
		return v, nil
	case string:
		for _, layout := range []string{DateTimeLayout, "2006-01-02", time.RFC3339} {
			if t, err := time.Parse(layout, v); err == nil {
				return t, nil
			}
		}
		return time.Time{}, fmt.Errorf("cannot parse %q as date-time", v)
	default:
		return cast.ToTimeE(raw)
	}
}
