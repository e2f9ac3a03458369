package typeval

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// DateTime wraps a point in time. Messages and suggestions render values in
// the "2006-01-02 15:04:05" layout.
type DateTime struct {
	value time.Time
}

// NewDateTime wraps a time.
func NewDateTime(v time.Time) *DateTime {
	return &DateTime{value: v}
}

// Value returns the wrapped time.
func (v *DateTime) Value() time.Time {
	if v == nil {
		return time.Time{}
	}
	return v.value
}

// Equal reports structural equality on the wrapped instant.
func (v *DateTime) Equal(other *DateTime) bool {
	if v == nil || other == nil {
		return v == other
	}
	return v.value.Equal(other.value)
}

// Kind implements Value.
func (v *DateTime) Kind() Kind { return KindDateTime }

// IsAbsent implements Value.
func (v *DateTime) IsAbsent() bool { return v == nil }

// ValidateFormat always passes: a parsed time is well-formed by
// construction.
func (v *DateTime) ValidateFormat(param, tool string) Result {
	return OK()
}

// ValidateRequired treats the zero time as missing.
func (v *DateTime) ValidateRequired(param, tool string) Result {
	if v.value.IsZero() {
		return fail(
			Error{Param: param, Code: CodeRequired, Message: param + " is required", Value: v.value, Tool: tool},
			Suggestion{Param: param, Text: "supply a date-time for " + param, Example: time.Now().UTC().Format(DateTimeLayout)},
		)
	}
	return OK()
}

// ValidateRange compares the wrapped time against bounds coerced to
// date-times. The failure message carries both bounds and the current value
// in the message layout.
func (v *DateTime) ValidateRange(spec RangeSpec, param, tool string) Result {
	min, err := toDateTime(spec.Min.Raw())
	if err != nil {
		return conversionError(CodeDateTimeConversionError, param, tool, spec.Min.Raw(), "date-time")
	}
	max, err := toDateTime(spec.Max.Raw())
	if err != nil {
		return conversionError(CodeDateTimeConversionError, param, tool, spec.Max.Raw(), "date-time")
	}

	var ok bool
	if spec.Inclusive {
		ok = !v.value.Before(min) && !v.value.After(max)
	} else {
		ok = v.value.After(min) && v.value.Before(max)
	}
	if ok {
		return OK()
	}

	msg := spec.Message
	if msg == "" {
		msg = fmt.Sprintf("%s must be %s %s and %s, got %s",
			param, rangeWord(spec.Inclusive),
			min.Format(DateTimeLayout), max.Format(DateTimeLayout), v.value.Format(DateTimeLayout))
	}
	clamped := max
	if !v.value.After(min) {
		clamped = min
	}
	return fail(
		Error{Param: param, Code: CodeDateTimeOutOfRange, Message: msg, Value: v.value, Tool: tool},
		Suggestion{Param: param, Text: fmt.Sprintf("use a date-time closer to %s", clamped.Format(DateTimeLayout)), Example: clamped},
	)
}

// ValidateExistence implements Value with the default external lookup.
func (v *DateTime) ValidateExistence(ctx context.Context, check ExistenceCheck, param, tool string) Result {
	return checkExistence(ctx, check, param, tool, v.value)
}

// MarshalJSON renders the wrapped time in RFC 3339 form.
func (v *DateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.value)
}

// UnmarshalJSON is the controlled setter used during deserialization. It
// accepts RFC 3339, the message layout, and bare dates.
func (v *DateTime) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	t, err := toDateTime(s)
	if err != nil {
		return err
	}
	v.value = t
	return nil
}
