package typeval

import (
	"context"
	"encoding/json"
	"fmt"
)

// Collection wraps an ordered list of comparable element values. Range
// validation applies to the element count.
type Collection[T comparable] struct {
	values []T
}

// NewCollection wraps a list of elements.
func NewCollection[T comparable](values ...T) *Collection[T] {
	return &Collection[T]{values: values}
}

// Values returns the wrapped elements.
func (v *Collection[T]) Values() []T {
	if v == nil {
		return nil
	}
	return v.values
}

// Len returns the element count.
func (v *Collection[T]) Len() int {
	if v == nil {
		return 0
	}
	return len(v.values)
}

// Equal reports elementwise structural equality.
func (v *Collection[T]) Equal(other *Collection[T]) bool {
	if v == nil || other == nil {
		return v == other
	}
	if len(v.values) != len(other.values) {
		return false
	}
	for i := range v.values {
		if v.values[i] != other.values[i] {
			return false
		}
	}
	return true
}

// Kind implements Value.
func (v *Collection[T]) Kind() Kind { return KindCollection }

// IsAbsent implements Value.
func (v *Collection[T]) IsAbsent() bool { return v == nil }

// ValidateFormat always passes: element well-formedness is the element
// kind's concern, not the container's.
func (v *Collection[T]) ValidateFormat(param, tool string) Result {
	return OK()
}

// ValidateRequired treats an empty collection as missing.
func (v *Collection[T]) ValidateRequired(param, tool string) Result {
	if len(v.values) == 0 {
		return fail(
			Error{Param: param, Code: CodeRequired, Message: param + " is required", Value: v.values, Tool: tool},
			Suggestion{Param: param, Text: "supply at least one element for " + param},
		)
	}
	return OK()
}

// ValidateRange validates the element count against coerced integer bounds.
func (v *Collection[T]) ValidateRange(spec RangeSpec, param, tool string) Result {
	min, err := toInt64(spec.Min.Raw())
	if err != nil {
		return conversionError(CodeIntConversionError, param, tool, spec.Min.Raw(), "count")
	}
	max, err := toInt64(spec.Max.Raw())
	if err != nil {
		return conversionError(CodeIntConversionError, param, tool, spec.Max.Raw(), "count")
	}

	count := int64(len(v.values))
	ok := count > min && count < max
	if spec.Inclusive {
		ok = count >= min && count <= max
	}
	if ok {
		return OK()
	}

	msg := spec.Message
	if msg == "" {
		msg = fmt.Sprintf("%s must hold %s %d and %d elements, got %d", param, rangeWord(spec.Inclusive), min, max, count)
	}
	clamped := max
	if count <= min {
		clamped = min
	}
	return fail(
		Error{Param: param, Code: CodeOutOfRange, Message: msg, Value: v.values, Tool: tool},
		Suggestion{Param: param, Text: fmt.Sprintf("adjust %s to hold %d elements", param, clamped), Example: clamped},
	)
}

// ValidateExistence implements Value with the default external lookup over
// the whole element list.
func (v *Collection[T]) ValidateExistence(ctx context.Context, check ExistenceCheck, param, tool string) Result {
	return checkExistence(ctx, check, param, tool, v.values)
}

// MarshalJSON renders the wrapped elements as a JSON array.
func (v *Collection[T]) MarshalJSON() ([]byte, error) {
	if v.values == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(v.values)
}

// UnmarshalJSON is the controlled setter used during deserialization.
func (v *Collection[T]) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &v.values)
}
