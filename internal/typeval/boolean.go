package typeval

import (
	"context"
	"encoding/json"
)

// Bool wraps a boolean value.
type Bool struct {
	value bool
}

// NewBool wraps a boolean.
func NewBool(v bool) *Bool {
	return &Bool{value: v}
}

// Value returns the wrapped boolean.
func (v *Bool) Value() bool {
	if v == nil {
		return false
	}
	return v.value
}

// Equal reports structural equality on the wrapped value.
func (v *Bool) Equal(other *Bool) bool {
	if v == nil || other == nil {
		return v == other
	}
	return v.value == other.value
}

// Kind implements Value.
func (v *Bool) Kind() Kind { return KindBool }

// IsAbsent implements Value.
func (v *Bool) IsAbsent() bool { return v == nil }

// ValidateFormat always passes: both boolean values are well-formed.
func (v *Bool) ValidateFormat(param, tool string) Result {
	return OK()
}

// ValidateRequired always passes: false is a present value.
func (v *Bool) ValidateRequired(param, tool string) Result {
	return OK()
}

// ValidateRange is a no-op pass: a range on a boolean is trivially valid.
func (v *Bool) ValidateRange(spec RangeSpec, param, tool string) Result {
	return OK()
}

// ValidateExistence implements Value with the default external lookup.
func (v *Bool) ValidateExistence(ctx context.Context, check ExistenceCheck, param, tool string) Result {
	return checkExistence(ctx, check, param, tool, v.value)
}

// MarshalJSON renders the wrapped value as a JSON boolean.
func (v *Bool) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.value)
}

// UnmarshalJSON is the controlled setter used during deserialization.
func (v *Bool) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &v.value)
}
