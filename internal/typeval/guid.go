package typeval

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
)

// exampleGuid is a fixed well-formed identifier used in suggestions so that
// repeated validation of the same input yields identical results.
const exampleGuid = "123e4567-e89b-12d3-a456-426614174000"

// Guid wraps a unique identifier. The nil UUID is the "empty" sentinel:
// it fails format and required validation, and range validation is never
// applicable to this kind.
type Guid struct {
	value uuid.UUID
}

// NewGuid wraps a UUID.
func NewGuid(v uuid.UUID) *Guid {
	return &Guid{value: v}
}

// NewGuidFromString wraps a UUID parsed from its string form.
func NewGuidFromString(s string) (*Guid, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return nil, err
	}
	return &Guid{value: u}, nil
}

// Value returns the wrapped UUID.
func (v *Guid) Value() uuid.UUID {
	if v == nil {
		return uuid.Nil
	}
	return v.value
}

// Equal reports structural equality on the wrapped value.
func (v *Guid) Equal(other *Guid) bool {
	if v == nil || other == nil {
		return v == other
	}
	return v.value == other.value
}

// Kind implements Value.
func (v *Guid) Kind() Kind { return KindGuid }

// IsAbsent implements Value.
func (v *Guid) IsAbsent() bool { return v == nil }

// ValidateFormat rejects the nil UUID sentinel.
func (v *Guid) ValidateFormat(param, tool string) Result {
	if v.value == uuid.Nil {
		return fail(
			Error{Param: param, Code: CodeInvalidGuid, Message: param + " is not a valid identifier", Value: v.value, Tool: tool},
			Suggestion{Param: param, Text: "supply a non-nil identifier such as " + exampleGuid, Example: exampleGuid},
		)
	}
	return OK()
}

// ValidateRequired treats the nil UUID sentinel as missing.
func (v *Guid) ValidateRequired(param, tool string) Result {
	if v.value == uuid.Nil {
		return fail(
			Error{Param: param, Code: CodeRequired, Message: param + " is required", Value: v.value, Tool: tool},
			Suggestion{Param: param, Text: "supply an identifier for " + param, Example: exampleGuid},
		)
	}
	return OK()
}

// ValidateRange always fails: a range constraint has no meaning for an
// identifier. The unsupported operation is signaled through the result
// channel regardless of the supplied bounds.
func (v *Guid) ValidateRange(spec RangeSpec, param, tool string) Result {
	return fail(
		Error{Param: param, Code: CodeRangeNotApplicable, Message: "range validation is not applicable to identifier " + param, Value: v.value, Tool: tool},
		Suggestion{Param: param, Text: "remove the range rule from " + param},
	)
}

// ValidateExistence implements Value with the default external lookup.
func (v *Guid) ValidateExistence(ctx context.Context, check ExistenceCheck, param, tool string) Result {
	return checkExistence(ctx, check, param, tool, v.value)
}

// MarshalJSON renders the wrapped value as its canonical UUID string.
func (v *Guid) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.value.String())
}

// UnmarshalJSON is the controlled setter used during deserialization.
func (v *Guid) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return err
	}
	v.value = u
	return nil
}
