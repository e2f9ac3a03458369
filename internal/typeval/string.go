package typeval

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// String wraps a text value. Range validation applies to character length,
// not lexical order.
type String struct {
	value string
}

// NewString wraps a string.
func NewString(v string) *String {
	return &String{value: v}
}

// Value returns the wrapped string.
func (v *String) Value() string {
	if v == nil {
		return ""
	}
	return v.value
}

// Equal reports structural equality on the wrapped value.
func (v *String) Equal(other *String) bool {
	if v == nil || other == nil {
		return v == other
	}
	return v.value == other.value
}

// Kind implements Value.
func (v *String) Kind() Kind { return KindString }

// IsAbsent implements Value.
func (v *String) IsAbsent() bool { return v == nil }

// ValidateFormat rejects blank values: empty or whitespace-only text is not
// a well-formed string payload.
func (v *String) ValidateFormat(param, tool string) Result {
	if strings.TrimSpace(v.value) == "" {
		return fail(
			Error{Param: param, Code: CodeInvalidFormat, Message: param + " must not be blank", Value: v.value, Tool: tool},
			Suggestion{Param: param, Text: "supply non-blank text for " + param, Example: "example"},
		)
	}
	return OK()
}

// ValidateRequired treats the empty string as missing.
func (v *String) ValidateRequired(param, tool string) Result {
	if v.value == "" {
		return fail(
			Error{Param: param, Code: CodeRequired, Message: param + " is required", Value: v.value, Tool: tool},
			Suggestion{Param: param, Text: "supply a value for " + param, Example: "example"},
		)
	}
	return OK()
}

// ValidateRange validates character length against coerced integer bounds.
// The suggestion pads or truncates a copy of the current value to the
// nearest valid length. An exclusive range with min == max has no valid
// length; the suggestion is still produced one unit off the boundary.
func (v *String) ValidateRange(spec RangeSpec, param, tool string) Result {
	min64, err := toInt64(spec.Min.Raw())
	if err != nil {
		return conversionError(CodeStringConversionError, param, tool, spec.Min.Raw(), "length")
	}
	max64, err := toInt64(spec.Max.Raw())
	if err != nil {
		return conversionError(CodeStringConversionError, param, tool, spec.Max.Raw(), "length")
	}
	min, max := int(min64), int(max64)

	length := len([]rune(v.value))
	ok := length > min && length < max
	if spec.Inclusive {
		ok = length >= min && length <= max
	}
	if ok {
		return OK()
	}

	msg := spec.Message
	if msg == "" {
		msg = fmt.Sprintf("%s length must be %s %d and %d, got %d", param, rangeWord(spec.Inclusive), min, max, length)
	}

	// Nearest valid length: the boundary itself when inclusive, one unit
	// inside it when exclusive.
	var example string
	if length <= min {
		target := min
		if !spec.Inclusive {
			target = min + 1
		}
		example = v.value + strings.Repeat("x", target-length)
	} else {
		target := max
		if !spec.Inclusive {
			target = max - 1
		}
		runes := []rune(v.value)
		if target < 0 {
			target = 0
		}
		example = string(runes[:target])
	}
	return fail(
		Error{Param: param, Code: CodeStringLengthOutOfRange, Message: msg, Value: v.value, Tool: tool},
		Suggestion{Param: param, Text: fmt.Sprintf("adjust %s to %d characters", param, len([]rune(example))), Example: example},
	)
}

// ValidateExistence implements Value with the default external lookup.
func (v *String) ValidateExistence(ctx context.Context, check ExistenceCheck, param, tool string) Result {
	return checkExistence(ctx, check, param, tool, v.value)
}

// MarshalJSON renders the wrapped value as a JSON string.
func (v *String) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.value)
}

// UnmarshalJSON is the controlled setter used during deserialization.
func (v *String) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &v.value)
}
