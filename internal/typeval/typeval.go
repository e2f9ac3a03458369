// Package typeval implements the typed-value wrappers that give every
// request field a uniform validation surface. Each wrapper owns exactly one
// semantic value (integer, float, double, decimal, bool, date-time, string,
// unique identifier, or a collection) and knows how to validate its own
// format, presence, range, and existence. Validation failures are always
// returned as data; no ValidateX method panics or returns a Go error.
package typeval

import "context"

// Kind identifies the semantic type wrapped by a Value.
type Kind string

const (
	KindInt        Kind = "int"
	KindFloat      Kind = "float"
	KindDouble     Kind = "double"
	KindDecimal    Kind = "decimal"
	KindBool       Kind = "bool"
	KindDateTime   Kind = "datetime"
	KindString     Kind = "string"
	KindGuid       Kind = "guid"
	KindCollection Kind = "collection"
)

// DateTimeLayout is the rendering used for date-time values in validation
// messages and suggestions.
const DateTimeLayout = "2006-01-02 15:04:05"

// ExistenceCheck confirms a value against an external system of record.
// Implementations must report lookup failures through the returned error,
// never panic, and must not mutate the value or any external state.
type ExistenceCheck interface {
	Exists(ctx context.Context, value any) (bool, error)
}

// ExistenceCheckFunc adapts a plain function to ExistenceCheck.
type ExistenceCheckFunc func(ctx context.Context, value any) (bool, error)

// Exists implements ExistenceCheck.
func (f ExistenceCheckFunc) Exists(ctx context.Context, value any) (bool, error) {
	return f(ctx, value)
}

// Value is the uniform validation surface shared by every typed wrapper.
// The kind set is closed; business-specific domain types narrow a kind by
// embedding its wrapper and overriding individual methods.
type Value interface {
	// Kind reports the wrapper's semantic kind.
	Kind() Kind

	// IsAbsent reports whether the wrapper itself is missing (a nil
	// pointer), as opposed to holding an empty or zero value.
	IsAbsent() bool

	// ValidateFormat checks intrinsic well-formedness of the wrapped value.
	ValidateFormat(param, tool string) Result

	// ValidateRequired checks kind-specific "meaningfully present"
	// semantics for a value that is structurally present.
	ValidateRequired(param, tool string) Result

	// ValidateRange interprets the spec's heterogeneous bounds according to
	// the wrapper's kind. Malformed bounds degrade to a reported
	// conversion error, never a panic.
	ValidateRange(spec RangeSpec, param, tool string) Result

	// ValidateExistence confirms the value against an external system of
	// record. A nil check means no existence rule applies and the result
	// is valid. The context is threaded through to the check only.
	ValidateExistence(ctx context.Context, check ExistenceCheck, param, tool string) Result
}

// checkExistence is the shared default existence behavior: valid when no
// check is supplied, otherwise the check's outcome encoded as a result.
func checkExistence(ctx context.Context, check ExistenceCheck, param, tool string, raw any) Result {
	if check == nil {
		return OK()
	}
	found, err := check.Exists(ctx, raw)
	if err != nil {
		return fail(
			Error{Param: param, Code: CodeExistenceCheckFailed, Message: param + " could not be verified: " + err.Error(), Value: raw, Tool: tool},
			Suggestion{Param: param, Text: "retry once the system of record is reachable", Example: raw},
		)
	}
	if !found {
		return fail(
			Error{Param: param, Code: CodeEntityNotFound, Message: param + " does not reference a known entity", Value: raw, Tool: tool},
			Suggestion{Param: param, Text: "supply the identifier of an existing entity for " + param, Example: raw},
		)
	}
	return OK()
}
