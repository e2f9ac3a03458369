package typeval

import (
	"context"
	"regexp"
)

// Domain types narrow one of the closed kinds to a single business concept
// by embedding its wrapper and overriding individual methods:
//
//	type TickerSymbol struct {
//		typeval.String
//	}
//
//	func (v *TickerSymbol) IsAbsent() bool { return v == nil }
//
//	func (v *TickerSymbol) ValidateFormat(param, tool string) typeval.Result {
//		if r := v.String.ValidateFormat(param, tool); !r.Valid {
//			return r
//		}
//		return typeval.MatchPattern(v.Value(), tickerPattern, param, tool,
//			"an exchange ticker such as BHP.AX", "BHP.AX")
//	}
//
// Range and required behavior is inherited from the base kind unless the
// domain type chooses to override it. ValidateExistence can be overridden
// the same way to bind a fixed system of record, see CheckedExistence.

// MatchPattern validates a string value against a compiled pattern,
// failing with INVALID_FORMAT. hint describes the expected form and example
// is a concrete corrected value for the paired suggestion.
func MatchPattern(value string, pattern *regexp.Regexp, param, tool, hint, example string) Result {
	if pattern.MatchString(value) {
		return OK()
	}
	return fail(
		Error{Param: param, Code: CodeInvalidFormat, Message: param + " must be " + hint, Value: value, Tool: tool},
		Suggestion{Param: param, Text: "format " + param + " as " + hint, Example: example},
	)
}

// CheckedExistence runs the default existence behavior against a fixed
// check, ignoring whatever check the processor resolved. Domain types use
// it to pin their own system of record:
//
//	func (v *AccountCode) ValidateExistence(ctx context.Context, _ typeval.ExistenceCheck, param, tool string) typeval.Result {
//		return typeval.CheckedExistence(ctx, accountRegistry, param, tool, v.Value())
//	}
func CheckedExistence(ctx context.Context, check ExistenceCheck, param, tool string, raw any) Result {
	return checkExistence(ctx, check, param, tool, raw)
}
