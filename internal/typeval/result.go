package typeval

// Code is a symbolic validation error code. The vocabulary is closed:
// callers switch on these values when mapping results to responses.
type Code string

const (
	CodeRequired                 Code = "REQUIRED"
	CodeOutOfRange               Code = "OUT_OF_RANGE"
	CodeStringLengthOutOfRange   Code = "STRING_LENGTH_OUT_OF_RANGE"
	CodeDateTimeOutOfRange       Code = "DATETIME_OUT_OF_RANGE"
	CodeRangeNotApplicable       Code = "RANGE_NOT_APPLICABLE"
	CodeInvalidGuid              Code = "INVALID_GUID"
	CodeInvalidFloat             Code = "INVALID_FLOAT"
	CodeInvalidDouble            Code = "INVALID_DOUBLE"
	CodeInvalidFormat            Code = "INVALID_FORMAT"
	CodeIntConversionError       Code = "INT_CONVERSION_ERROR"
	CodeFloatConversionError     Code = "FLOAT_CONVERSION_ERROR"
	CodeDoubleConversionError    Code = "DOUBLE_CONVERSION_ERROR"
	CodeDecimalConversionError   Code = "DECIMAL_CONVERSION_ERROR"
	CodeDateTimeConversionError  Code = "DATETIME_CONVERSION_ERROR"
	CodeStringConversionError    Code = "STRING_CONVERSION_ERROR"
	CodeEntityNotFound           Code = "ENTITY_NOT_FOUND"
	CodeExistenceCheckFailed     Code = "EXISTENCE_CHECK_FAILED"
)

// Error describes one failed validation rule. Immutable once constructed.
// Value carries the offending value structurally typed, not stringified.
type Error struct {
	Param   string `json:"param"`
	Code    Code   `json:"code"`
	Message string `json:"message"`
	Value   any    `json:"value,omitempty"`
	Tool    string `json:"tool,omitempty"`
}

// Suggestion is a corrective hint tied to a parameter: free text plus one
// concrete example value of corrected form. Suggestions are optional per
// error, though every built-in validator emits one alongside each error.
type Suggestion struct {
	Param   string `json:"param"`
	Text    string `json:"text"`
	Example any    `json:"example,omitempty"`
}

// Result is the outcome of one or more validation checks. Valid is false
// whenever Errors is non-empty; constructors and Merge maintain that
// invariant, so callers only need to read Valid.
type Result struct {
	Valid       bool         `json:"valid"`
	Errors      []Error      `json:"errors,omitempty"`
	Suggestions []Suggestion `json:"suggestions,omitempty"`
}

// OK returns a passing result with no errors or suggestions.
func OK() Result {
	return Result{Valid: true}
}

// fail builds a failing result from one error and its paired suggestions.
func fail(err Error, suggestions ...Suggestion) Result {
	return Result{Valid: false, Errors: []Error{err}, Suggestions: suggestions}
}

// Merge folds another result into r: validity is ANDed and the error and
// suggestion lists are concatenated in order. No deduplication is
// performed; the same parameter can accumulate errors from several checks.
func (r *Result) Merge(other Result) {
	r.Valid = r.Valid && other.Valid
	r.Errors = append(r.Errors, other.Errors...)
	r.Suggestions = append(r.Suggestions, other.Suggestions...)
}
