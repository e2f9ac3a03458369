package typeval

import (
	"encoding/json"
	"strings"
	"testing"
)

// --- String Tests ---

func TestString_FormatRejectsBlank(t *testing.T) {
	tests := []struct {
		name  string
		value string
		valid bool
	}{
		{"text", "hello", true},
		{"empty", "", false},
		{"whitespace", "   ", false},
	}
	for _, tt := range tests {
		r := NewString(tt.value).ValidateFormat("note", "create_order")
		if r.Valid != tt.valid {
			t.Errorf("%s: expected valid=%v, got %v", tt.name, tt.valid, r.Valid)
		}
		if !tt.valid && r.Errors[0].Code != CodeInvalidFormat {
			t.Errorf("%s: expected INVALID_FORMAT, got %s", tt.name, r.Errors[0].Code)
		}
	}
}

func TestString_RequiredTreatsEmptyAsMissing(t *testing.T) {
	r := NewString("").ValidateRequired("note", "create_order")
	if r.Valid {
		t.Fatal("expected empty string to fail required")
	}
	if r.Errors[0].Code != CodeRequired {
		t.Errorf("expected REQUIRED, got %s", r.Errors[0].Code)
	}
	if r := NewString("x").ValidateRequired("note", "create_order"); !r.Valid {
		t.Error("expected non-empty string to pass required")
	}
}

func TestString_RangeValidatesLengthNotContent(t *testing.T) {
	spec := Between(5, 50)

	// Lexically "large" but short: length is what matters
	r := NewString("zz").ValidateRange(spec, "note", "create_order")
	if r.Valid {
		t.Fatal("expected 2-character string to fail range [5,50]")
	}
	if r.Errors[0].Code != CodeStringLengthOutOfRange {
		t.Errorf("expected STRING_LENGTH_OUT_OF_RANGE, got %s", r.Errors[0].Code)
	}
	padded, ok := r.Suggestions[0].Example.(string)
	if !ok {
		t.Fatalf("expected string example, got %T", r.Suggestions[0].Example)
	}
	if len([]rune(padded)) != 5 {
		t.Errorf("expected padded suggestion of length 5, got %d (%q)", len([]rune(padded)), padded)
	}
	if !strings.HasPrefix(padded, "zz") {
		t.Errorf("expected suggestion to extend the current value, got %q", padded)
	}
}

func TestString_RangeTruncatesLongValues(t *testing.T) {
	long := strings.Repeat("a", 60)
	r := NewString(long).ValidateRange(Between(5, 50), "note", "create_order")
	if r.Valid {
		t.Fatal("expected 60-character string to fail range [5,50]")
	}
	truncated := r.Suggestions[0].Example.(string)
	if len([]rune(truncated)) != 50 {
		t.Errorf("expected truncated suggestion of length 50, got %d", len([]rune(truncated)))
	}
}

func TestString_RangeBoundaryLengths(t *testing.T) {
	inclusive := Between(2, 4)
	if r := NewString("ab").ValidateRange(inclusive, "note", "create_order"); !r.Valid {
		t.Error("expected length == min to pass inclusive range")
	}
	if r := NewString("abcd").ValidateRange(inclusive, "note", "create_order"); !r.Valid {
		t.Error("expected length == max to pass inclusive range")
	}

	exclusive := BetweenExclusive(2, 4)
	if r := NewString("ab").ValidateRange(exclusive, "note", "create_order"); r.Valid {
		t.Error("expected length == min to fail exclusive range")
	}
	if r := NewString("abc").ValidateRange(exclusive, "note", "create_order"); !r.Valid {
		t.Error("expected length 3 to pass exclusive (2,4)")
	}
}

func TestString_RangeDegenerateExclusive(t *testing.T) {
	// Exclusive range with min == max has no valid length; the suggestion is
	// still produced one unit off the boundary.
	r := NewString("ab").ValidateRange(BetweenExclusive(3, 3), "note", "create_order")
	if r.Valid {
		t.Fatal("expected degenerate exclusive range to fail")
	}
	if len(r.Suggestions) != 1 {
		t.Fatalf("expected a suggestion, got %d", len(r.Suggestions))
	}
	example := r.Suggestions[0].Example.(string)
	if len([]rune(example)) != 4 {
		t.Errorf("expected suggestion one unit off the boundary (length 4), got %d", len([]rune(example)))
	}
}

func TestString_RangeConversionError(t *testing.T) {
	r := NewString("abc").ValidateRange(Between("min", "max"), "note", "create_order")
	if r.Valid {
		t.Fatal("expected conversion failure")
	}
	if r.Errors[0].Code != CodeStringConversionError {
		t.Errorf("expected STRING_CONVERSION_ERROR, got %s", r.Errors[0].Code)
	}
}

func TestString_FractionalLengthBoundRejected(t *testing.T) {
	r := NewString("abc").ValidateRange(Between(1.5, 5), "note", "create_order")
	if r.Valid {
		t.Fatal("expected fractional length bound to be invalid")
	}
	if r.Errors[0].Code != CodeStringConversionError {
		t.Errorf("expected STRING_CONVERSION_ERROR, got %s", r.Errors[0].Code)
	}
}

func TestString_RangeCountsRunes(t *testing.T) {
	// 4 runes, more than 4 bytes
	r := NewString("日本語字").ValidateRange(Between(4, 10), "note", "create_order")
	if !r.Valid {
		t.Error("expected 4-rune string to pass range [4,10]")
	}
}

func TestString_RoundTrip(t *testing.T) {
	original := NewString("hello world")
	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	var decoded String
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if !original.Equal(&decoded) {
		t.Errorf("expected round-trip equality, got %q", decoded.Value())
	}
}
