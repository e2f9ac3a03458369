package typeval

import (
	"context"
	"errors"
	"regexp"
	"testing"
)

// accountPattern is the business rule for the test domain type below.
var accountPattern = regexp.MustCompile(`^ACC-[0-9]{4}$`)

// accountCode narrows the string kind for these tests.
type accountCode struct {
	String
}

func (v *accountCode) IsAbsent() bool { return v == nil }

func (v *accountCode) ValidateFormat(param, tool string) Result {
	if r := v.String.ValidateFormat(param, tool); !r.Valid {
		return r
	}
	return MatchPattern(v.Value(), accountPattern, param, tool, "an account code such as ACC-0001", "ACC-0001")
}

func newAccountCode(v string) *accountCode {
	a := &accountCode{}
	a.String = *NewString(v)
	return a
}

// --- Domain Type Tests ---

func TestDomainType_FormatOverride(t *testing.T) {
	if r := newAccountCode("ACC-1234").ValidateFormat("account", "open_account"); !r.Valid {
		t.Error("expected well-formed account code to pass")
	}

	r := newAccountCode("bogus").ValidateFormat("account", "open_account")
	if r.Valid {
		t.Fatal("expected malformed account code to fail")
	}
	if r.Errors[0].Code != CodeInvalidFormat {
		t.Errorf("expected INVALID_FORMAT, got %s", r.Errors[0].Code)
	}
	if r.Suggestions[0].Example != "ACC-0001" {
		t.Errorf("expected corrected example, got %v", r.Suggestions[0].Example)
	}
}

func TestDomainType_BlankFailsBaseFormatFirst(t *testing.T) {
	r := newAccountCode("  ").ValidateFormat("account", "open_account")
	if r.Valid {
		t.Fatal("expected blank value to fail")
	}
	// The base string check runs before the narrowed pattern
	if r.Errors[0].Message != "account must not be blank" {
		t.Errorf("expected base blank-string failure, got %q", r.Errors[0].Message)
	}
}

func TestDomainType_InheritsRangeFromBaseKind(t *testing.T) {
	r := newAccountCode("ACC-1234").ValidateRange(Between(1, 4), "account", "open_account")
	if r.Valid {
		t.Fatal("expected 8-character code to fail length range [1,4]")
	}
	if r.Errors[0].Code != CodeStringLengthOutOfRange {
		t.Errorf("expected STRING_LENGTH_OUT_OF_RANGE, got %s", r.Errors[0].Code)
	}
}

// --- Existence Tests ---

func TestValidateExistence_NilCheckAlwaysValid(t *testing.T) {
	r := NewString("anything").ValidateExistence(context.Background(), nil, "account", "open_account")
	if !r.Valid {
		t.Error("expected nil check to validate as present")
	}
}

func TestValidateExistence_NotFound(t *testing.T) {
	check := ExistenceCheckFunc(func(ctx context.Context, value any) (bool, error) {
		return false, nil
	})
	r := NewString("ghost").ValidateExistence(context.Background(), check, "account", "open_account")
	if r.Valid {
		t.Fatal("expected missing entity to fail")
	}
	if r.Errors[0].Code != CodeEntityNotFound {
		t.Errorf("expected ENTITY_NOT_FOUND, got %s", r.Errors[0].Code)
	}
	if len(r.Suggestions) != 1 {
		t.Errorf("expected a paired suggestion, got %d", len(r.Suggestions))
	}
}

func TestValidateExistence_LookupFailureEncodedNotThrown(t *testing.T) {
	check := ExistenceCheckFunc(func(ctx context.Context, value any) (bool, error) {
		return false, errors.New("registry unreachable")
	})
	r := NewString("acc").ValidateExistence(context.Background(), check, "account", "open_account")
	if r.Valid {
		t.Fatal("expected lookup failure to be invalid")
	}
	if r.Errors[0].Code != CodeExistenceCheckFailed {
		t.Errorf("expected EXISTENCE_CHECK_FAILED, got %s", r.Errors[0].Code)
	}
}

func TestCheckedExistence_PinsSystemOfRecord(t *testing.T) {
	pinned := ExistenceCheckFunc(func(ctx context.Context, value any) (bool, error) {
		return value == "known", nil
	})
	if r := CheckedExistence(context.Background(), pinned, "account", "open_account", "known"); !r.Valid {
		t.Error("expected known value to pass")
	}
	if r := CheckedExistence(context.Background(), pinned, "account", "open_account", "unknown"); r.Valid {
		t.Error("expected unknown value to fail")
	}
}

// --- RangeSpec Tests ---

func TestRangeSpec_CheckKind(t *testing.T) {
	tests := []struct {
		name    string
		spec    RangeSpec
		kind    Kind
		wantErr bool
	}{
		{"int ok", Between(1, 10), KindInt, false},
		{"int bad bound", Between("low", 10), KindInt, true},
		{"int fractional bound", Between(0.5, 10), KindInt, true},
		{"guid never applicable", Between(1, 10), KindGuid, true},
		{"bool trivially valid", Between(1, 10), KindBool, false},
		{"datetime ok", Between("2025-01-01", "2025-12-31"), KindDateTime, false},
		{"datetime bad bound", Between("soon", "later"), KindDateTime, true},
		{"decimal ok", Between("0.01", "9.99"), KindDecimal, false},
		{"string length ok", Between(1, 50), KindString, false},
	}
	for _, tt := range tests {
		err := tt.spec.CheckKind(tt.kind)
		if (err != nil) != tt.wantErr {
			t.Errorf("%s: got err=%v, wantErr=%v", tt.name, err, tt.wantErr)
		}
	}
}
