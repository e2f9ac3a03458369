// Package schema declares the validation rules attached to request fields.
// Rules are inert data carriers: they are read by the validation processor
// and by the tool catalog, never evaluated by themselves. Each validated
// request type exposes an ordered field list, so the processor's walk is a
// plain iteration in declaration order rather than runtime introspection.
package schema

import (
	"fmt"

	"github.com/bobmcallan/vire-gate/internal/typeval"
)

// Object is any request or response type whose fields are typed-value
// wrappers. ValidationFields must return the fields in a stable order and
// bind each field to the instance's current wrapper values.
type Object interface {
	ValidationFields() []Field
}

// Field binds one named wrapper value to its declared rules.
type Field struct {
	name        string
	value       typeval.Value
	required    bool
	requiredMsg string
	rangeSpec   *typeval.RangeSpec
	entity      string
	entityMsg   string
}

// F starts a field declaration. value may wrap a nil pointer; the processor
// treats that as an absent field.
func F(name string, value typeval.Value) Field {
	return Field{name: name, value: value}
}

// Required marks the field as mandatory, optionally with a custom message
// for the REQUIRED error raised when the field is absent.
func (f Field) Required(msg ...string) Field {
	f.required = true
	if len(msg) > 0 {
		f.requiredMsg = msg[0]
	}
	return f
}

// Range attaches a range declaration to the field.
func (f Field) Range(spec typeval.RangeSpec) Field {
	f.rangeSpec = &spec
	return f
}

// Exists attaches an existence rule naming the target entity kind in the
// external system of record, optionally with a custom message.
func (f Field) Exists(entity string, msg ...string) Field {
	f.entity = entity
	if len(msg) > 0 {
		f.entityMsg = msg[0]
	}
	return f
}

// Name returns the parameter name used in errors and suggestions.
func (f Field) Name() string { return f.name }

// Value returns the bound wrapper, which may hold a nil pointer.
func (f Field) Value() typeval.Value { return f.value }

// IsRequired reports whether a required rule is attached.
func (f Field) IsRequired() bool { return f.required }

// RequiredMessage returns the custom required message, if any.
func (f Field) RequiredMessage() string { return f.requiredMsg }

// RangeSpec returns the attached range declaration, or nil.
func (f Field) RangeSpec() *typeval.RangeSpec { return f.rangeSpec }

// Entity returns the existence rule's entity kind, or empty.
func (f Field) Entity() string { return f.entity }

// EntityMessage returns the custom existence message, if any.
func (f Field) EntityMessage() string { return f.entityMsg }

// Absent reports whether the field has no usable value: either no wrapper
// was bound or the bound wrapper is a nil pointer.
func (f Field) Absent() bool {
	return f.value == nil || f.value.IsAbsent()
}

// Check validates rule configuration fail-fast, before any request is
// processed: field names must be non-empty and unique, and range bounds
// must be coercible to the field's kind. Absent fields carry no kind and
// are skipped here; callers with a declared kind per field (the tool
// catalog) kind-check range rules against that declaration instead. A
// malformed bound that slips through still degrades to a reported
// conversion error at validation time.
func Check(fields []Field) error {
	seen := make(map[string]bool, len(fields))
	for _, f := range fields {
		if f.name == "" {
			return fmt.Errorf("field has empty name")
		}
		if seen[f.name] {
			return fmt.Errorf("duplicate field %q", f.name)
		}
		seen[f.name] = true

		if f.rangeSpec != nil && !f.Absent() {
			if err := f.rangeSpec.CheckKind(f.value.Kind()); err != nil {
				return fmt.Errorf("field %q: %w", f.name, err)
			}
		}
	}
	return nil
}
