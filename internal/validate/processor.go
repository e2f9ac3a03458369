// Package validate orchestrates the validation of request objects: it walks
// each object's declared fields, dispatches to the wrappers' own validation
// methods in a fixed per-field order, and aggregates the outcomes into one
// result. The processor never returns a Go error for a validation failure;
// every failure path is encoded in the result.
package validate

import (
	"context"

	"github.com/bobmcallan/vire-gate/internal/schema"
	"github.com/bobmcallan/vire-gate/internal/typeval"
)

// Checker confirms that a value references an existing entity of the named
// kind in an external system of record. Implementations must report lookup
// failures through the returned error and must not panic or mutate state.
type Checker interface {
	Exists(ctx context.Context, entity string, value any) (bool, error)
}

// CheckerFunc adapts a plain function to Checker.
type CheckerFunc func(ctx context.Context, entity string, value any) (bool, error)

// Exists implements Checker.
func (f CheckerFunc) Exists(ctx context.Context, entity string, value any) (bool, error) {
	return f(ctx, entity, value)
}

// Processor validates request objects against their declared field rules.
// A zero Processor is usable and performs no existence checking.
type Processor struct {
	checkers map[string]Checker
}

// NewProcessor creates a processor with no registered existence checkers.
func NewProcessor() *Processor {
	return &Processor{checkers: make(map[string]Checker)}
}

// RegisterChecker binds an existence checker to an entity kind. Fields whose
// existence rule names an unregistered entity validate as present.
func (p *Processor) RegisterChecker(entity string, c Checker) {
	if p.checkers == nil {
		p.checkers = make(map[string]Checker)
	}
	p.checkers[entity] = c
}

// Validate produces one aggregated result for the object's declared fields.
//
// Per field the order is fixed: an absent required field records exactly one
// REQUIRED error and short-circuits every other check for that field; an
// absent optional field is skipped silently. Present values run format,
// then required (only when the rule is attached), then existence (only when
// the rule is attached), then range. Range runs even when format already
// failed; errors accumulate rather than short-circuit.
func (p *Processor) Validate(ctx context.Context, tool string, obj schema.Object) typeval.Result {
	result := typeval.OK()
	for _, f := range obj.ValidationFields() {
		result.Merge(p.validateField(ctx, tool, f))
	}
	return result
}

// validateField runs the fixed per-field check sequence.
func (p *Processor) validateField(ctx context.Context, tool string, f schema.Field) typeval.Result {
	if f.Absent() {
		if f.IsRequired() {
			return missingRequired(f, tool)
		}
		return typeval.OK()
	}

	v := f.Value()
	result := v.ValidateFormat(f.Name(), tool)

	if f.IsRequired() {
		r := v.ValidateRequired(f.Name(), tool)
		result.Merge(overrideMessages(r, typeval.CodeRequired, f.RequiredMessage()))
	}

	if entity := f.Entity(); entity != "" {
		r := v.ValidateExistence(ctx, p.boundCheck(entity), f.Name(), tool)
		result.Merge(overrideMessages(r, typeval.CodeEntityNotFound, f.EntityMessage()))
	}

	if spec := f.RangeSpec(); spec != nil {
		result.Merge(v.ValidateRange(*spec, f.Name(), tool))
	}
	return result
}

// boundCheck adapts the checker registered for an entity kind to the
// wrapper-facing ExistenceCheck contract. Returns nil when no checker is
// registered, which the wrappers treat as always valid.
func (p *Processor) boundCheck(entity string) typeval.ExistenceCheck {
	c, ok := p.checkers[entity]
	if !ok {
		return nil
	}
	return typeval.ExistenceCheckFunc(func(ctx context.Context, value any) (bool, error) {
		return c.Exists(ctx, entity, value)
	})
}

// overrideMessages replaces the message on errors carrying the given code
// with the field's custom message. Other codes keep their own text: a custom
// existence message describes the missing entity, not a lookup failure.
func overrideMessages(r typeval.Result, code typeval.Code, msg string) typeval.Result {
	if msg == "" {
		return r
	}
	for i := range r.Errors {
		if r.Errors[i].Code == code {
			r.Errors[i].Message = msg
		}
	}
	return r
}

// missingRequired builds the single REQUIRED failure for an absent field.
func missingRequired(f schema.Field, tool string) typeval.Result {
	msg := f.RequiredMessage()
	if msg == "" {
		msg = f.Name() + " is required"
	}
	result := typeval.OK()
	result.Merge(typeval.Result{
		Valid:       false,
		Errors:      []typeval.Error{{Param: f.Name(), Code: typeval.CodeRequired, Message: msg, Tool: tool}},
		Suggestions: []typeval.Suggestion{{Param: f.Name(), Text: "supply a value for " + f.Name()}},
	})
	return result
}
