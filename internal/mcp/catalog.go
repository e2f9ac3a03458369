// Package mcp exposes validated operations as self-describing MCP tools.
// Tool definitions carry their parameter schema for discovery; the actual
// request rules live on the request objects themselves and are enforced by
// the validation processor before a handler runs.
package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/bobmcallan/vire-gate/internal/common"
	"github.com/bobmcallan/vire-gate/internal/schema"
	"github.com/bobmcallan/vire-gate/internal/typeval"
)

// HandlerFunc executes one tool operation on an already-validated request.
type HandlerFunc func(ctx context.Context, req schema.Object) (string, error)

// ToolDefinition describes one exposed operation: its discovery metadata,
// a constructor for a fresh request object, and the operation itself.
type ToolDefinition struct {
	Name        string
	Description string
	Params      []ParamDefinition

	// NewRequest returns a fresh, empty request object. Call arguments are
	// deserialized into it and its declared fields drive validation.
	NewRequest func() schema.Object

	// Handle runs after validation has passed.
	Handle HandlerFunc
}

// ParamDefinition describes a single parameter for tool discovery.
type ParamDefinition struct {
	Name        string
	Kind        typeval.Kind
	Description string
	Required    bool
}

// ValidateToolDefinition validates a single tool definition, including a
// fail-fast configuration check of the request object's declared rules.
// Range rules are kind-checked against the declared parameter kinds: a fresh
// request's wrappers are all nil pointers, so the declaration is the only
// kind information available at catalog load.
func ValidateToolDefinition(td ToolDefinition) error {
	if td.Name == "" {
		return fmt.Errorf("tool has empty name")
	}
	if td.NewRequest == nil {
		return fmt.Errorf("tool %q has no request constructor", td.Name)
	}
	if td.Handle == nil {
		return fmt.Errorf("tool %q has no handler", td.Name)
	}
	kinds := make(map[string]typeval.Kind, len(td.Params))
	for _, p := range td.Params {
		if p.Name == "" {
			return fmt.Errorf("tool %q has a parameter with empty name", td.Name)
		}
		if _, dup := kinds[p.Name]; dup {
			return fmt.Errorf("tool %q declares parameter %q twice", td.Name, p.Name)
		}
		kinds[p.Name] = p.Kind
	}
	fields := td.NewRequest().ValidationFields()
	if err := schema.Check(fields); err != nil {
		return fmt.Errorf("tool %q: %w", td.Name, err)
	}
	for _, f := range fields {
		kind, ok := kinds[f.Name()]
		if !ok {
			return fmt.Errorf("tool %q validates undeclared parameter %q", td.Name, f.Name())
		}
		if spec := f.RangeSpec(); spec != nil {
			if err := spec.CheckKind(kind); err != nil {
				return fmt.Errorf("tool %q parameter %q: %w", td.Name, f.Name(), err)
			}
		}
	}
	return nil
}

// ValidateTools filters and validates tool definitions, logging warnings
// for invalid or duplicate tools.
func ValidateTools(defs []ToolDefinition, logger *common.Logger) []ToolDefinition {
	seen := make(map[string]bool, len(defs))
	valid := make([]ToolDefinition, 0, len(defs))
	for _, td := range defs {
		if err := ValidateToolDefinition(td); err != nil {
			logger.Warn().Str("error", err.Error()).Msg("skipping invalid tool definition")
			continue
		}
		if seen[td.Name] {
			logger.Warn().Str("name", td.Name).Msg("skipping duplicate tool definition")
			continue
		}
		seen[td.Name] = true
		valid = append(valid, td)
	}
	return valid
}

// BuildMCPTool converts a ToolDefinition into an mcp.Tool with the
// appropriate parameter schema.
func BuildMCPTool(td ToolDefinition) mcp.Tool {
	opts := []mcp.ToolOption{mcp.WithDescription(td.Description)}
	for _, p := range td.Params {
		opts = append(opts, buildParamOption(p))
	}
	return mcp.NewTool(td.Name, opts...)
}

// buildParamOption maps a ParamDefinition to the appropriate mcp-go tool option.
func buildParamOption(p ParamDefinition) mcp.ToolOption {
	var opts []mcp.PropertyOption
	if p.Description != "" {
		opts = append(opts, mcp.Description(p.Description))
	}
	if p.Required {
		opts = append(opts, mcp.Required())
	}

	switch p.Kind {
	case typeval.KindInt, typeval.KindFloat, typeval.KindDouble, typeval.KindDecimal:
		return mcp.WithNumber(p.Name, opts...)
	case typeval.KindBool:
		return mcp.WithBoolean(p.Name, opts...)
	case typeval.KindCollection:
		opts = append([]mcp.PropertyOption{mcp.WithStringItems()}, opts...)
		return mcp.WithArray(p.Name, opts...)
	default:
		// string, datetime, guid — all passed as string
		return mcp.WithString(p.Name, opts...)
	}
}
