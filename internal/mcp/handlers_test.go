package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	mcpgo "github.com/mark3labs/mcp-go/mcp"

	"github.com/bobmcallan/vire-gate/internal/common"
	"github.com/bobmcallan/vire-gate/internal/schema"
	"github.com/bobmcallan/vire-gate/internal/typeval"
	"github.com/bobmcallan/vire-gate/internal/validate"
)

// greetRequest exercises required, range and existence rules end to end.
type greetRequest struct {
	Name  *typeval.String `json:"name"`
	Times *typeval.Int    `json:"times"`
}

func (r *greetRequest) ValidationFields() []schema.Field {
	return []schema.Field{
		schema.F("name", r.Name).Required().Exists("guest"),
		schema.F("times", r.Times).Range(typeval.Between(1, 5)),
	}
}

func greetDefinition() ToolDefinition {
	return ToolDefinition{
		Name:        "greet",
		Description: "Greet a known guest.",
		Params: []ParamDefinition{
			{Name: "name", Kind: typeval.KindString, Description: "Guest name", Required: true},
			{Name: "times", Kind: typeval.KindInt, Description: "Repeat count"},
		},
		NewRequest: func() schema.Object { return &greetRequest{} },
		Handle: func(ctx context.Context, req schema.Object) (string, error) {
			greet := req.(*greetRequest)
			return "hello " + greet.Name.Value(), nil
		},
	}
}

// guestChecker accepts a fixed set of guest names.
func guestChecker(names ...string) validate.CheckerFunc {
	known := make(map[string]bool, len(names))
	for _, n := range names {
		known[n] = true
	}
	return func(ctx context.Context, entity string, value any) (bool, error) {
		s, ok := value.(string)
		if !ok {
			return false, errors.New("guest name is not a string")
		}
		return known[s], nil
	}
}

func callRequest(name string, args map[string]interface{}) mcpgo.CallToolRequest {
	return mcpgo.CallToolRequest{
		Params: mcpgo.CallToolParams{
			Name:      name,
			Arguments: args,
		},
	}
}

func resultText(t *testing.T, result *mcpgo.CallToolResult) string {
	t.Helper()
	if len(result.Content) == 0 {
		t.Fatal("expected result content")
	}
	return result.Content[0].(mcpgo.TextContent).Text
}

// --- ToolHandler Tests ---

func TestToolHandler_ValidRequest(t *testing.T) {
	p := validate.NewProcessor()
	p.RegisterChecker("guest", guestChecker("alice"))
	handler := ToolHandler(p, greetDefinition(), common.NewSilentLogger())

	result, err := handler(t.Context(), callRequest("greet", map[string]interface{}{
		"name":  "alice",
		"times": 3,
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.IsError {
		t.Fatalf("unexpected tool error: %v", result.Content)
	}
	if got := resultText(t, result); got != "hello alice" {
		t.Errorf("expected 'hello alice', got %q", got)
	}
}

func TestToolHandler_OptionalArgumentOmitted(t *testing.T) {
	p := validate.NewProcessor()
	p.RegisterChecker("guest", guestChecker("alice"))
	handler := ToolHandler(p, greetDefinition(), common.NewSilentLogger())

	result, err := handler(t.Context(), callRequest("greet", map[string]interface{}{
		"name": "alice",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.IsError {
		t.Fatalf("unexpected tool error: %v", result.Content)
	}
}

func TestToolHandler_MissingRequiredArgument(t *testing.T) {
	p := validate.NewProcessor()
	handler := ToolHandler(p, greetDefinition(), common.NewSilentLogger())

	result, err := handler(t.Context(), callRequest("greet", map[string]interface{}{}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.IsError {
		t.Fatal("expected error result for missing required argument")
	}

	var vr typeval.Result
	if err := json.Unmarshal([]byte(resultText(t, result)), &vr); err != nil {
		t.Fatalf("expected JSON validation result, got %v", err)
	}
	if vr.Valid {
		t.Error("expected invalid result")
	}
	if len(vr.Errors) != 1 {
		t.Fatalf("expected 1 error, got %d", len(vr.Errors))
	}
	if vr.Errors[0].Code != typeval.CodeRequired {
		t.Errorf("expected code %s, got %s", typeval.CodeRequired, vr.Errors[0].Code)
	}
	if vr.Errors[0].Tool != "greet" {
		t.Errorf("expected tool 'greet', got %q", vr.Errors[0].Tool)
	}
}

func TestToolHandler_OutOfRangeArgument(t *testing.T) {
	p := validate.NewProcessor()
	p.RegisterChecker("guest", guestChecker("alice"))
	handler := ToolHandler(p, greetDefinition(), common.NewSilentLogger())

	result, err := handler(t.Context(), callRequest("greet", map[string]interface{}{
		"name":  "alice",
		"times": 99,
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.IsError {
		t.Fatal("expected error result for out-of-range argument")
	}

	var vr typeval.Result
	if err := json.Unmarshal([]byte(resultText(t, result)), &vr); err != nil {
		t.Fatalf("expected JSON validation result, got %v", err)
	}
	if len(vr.Errors) != 1 || vr.Errors[0].Code != typeval.CodeOutOfRange {
		t.Errorf("expected one OUT_OF_RANGE error, got %+v", vr.Errors)
	}
	if len(vr.Suggestions) != 1 {
		t.Errorf("expected a paired suggestion, got %d", len(vr.Suggestions))
	}
}

func TestToolHandler_UnknownGuestRejected(t *testing.T) {
	p := validate.NewProcessor()
	p.RegisterChecker("guest", guestChecker("alice"))
	handler := ToolHandler(p, greetDefinition(), common.NewSilentLogger())

	result, err := handler(t.Context(), callRequest("greet", map[string]interface{}{
		"name": "mallory",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.IsError {
		t.Fatal("expected error result for unknown guest")
	}

	var vr typeval.Result
	if err := json.Unmarshal([]byte(resultText(t, result)), &vr); err != nil {
		t.Fatalf("expected JSON validation result, got %v", err)
	}
	if len(vr.Errors) != 1 || vr.Errors[0].Code != typeval.CodeEntityNotFound {
		t.Errorf("expected one ENTITY_NOT_FOUND error, got %+v", vr.Errors)
	}
}

func TestToolHandler_MalformedArguments(t *testing.T) {
	p := validate.NewProcessor()
	handler := ToolHandler(p, greetDefinition(), common.NewSilentLogger())

	result, err := handler(t.Context(), callRequest("greet", map[string]interface{}{
		"times": "not-a-number",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.IsError {
		t.Fatal("expected error result for malformed arguments")
	}
	if !strings.Contains(resultText(t, result), "malformed arguments") {
		t.Errorf("expected malformed arguments message, got %q", resultText(t, result))
	}
}

func TestToolHandler_HandlerFailure(t *testing.T) {
	td := greetDefinition()
	td.Handle = func(ctx context.Context, req schema.Object) (string, error) {
		return "", errors.New("downstream unavailable")
	}
	p := validate.NewProcessor()
	p.RegisterChecker("guest", guestChecker("alice"))
	handler := ToolHandler(p, td, common.NewSilentLogger())

	result, err := handler(t.Context(), callRequest("greet", map[string]interface{}{
		"name": "alice",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.IsError {
		t.Fatal("expected error result when the handler fails")
	}
	if !strings.Contains(resultText(t, result), "downstream unavailable") {
		t.Errorf("expected handler error in message, got %q", resultText(t, result))
	}
}
