package mcp

import (
	"encoding/json"
	"testing"

	mcpgo "github.com/mark3labs/mcp-go/mcp"
)

func TestVersionTool_Definition(t *testing.T) {
	tool := VersionTool()
	if tool.Name != "get_version" {
		t.Errorf("expected name 'get_version', got %q", tool.Name)
	}
	if len(tool.InputSchema.Required) != 0 {
		t.Errorf("expected no required parameters, got %v", tool.InputSchema.Required)
	}
}

func TestVersionToolHandler(t *testing.T) {
	handler := VersionToolHandler()

	result, err := handler(t.Context(), mcpgo.CallToolRequest{
		Params: mcpgo.CallToolParams{Name: "get_version"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.IsError {
		t.Fatalf("unexpected tool error: %v", result.Content)
	}

	var combined map[string]versionInfo
	text := result.Content[0].(mcpgo.TextContent).Text
	if err := json.Unmarshal([]byte(text), &combined); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}

	info, ok := combined["vire_gate"]
	if !ok {
		t.Fatal("expected 'vire_gate' entry in version info")
	}
	if info.Version == "" {
		t.Error("expected a version string")
	}
}
