package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/bobmcallan/vire-gate/internal/common"
	"github.com/bobmcallan/vire-gate/internal/validate"
)

// errorResult creates an MCP error result.
func errorResult(message string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(message),
		},
		IsError: true,
	}
}

// textResult creates a successful MCP text result.
func textResult(message string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(message),
		},
	}
}

// ToolHandler creates a handler that binds call arguments into the tool's
// request object, validates it, and only then runs the operation. Expected
// validation failures are returned as tool error results carrying the
// structured error and suggestion lists, never as Go errors.
func ToolHandler(p *validate.Processor, td ToolDefinition, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, r mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		log := logger.WithCorrelationId(uuid.New().String())

		req := td.NewRequest()
		if err := bindArguments(r, req); err != nil {
			log.Warn().Str("tool", td.Name).Str("error", err.Error()).Msg("malformed tool arguments")
			return errorResult(fmt.Sprintf("Error: malformed arguments: %v", err)), nil
		}

		result := p.Validate(ctx, td.Name, req)
		if !result.Valid {
			payload, err := json.Marshal(result)
			if err != nil {
				return errorResult("Error: failed to render validation result"), nil
			}
			log.Warn().Str("tool", td.Name).Int("errors", len(result.Errors)).Msg("request rejected")
			return errorResult(string(payload)), nil
		}

		out, err := td.Handle(ctx, req)
		if err != nil {
			log.Warn().Str("tool", td.Name).Str("error", err.Error()).Msg("tool handler failed")
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}
		return textResult(out), nil
	}
}

// bindArguments deserializes the call arguments into the request object
// through the wrappers' JSON contract. Arguments that were not supplied
// leave their wrappers as nil pointers, which the processor reads as
// absent fields.
func bindArguments(r mcp.CallToolRequest, req any) error {
	args := r.GetArguments()
	if len(args) == 0 {
		return nil
	}
	data, err := json.Marshal(args)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, req)
}

// RegisterTools validates the definitions and registers each surviving tool
// with the MCP server. Returns the number of tools registered.
func RegisterTools(s *server.MCPServer, p *validate.Processor, defs []ToolDefinition, logger *common.Logger) int {
	valid := ValidateTools(defs, logger)
	for _, td := range valid {
		s.AddTool(BuildMCPTool(td), ToolHandler(p, td, logger))
	}
	return len(valid)
}
