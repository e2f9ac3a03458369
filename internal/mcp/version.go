package mcp

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/bobmcallan/vire-gate/internal/common"
)

// versionInfo holds version fields reported by get_version.
type versionInfo struct {
	Version string `json:"version"`
	Build   string `json:"build"`
	Commit  string `json:"commit"`
}

// VersionTool returns the mcp.Tool definition for the get_version tool.
func VersionTool() mcp.Tool {
	return mcp.NewTool("get_version",
		mcp.WithDescription("Get vire-gate server version and status. Use this to verify connectivity."),
	)
}

// VersionToolHandler returns a handler reporting the gate's build info.
// The version tool takes no parameters, so it bypasses validation.
func VersionToolHandler() server.ToolHandlerFunc {
	return func(ctx context.Context, r mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		info := map[string]versionInfo{
			"vire_gate": {
				Version: common.GetVersion(),
				Build:   common.Build,
				Commit:  common.GitCommit,
			},
		}
		out, err := json.Marshal(info)
		if err != nil {
			return errorResult("failed to marshal version info"), nil
		}
		return textResult(string(out)), nil
	}
}
