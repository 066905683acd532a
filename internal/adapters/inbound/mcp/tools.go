package mcp

import (
	"context"
	"fmt"
	"os"

	"github.com/goccy/go-json"
	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/schemaguard/schemaguard/internal/adapters/outbound/config"
	"github.com/schemaguard/schemaguard/internal/adapters/outbound/gitinfo"
	"github.com/schemaguard/schemaguard/internal/adapters/outbound/registry"
	"github.com/schemaguard/schemaguard/internal/adapters/outbound/schema"
	"github.com/schemaguard/schemaguard/internal/application"
	"github.com/schemaguard/schemaguard/internal/domain"
)

// registerTools registers all SchemaGuard MCP tools on the given server.
func registerTools(s *server.MCPServer, projectPath string) {
	s.AddTool(
		mcplib.NewTool("schemaguard_check",
			mcplib.WithDescription("Check the project's local schema against usage recorded for a published tag. Returns the change list, the validation window, and the breaking-change count as JSON."),
			mcplib.WithString("tag",
				mcplib.Description("Published schema tag to validate against (defaults to the configured tag)"),
			),
			mcplib.WithString("validation_period",
				mcplib.Description("How far back usage counts, as seconds or a duration expression like 2w or 1y 6mo"),
			),
		),
		handleCheck(projectPath),
	)
}

// checkToolResult is the JSON shape returned to the MCP client: the raw
// registry result plus its severity summary.
type checkToolResult struct {
	Result        *domain.CheckResult `json:"result"`
	Total         int                 `json:"total"`
	BreakingCount int                 `json:"breakingCount"`
	Safe          bool                `json:"safe"`
}

func handleCheck(projectPath string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		cfg, err := config.New().Load(projectPath)
		if err != nil {
			return errorResult(fmt.Sprintf("loading config failed: %v", err)), nil
		}

		args := request.GetArguments()
		if tag, ok := args["tag"].(string); ok && tag != "" {
			cfg.Tag = tag
		}

		var raw domain.RawHistoricFlags
		if period, ok := args["validation_period"].(string); ok {
			raw.Period = period
		}

		svc := application.NewCheckService(
			schema.New(),
			gitinfo.New(),
			registry.New(cfg.RegistryURL, os.Getenv("SCHEMAGUARD_API_KEY")),
		)

		result, classification, err := svc.Run(ctx, application.CheckInput{
			ProjectPath: projectPath,
			Config:      cfg,
			Raw:         raw,
		})
		if err != nil {
			return errorResult(fmt.Sprintf("check failed: %v", err)), nil
		}

		return jsonResult(checkToolResult{
			Result:        result,
			Total:         classification.Total,
			BreakingCount: classification.BreakingCount,
			Safe:          classification.Safe(),
		})
	}
}

// jsonResult marshals v to JSON and returns it as a text content result.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
