package tools

import (
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/r4sd/apple-reminders-mcp/internal/reminders"
)

// failureEnvelope is the {error} wrapper for failed operations.
type failureEnvelope struct {
	Error string `json:"error"`
}

// envelopeResult wraps a success/nothing-to-do envelope. Both shapes travel
// as ordinary (non-error) tool results; only returned Go errors become MCP
// error results.
func envelopeResult(env reminders.Envelope) (*mcp.CallToolResult, error) {
	return jsonResult(env)
}

func errorResult(err error) *mcp.CallToolResult {
	data, marshalErr := json.Marshal(failureEnvelope{Error: err.Error()})
	if marshalErr != nil {
		return mcp.NewToolResultError(err.Error())
	}
	return mcp.NewToolResultError(string(data))
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("tools: encode result: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}
