package agent

import (
	"context"
	"fmt"

	"github.com/tmc/langchaingo/tools"
)

// ToolInvocation names a tool and carries its input string.
type ToolInvocation struct {
	Tool      string
	ToolInput string
}

// ToolExecutor dispatches tool invocations by name.
type ToolExecutor struct {
	tools map[string]tools.Tool
}

// NewToolExecutor indexes the given tools by name.
func NewToolExecutor(inputTools []tools.Tool) *ToolExecutor {
	m := make(map[string]tools.Tool, len(inputTools))
	for _, t := range inputTools {
		m[t.Name()] = t
	}
	return &ToolExecutor{tools: m}
}

// Execute runs one invocation.
func (e *ToolExecutor) Execute(ctx context.Context, inv ToolInvocation) (string, error) {
	t, ok := e.tools[inv.Tool]
	if !ok {
		return "", fmt.Errorf("unknown tool %q", inv.Tool)
	}
	return t.Call(ctx, inv.ToolInput)
}
