package agent

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/tools"

	"github.com/Peaceout21/linkedin-mutual-connections/log"
)

const (
	defaultMaxSteps          = 40
	defaultMaxActionsPerStep = 15
)

// Runner executes browser-automation tasks against a tool-calling model.
type Runner struct {
	model             llms.Model
	tools             []tools.Tool
	executor          *ToolExecutor
	logger            log.Logger
	maxActionsPerStep int
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the run logger.
func WithLogger(logger log.Logger) Option {
	return func(r *Runner) {
		r.logger = logger
	}
}

// WithMaxActionsPerStep caps how many tool calls from a single model turn
// are executed; the rest are refused back to the model.
func WithMaxActionsPerStep(n int) Option {
	return func(r *Runner) {
		if n > 0 {
			r.maxActionsPerStep = n
		}
	}
}

// New creates a Runner over the given model and tool set.
func New(model llms.Model, inputTools []tools.Tool, opts ...Option) *Runner {
	r := &Runner{
		model:             model,
		tools:             inputTools,
		executor:          NewToolExecutor(inputTools),
		logger:            log.Default(),
		maxActionsPerStep: defaultMaxActionsPerStep,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Result is the outcome of one run.
type Result struct {
	// RunID identifies the run in logs.
	RunID string
	// FinalText is the model's final answer, or its last text when the
	// step budget ran out.
	FinalText string
	// Steps is the number of model turns taken.
	Steps int
	// Exhausted is true when the step budget ran out before a final answer.
	Exhausted bool
}

// Run executes the task until the model answers without tool calls or
// maxSteps model turns have passed. Transport failures (the model itself
// erroring) are returned as errors; everything the model says, useful or
// not, ends up in the Result for the normalizer to judge.
func (r *Runner) Run(ctx context.Context, task string, maxSteps int) (*Result, error) {
	if maxSteps <= 0 {
		maxSteps = defaultMaxSteps
	}
	runID := uuid.New().String()

	messages := []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeHuman, task),
	}
	toolDefs := r.toolDefs()

	lastText := ""
	for step := 1; step <= maxSteps; step++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		resp, err := r.model.GenerateContent(ctx, messages,
			llms.WithTools(toolDefs),
			llms.WithTemperature(0),
		)
		if err != nil {
			return nil, fmt.Errorf("model call failed at step %d: %w", step, err)
		}
		if len(resp.Choices) == 0 {
			return nil, fmt.Errorf("model returned no choices at step %d", step)
		}
		choice := resp.Choices[0]

		aiMsg := llms.MessageContent{Role: llms.ChatMessageTypeAI}
		if choice.Content != "" {
			aiMsg.Parts = append(aiMsg.Parts, llms.TextPart(choice.Content))
			lastText = choice.Content
		}
		for _, tc := range choice.ToolCalls {
			aiMsg.Parts = append(aiMsg.Parts, tc)
		}
		messages = append(messages, aiMsg)

		if len(choice.ToolCalls) == 0 {
			r.logger.Info("run %s finished after %d step(s)", runID, step)
			return &Result{RunID: runID, FinalText: choice.Content, Steps: step}, nil
		}

		for i, tc := range choice.ToolCalls {
			inv := ToolInvocation{
				Tool:      tc.FunctionCall.Name,
				ToolInput: toolInput(tc.FunctionCall.Arguments),
			}

			var res string
			if i >= r.maxActionsPerStep {
				res = fmt.Sprintf("Error: at most %d actions per step; take stock and continue next step", r.maxActionsPerStep)
			} else {
				r.logger.Debug("run %s step %d: %s(%s)", runID, step, inv.Tool, inv.ToolInput)
				var err error
				res, err = r.executor.Execute(ctx, inv)
				if err != nil {
					res = fmt.Sprintf("Error: %v", err)
				}
			}

			messages = append(messages, llms.MessageContent{
				Role: llms.ChatMessageTypeTool,
				Parts: []llms.ContentPart{
					llms.ToolCallResponse{
						ToolCallID: tc.ID,
						Name:       tc.FunctionCall.Name,
						Content:    res,
					},
				},
			})
		}
	}

	r.logger.Warn("run %s exhausted the %d-step budget", runID, maxSteps)
	return &Result{RunID: runID, FinalText: lastText, Steps: maxSteps, Exhausted: true}, nil
}

func (r *Runner) toolDefs() []llms.Tool {
	var defs []llms.Tool
	for _, t := range r.tools {
		defs = append(defs, llms.Tool{
			Type: "function",
			Function: &llms.FunctionDefinition{
				Name:        t.Name(),
				Description: t.Description(),
				Parameters: map[string]any{
					"type": "object",
					"properties": map[string]any{
						"input": map[string]any{
							"type":        "string",
							"description": "The input for the tool",
						},
					},
					"required":             []string{"input"},
					"additionalProperties": false,
				},
			},
		})
	}
	return defs
}

// toolInput pulls the "input" argument out of a tool call; if the arguments
// are not the expected single-string shape, the raw argument string is
// passed through.
func toolInput(arguments string) string {
	var args map[string]any
	if err := json.Unmarshal([]byte(arguments), &args); err == nil {
		if val, ok := args["input"].(string); ok {
			return val
		}
	}
	return arguments
}
