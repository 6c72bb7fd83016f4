package mcp

import (
	"context"
	"encoding/json"
	stderrs "errors"
	"strings"
	"sync"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/hpungsan/todo/internal/config"
	"github.com/hpungsan/todo/internal/errors"
	"github.com/hpungsan/todo/internal/ops"
	"github.com/hpungsan/todo/internal/store"
)

// Handlers holds dependencies for MCP tool handlers.
type Handlers struct {
	st  *store.Store
	cfg *config.Config

	// mu serializes tool calls; each one is a load-mutate-save of the whole file.
	mu sync.Mutex
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(st *store.Store, cfg *config.Config) *Handlers {
	return &Handlers{st: st, cfg: cfg}
}

// Request types for each tool

// ListRequest represents the arguments for todo_list.
type ListRequest struct {
	Sort        string `json:"sort,omitempty"`
	ShowCreated bool   `json:"show_created,omitempty"`
}

// AddRequest represents the arguments for todo_add.
type AddRequest struct {
	ShortDesc *string `json:"short_desc"`
	LongDesc  *string `json:"long_desc,omitempty"`
}

// UpdateRequest represents the arguments for todo_update.
type UpdateRequest struct {
	ID        string  `json:"id"`
	ShortDesc *string `json:"short_desc"`
	LongDesc  *string `json:"long_desc,omitempty"`
	Completed bool    `json:"completed,omitempty"`
}

// IDsRequest represents the arguments for todo_set_completed and todo_remove.
type IDsRequest struct {
	IDs []string `json:"ids"`
}

// ClearRequest represents the arguments for todo_clear.
type ClearRequest struct {
	Confirm bool `json:"confirm"`
}

// listResponse adds the rendered display lines to the list output.
type listResponse struct {
	*ops.ListOutput
	Lines []string `json:"lines"`
}

// HandleList handles the todo_list tool.
func (h *Handlers) HandleList(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, err := decode[ListRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	result, err := ops.List(h.st, h.cfg, ops.ListInput{
		Sort:        args.Sort,
		ShowCreated: args.ShowCreated,
	})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(listResponse{ListOutput: result, Lines: result.Lines})
}

// HandleAdd handles the todo_add tool.
func (h *Handlers) HandleAdd(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, err := decode[AddRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}
	if args.ShortDesc == nil {
		return errorResult(errors.NewInvalidRequest("short_desc is required")), nil
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	result, err := ops.Add(h.st, h.cfg, ops.AddInput{
		ShortDesc: *args.ShortDesc,
		LongDesc:  args.LongDesc,
	})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleUpdate handles the todo_update tool.
func (h *Handlers) HandleUpdate(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, err := decode[UpdateRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}
	if args.ShortDesc == nil {
		return errorResult(errors.NewInvalidRequest("short_desc is required")), nil
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	result, err := ops.Update(h.st, h.cfg, ops.UpdateInput{
		ID:        args.ID,
		ShortDesc: *args.ShortDesc,
		LongDesc:  args.LongDesc,
		Completed: args.Completed,
	})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleSetCompleted handles the todo_set_completed tool.
func (h *Handlers) HandleSetCompleted(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, err := decode[IDsRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}
	if args.IDs == nil {
		return errorResult(errors.NewInvalidRequest("ids is required")), nil
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	result, err := ops.SetCompleted(h.st, ops.SetCompletedInput{IDs: args.IDs})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleRemove handles the todo_remove tool.
func (h *Handlers) HandleRemove(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, err := decode[IDsRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}
	if args.IDs == nil {
		return errorResult(errors.NewInvalidRequest("ids is required")), nil
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	result, err := ops.RemoveIDs(h.st, ops.RemoveIDsInput{IDs: args.IDs})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleClear handles the todo_clear tool.
func (h *Handlers) HandleClear(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, err := decode[ClearRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}
	if !args.Confirm {
		return errorResult(errors.NewInvalidRequest("confirm must be true to clear all todos")), nil
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	result, err := ops.Clear(h.st, true)
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// Helper functions

// errorResult creates an MCP error result from any error.
// Wrapped TodoErrors keep their code; the wrapping context is prefixed to the message.
func errorResult(err error) *mcp.CallToolResult {
	var payload map[string]any

	var todoErr *errors.TodoError
	if stderrs.As(err, &todoErr) {
		msg := todoErr.Message
		if prefix, ok := strings.CutSuffix(err.Error(), todoErr.Error()); ok && prefix != "" {
			msg = prefix + msg
		}
		errorObj := map[string]any{
			"code":    todoErr.Code,
			"message": msg,
			"status":  todoErr.Status,
		}
		// Only include details for non-internal errors to avoid leaking
		// file paths or OS errors
		if todoErr.Code != errors.ErrInternal && len(todoErr.Details) > 0 {
			errorObj["details"] = todoErr.Details
		}
		payload = map[string]any{"error": errorObj}
	} else {
		payload = map[string]any{
			"error": map[string]any{
				"code":    errors.ErrInternal,
				"message": "an internal error occurred",
				"status":  500,
			},
		}
	}

	content, _ := json.Marshal(payload)
	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.TextContent{Type: "text", Text: string(content)}},
		IsError: true,
	}
}

// successResult creates an MCP success result from any data.
func successResult(data any) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultJSON(data)
}
