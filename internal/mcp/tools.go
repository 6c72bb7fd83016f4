package mcp

import "github.com/mark3labs/mcp-go/mcp"

var listToolDef = mcp.NewTool("todo_list",
	mcp.WithDescription("List todos in stored order (or sorted by description). Returns each todo's id, descriptions, completion and creation time, plus the rendered display lines."),
	mcp.WithString("sort",
		mcp.Description("Order: \"stored\" (default) or \"desc\" (by short description)"),
		mcp.Enum("stored", "desc"),
	),
	mcp.WithBoolean("show_created",
		mcp.Description("Append the creation time to each display line"),
	),
	mcp.WithReadOnlyHintAnnotation(true),
)

var addToolDef = mcp.NewTool("todo_add",
	mcp.WithDescription("Add a new incomplete todo at the end of the list."),
	mcp.WithString("short_desc",
		mcp.Required(),
		mcp.Description("One-line summary"),
	),
	mcp.WithString("long_desc",
		mcp.Description("Optional details"),
	),
)

var updateToolDef = mcp.NewTool("todo_update",
	mcp.WithDescription("Replace a todo's descriptions and completion. All fields are replaced; omit long_desc to remove it. The id and creation time never change."),
	mcp.WithString("id",
		mcp.Required(),
		mcp.Description("Todo id"),
	),
	mcp.WithString("short_desc",
		mcp.Required(),
		mcp.Description("New one-line summary"),
	),
	mcp.WithString("long_desc",
		mcp.Description("New details; omit to remove"),
	),
	mcp.WithBoolean("completed",
		mcp.Description("Completion state (default false)"),
	),
)

var setCompletedToolDef = mcp.NewTool("todo_set_completed",
	mcp.WithDescription("Set the complete set of completed todos. Listed todos become completed and every other todo becomes incomplete."),
	mcp.WithArray("ids",
		mcp.Required(),
		mcp.Description("Ids of the todos that should be completed"),
		mcp.Items(map[string]any{"type": "string"}),
	),
	mcp.WithIdempotentHintAnnotation(true),
)

var removeToolDef = mcp.NewTool("todo_remove",
	mcp.WithDescription("Remove the listed todos. Fails without changes if any id is unknown."),
	mcp.WithArray("ids",
		mcp.Required(),
		mcp.Description("Ids of the todos to remove"),
		mcp.Items(map[string]any{"type": "string"}),
	),
	mcp.WithDestructiveHintAnnotation(true),
)

var clearToolDef = mcp.NewTool("todo_clear",
	mcp.WithDescription("Remove every todo. Requires confirm: true."),
	mcp.WithBoolean("confirm",
		mcp.Required(),
		mcp.Description("Must be true to clear the list"),
	),
	mcp.WithDestructiveHintAnnotation(true),
)
