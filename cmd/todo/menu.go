package main

import "github.com/hpungsan/todo/internal/ops"

// menuEntry is one choice in the interactive command menu.
type menuEntry struct {
	label string
	args  []string
}

// menuEntries is shown, in order, when todo runs in a terminal with no command.
var menuEntries = []menuEntry{
	{label: "Add a todo", args: []string{"add"}},
	{label: "Mark todos completed", args: []string{"edit"}},
	{label: "Edit a todo", args: []string{"edit", "--full"}},
	{label: "Remove todos", args: []string{"remove"}},
	{label: "Remove all todos", args: []string{"remove", "--all"}},
	{label: "List todos", args: []string{"list"}},
}

// chooseCommand asks which command to run and returns its arguments.
func chooseCommand(p ops.Prompter) ([]string, error) {
	labels := make([]string, len(menuEntries))
	for i, e := range menuEntries {
		labels[i] = e.label
	}
	idx, err := p.Select("What would you like to do?", labels)
	if err != nil {
		return nil, err
	}
	return menuEntries[idx].args, nil
}
