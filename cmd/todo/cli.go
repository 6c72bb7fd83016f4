package main

import (
	"encoding/json"
	stderrs "errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v2"

	"github.com/hpungsan/todo/internal/config"
	"github.com/hpungsan/todo/internal/errors"
	"github.com/hpungsan/todo/internal/mcp"
	"github.com/hpungsan/todo/internal/ops"
	"github.com/hpungsan/todo/internal/store"
)

// deps holds what the commands operate on.
type deps struct {
	st       *store.Store
	cfg      *config.Config
	prompter ops.Prompter
	console  *log.Logger // raised to debug by --verbose; may be nil
}

// newCLIApp creates the CLI application with all commands.
func newCLIApp(d *deps) *cli.App {
	app := &cli.App{
		Name:    "todo",
		Usage:   "Manage the todo list in the current directory",
		Version: Version,
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "verbose", Usage: "Log debug output to stderr"},
		},
		Before: func(c *cli.Context) error {
			if c.Bool("verbose") && d.console != nil {
				d.console.SetLevel(log.DebugLevel)
			}
			return nil
		},
		Commands: []*cli.Command{
			addCmd(d),
			editCmd(d),
			removeCmd(d),
			listCmd(d),
			importCmd(d),
			exportCmd(d),
			mcpCmd(d),
		},
	}
	// Disable default exit error handler to allow proper error return in tests
	app.ExitErrHandler = func(_ *cli.Context, _ error) {}
	return app
}

// addCmd creates the add command.
func addCmd(d *deps) *cli.Command {
	return &cli.Command{
		Name:      "add",
		Usage:     "Add a todo (prompts when no description is given)",
		ArgsUsage: "[short description...]",
		Action: func(c *cli.Context) error {
			var (
				output *ops.AddOutput
				err    error
			)
			if c.NArg() > 0 {
				output, err = ops.Add(d.st, d.cfg, ops.AddInput{
					ShortDesc: strings.Join(c.Args().Slice(), " "),
				})
			} else {
				output, err = ops.AddInteractive(d.st, d.cfg, d.prompter)
			}
			if err != nil {
				return outputError(err)
			}

			return outputMessage(c.App.Writer, output.Message)
		},
	}
}

// editCmd creates the edit command.
func editCmd(d *deps) *cli.Command {
	return &cli.Command{
		Name:  "edit",
		Usage: "Mark todos completed, or edit one todo with --full",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "full", Aliases: []string{"f"}, Usage: "Edit every field of a single todo"},
		},
		Action: func(c *cli.Context) error {
			output, err := ops.Edit(d.st, d.cfg, d.prompter, ops.EditInput{Full: c.Bool("full")})
			if err != nil {
				return outputError(err)
			}

			return outputMessage(c.App.Writer, output.Message)
		},
	}
}

// removeCmd creates the remove command.
func removeCmd(d *deps) *cli.Command {
	return &cli.Command{
		Name:    "remove",
		Aliases: []string{"rm"},
		Usage:   "Remove selected todos, or all of them with --all",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "all", Aliases: []string{"a"}, Usage: "Remove every todo (asks for confirmation)"},
		},
		Action: func(c *cli.Context) error {
			output, err := ops.Remove(d.st, d.prompter, ops.RemoveInput{All: c.Bool("all")})
			if err != nil {
				return outputError(err)
			}

			return outputMessage(c.App.Writer, output.Message)
		},
	}
}

// listCmd creates the list command.
func listCmd(d *deps) *cli.Command {
	return &cli.Command{
		Name:    "list",
		Aliases: []string{"ls"},
		Usage:   "List todos",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "created", Aliases: []string{"c"}, Usage: "Show when each todo was created"},
			&cli.StringFlag{Name: "sort", Aliases: []string{"s"}, Usage: "Order: stored|desc (default from config)"},
			&cli.BoolFlag{Name: "json", Usage: "Print todos as JSON"},
		},
		Action: func(c *cli.Context) error {
			output, err := ops.List(d.st, d.cfg, ops.ListInput{
				ShowCreated: c.Bool("created"),
				Sort:        c.String("sort"),
			})
			if err != nil {
				return outputError(err)
			}

			if c.Bool("json") {
				return outputJSON(c.App.Writer, output)
			}

			styles := newListStyles(c.App.Writer)
			for _, line := range output.Lines {
				if _, err := fmt.Fprintln(c.App.Writer, styles.line(line)); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

// importCmd creates the import command.
func importCmd(d *deps) *cli.Command {
	return &cli.Command{
		Name:  "import",
		Usage: "Add the items of a markdown checklist as todos",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "path", Aliases: []string{"p"}, Required: true, Usage: "Markdown file (.md)"},
		},
		Action: func(c *cli.Context) error {
			output, err := ops.Import(d.st, d.cfg, ops.ImportInput{Path: c.String("path")})
			if err != nil {
				return outputError(err)
			}

			return outputJSON(c.App.Writer, output)
		},
	}
}

// exportCmd creates the export command.
func exportCmd(d *deps) *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "Write todos to a markdown checklist",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "path", Aliases: []string{"p"}, Required: true, Usage: "Markdown file (.md)"},
		},
		Action: func(c *cli.Context) error {
			output, err := ops.Export(d.st, ops.ExportInput{Path: c.String("path")})
			if err != nil {
				return outputError(err)
			}

			return outputJSON(c.App.Writer, output)
		},
	}
}

// mcpCmd creates the mcp command.
func mcpCmd(d *deps) *cli.Command {
	return &cli.Command{
		Name:  "mcp",
		Usage: "Serve the todo list as MCP tools over stdio",
		Action: func(c *cli.Context) error {
			if unknown := mcp.ValidateDisabledTools(d.cfg.DisabledTools); len(unknown) > 0 {
				d.st.Logger().Warn("unknown tools in disabled_tools", "tools", unknown)
			}
			if err := mcp.Run(d.st, d.cfg, Version); err != nil {
				return outputError(errors.NewInternal(err))
			}
			return nil
		},
	}
}

// Helper functions

// outputJSON writes v to w as indented JSON.
func outputJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputMessage writes a one-line status message.
func outputMessage(w io.Writer, msg string) error {
	_, err := fmt.Fprintln(w, newListStyles(w).success.Render(msg))
	return err
}

// outputError formats error for CLI.
func outputError(err error) error {
	var todoErr *errors.TodoError
	if stderrs.As(err, &todoErr) {
		return cli.Exit(fmt.Sprintf("[%s] %s", todoErr.Code, todoErr.Message), 1)
	}
	return cli.Exit(err.Error(), 1)
}
