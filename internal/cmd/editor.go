package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"file-sorter/internal/catalog"
	"file-sorter/internal/editor"
	"file-sorter/internal/logging"

	shellquote "github.com/kballard/go-shellquote"
	"github.com/spf13/cobra"
)

// argCount returns how many positional arguments a command takes.
func argCount(spec catalog.CommandSpec) int {
	switch {
	case spec.Kind == catalog.KindList:
		return 0
	case spec.Name == catalog.AddTarget:
		return 2
	default:
		return 1
	}
}

// exactArgs is cobra.ExactArgs reporting a usageError.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			return &usageError{err: err}
		}
		return nil
	}
}

// newEditorCmd creates the subcommand for one catalog entry.
func newEditorCmd(provider *AppProvider, spec catalog.CommandSpec) *cobra.Command {
	use := spec.Name
	if spec.Usage != "" {
		use += " " + spec.Usage
	}

	return &cobra.Command{
		Use:   use,
		Short: spec.Summary,
		Args:  exactArgs(argCount(spec)),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}
			if logging.Enabled() {
				logging.Debug("running command", "command", spec.Name, "args", shellquote.Join(args...))
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			return runEditorCommand(ctx, app, spec, args)
		},
	}
}

// runEditorCommand dispatches to the editor. Editor failures are logged at
// debug level and otherwise swallowed: the command simply produces no output.
func runEditorCommand(ctx context.Context, app *App, spec catalog.CommandSpec, args []string) error {
	var err error
	switch spec.Kind {
	case catalog.KindSet:
		err = app.Editor.Set(ctx, spec.Name, args[0])
	case catalog.KindAdd:
		err = app.Editor.Add(ctx, spec.Name, strings.Join(args, " "))
	case catalog.KindRemove:
		err = app.Editor.Remove(ctx, spec.Name, args[0])
	case catalog.KindList:
		var rows []editor.Row
		rows, err = app.Editor.List(ctx, spec.Name)
		if err == nil {
			return printRows(app, rows)
		}
	}

	if err != nil {
		logging.Debug("command aborted", "command", spec.Name, "error", err)
	}
	return nil
}

func printRows(app *App, rows []editor.Row) error {
	if app.JSON {
		if rows == nil {
			rows = []editor.Row{}
		}
		return json.NewEncoder(app.Out).Encode(rows)
	}
	for _, r := range rows {
		fmt.Fprintln(app.Out, r)
	}
	return nil
}
