package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"file-sorter/internal/catalog"

	"github.com/spf13/cobra"
)

const unrecognizedMessage = "sorter: unrecognized option...\n" +
	"Try 'sorter --help' for more information.\n"

// usageError marks a malformed invocation: unknown command or flag, or the
// wrong number of arguments.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

// Execute runs the CLI and returns the process exit code.
func Execute() int {
	provider := &AppProvider{
		Out: os.Stdout,
		Err: os.Stderr,
	}
	return run(provider, os.Args[1:])
}

// run executes args against a fresh command tree. Editor commands that abort
// exit 0 without output; so do help and unrecognized input. Only a failure
// to set the application up exits non-zero.
func run(provider *AppProvider, args []string) int {
	rootCmd := newRootCmd(provider)
	rootCmd.SetArgs(normalizeArgs(args))
	rootCmd.SetOut(provider.Out)
	rootCmd.SetErr(provider.Err)

	err := rootCmd.Execute()
	if err == nil {
		return 0
	}

	var uerr *usageError
	if errors.As(err, &uerr) {
		fmt.Fprint(provider.Out, unrecognizedMessage)
		return 0
	}

	fmt.Fprintln(provider.Err, err)
	return 1
}

// valueFlags are the global flags whose value may follow as a separate
// argument.
var valueFlags = map[string]bool{"--config": true, "--prefs": true}

// normalizeArgs rewrites a leading "--<command>" argument to the plain
// subcommand name, so "sorter --add-check /in" works like "sorter add-check /in".
// Only global flags may precede it; once a positional argument or "--" is
// seen the rest is left alone, so a command's own arguments are never
// rewritten.
func normalizeArgs(args []string) []string {
	out := make([]string, len(args))
	copy(out, args)
	for i := 0; i < len(out); i++ {
		a := out[i]
		if a == "--" || !strings.HasPrefix(a, "-") {
			break
		}
		if name, ok := strings.CutPrefix(a, "--"); ok {
			if _, found := catalog.Lookup(name); found {
				out[i] = name
				break
			}
		}
		if valueFlags[a] {
			i++
		}
	}
	return out
}

// newRootCmd creates the root command with all subcommands.
func newRootCmd(provider *AppProvider) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sorter",
		Short: "Edit the file-sorter configuration",
		Long: `sorter edits the configuration read by the file-sorter daemon:
check and parse intervals, logging, the default directory, and the
lists of checked directories and sorting targets.

Each command that changes the configuration prints an OK message on success.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return &usageError{err: fmt.Errorf("unknown command %q", args[0])}
			}
			return cmd.Help()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &usageError{err: err}
	})

	// Global flags - these populate the provider config
	rootCmd.PersistentFlags().StringVar(&provider.Overrides.ConfigPath, "config", "", "Path to the file-sorter config (default: user config dir)")
	rootCmd.PersistentFlags().StringVar(&provider.PrefsPath, "prefs", "", "Path to the sorter preferences file (.yaml or .toml)")
	rootCmd.PersistentFlags().BoolVar(&provider.JSONOutput, "json", false, "Print list output in JSON format")
	verbose := rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	logJSON := rootCmd.PersistentFlags().Bool("log-json", false, "Write logs in JSON format")
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("verbose") {
			provider.Overrides.Verbose = verbose
		}
		if cmd.Flags().Changed("log-json") {
			provider.Overrides.LogJSON = logJSON
		}
	}

	for _, spec := range catalog.All() {
		rootCmd.AddCommand(newEditorCmd(provider, spec))
	}

	return rootCmd
}
