package editor

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// SuccessMessage is printed once a mutation has been persisted.
const SuccessMessage = "OK"

// Reporter is told about a confirmed persistence.
type Reporter interface {
	Success()
}

// TextReporter prints SuccessMessage to Out.
type TextReporter struct {
	Out io.Writer
}

// Success prints the acknowledgement, green if Out is a terminal.
func (r TextReporter) Success() {
	fmt.Fprintln(r.Out, successColor(r.Out, SuccessMessage))
}

// successColor returns the string wrapped in green ANSI codes if w is a terminal,
// otherwise returns the string unchanged.
func successColor(w io.Writer, s string) string {
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return "\033[32m" + s + "\033[0m"
	}
	return s
}
