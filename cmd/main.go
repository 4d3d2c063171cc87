// sorter edits the configuration of the file-sorter daemon.
package main

import (
	"os"

	"file-sorter/internal/cmd"
)

var (
	run    = cmd.Execute
	osExit = os.Exit
)

func main() {
	osExit(run())
}
