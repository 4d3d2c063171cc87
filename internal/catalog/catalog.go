// Package catalog is the static table of editor commands and the config keys
// each one operates on.
package catalog

// Config keys. Scalar options are stored as "<key> <value>" lines; the
// upper-case keys are section markers and appear as whole lines.
const (
	KeyCheckInterval    = "check_interval"
	KeyParseInterval    = "parse_interval"
	KeyDebugLog         = "debug_log"
	KeyDefaultDirPath   = "default_dir_path"
	KeyEnableDefaultDir = "enable_default_dir"

	MarkerCheck      = "CHECK"
	MarkerCheckDone  = "CHECK_DONE"
	MarkerTarget     = "TARGET"
	MarkerTargetDone = "TARGET_DONE"
)

// Command names.
const (
	SetCheckInterval    = "set-check-interval"
	SetParseInterval    = "set-parse-interval"
	SetDebugLog         = "set-debug-log"
	SetDefaultDirPath   = "set-default-dir-path"
	SetEnableDefaultDir = "set-enable-default-dir"
	AddCheck            = "add-check"
	AddTarget           = "add-target"
	RemoveCheck         = "remove-check"
	RemoveTarget        = "remove-target"
	ListOptions         = "list-options"
	ListTargets         = "list-targets"
	ListChecks          = "list-checks"
)

// Kind is the operation a command maps to.
type Kind int

const (
	KindSet Kind = iota
	KindAdd
	KindRemove
	KindList
)

func (k Kind) String() string {
	switch k {
	case KindSet:
		return "set"
	case KindAdd:
		return "add"
	case KindRemove:
		return "remove"
	case KindList:
		return "list"
	default:
		return "unknown"
	}
}

// CommandSpec describes one command. SecondaryKey is only meaningful when
// HasSecondary is true; for list-type commands it names the section
// terminator.
type CommandSpec struct {
	Name         string
	Kind         Kind
	PrimaryKey   string
	SecondaryKey string
	HasSecondary bool
	IsNumeric    bool
	Usage        string
	Summary      string
}

var table = []CommandSpec{
	scalar(SetCheckInterval, KeyCheckInterval, true, "[value]", "Change the value of check interval."),
	scalar(SetParseInterval, KeyParseInterval, true, "[value]", "Change the value of parse interval."),
	scalar(SetDebugLog, KeyDebugLog, true, "[value]", "0:1 Change the log to debug mode (1)."),
	scalar(SetDefaultDirPath, KeyDefaultDirPath, false, "[path]", "Change the default directory path."),
	scalar(SetEnableDefaultDir, KeyEnableDefaultDir, true, "[value]", "0:1 Enable the transfer of files in default dir."),
	section(AddCheck, KindAdd, MarkerCheck, MarkerCheckDone, "[path]", "Add new check."),
	section(AddTarget, KindAdd, MarkerTarget, MarkerTargetDone, "[ext] [path]", "Add new target."),
	section(RemoveCheck, KindRemove, MarkerCheck, MarkerCheckDone, "[row number]", "Remove check."),
	section(RemoveTarget, KindRemove, MarkerTarget, MarkerTargetDone, "[row number]", "Remove target."),
	section(ListOptions, KindList, KeyCheckInterval, MarkerCheck, "", "List options."),
	section(ListTargets, KindList, MarkerTarget, MarkerTargetDone, "", "List targets."),
	section(ListChecks, KindList, MarkerCheck, MarkerCheckDone, "", "List checks."),
}

var byName = func() map[string]CommandSpec {
	m := make(map[string]CommandSpec, len(table))
	for _, c := range table {
		m[c.Name] = c
	}
	return m
}()

var markers = map[string]bool{
	MarkerCheck:      true,
	MarkerCheckDone:  true,
	MarkerTarget:     true,
	MarkerTargetDone: true,
}

func scalar(name, key string, numeric bool, usage, summary string) CommandSpec {
	return CommandSpec{
		Name:       name,
		Kind:       KindSet,
		PrimaryKey: key,
		IsNumeric:  numeric,
		Usage:      usage,
		Summary:    summary,
	}
}

func section(name string, kind Kind, start, end, usage, summary string) CommandSpec {
	return CommandSpec{
		Name:         name,
		Kind:         kind,
		PrimaryKey:   start,
		SecondaryKey: end,
		HasSecondary: true,
		Usage:        usage,
		Summary:      summary,
	}
}

// Lookup returns the command with exactly the given name.
func Lookup(name string) (CommandSpec, bool) {
	c, ok := byName[name]
	return c, ok
}

// All returns a copy of the table in declaration order.
func All() []CommandSpec {
	out := make([]CommandSpec, len(table))
	copy(out, table)
	return out
}

// IsMarker reports whether line is one of the section marker lines.
func IsMarker(line string) bool {
	return markers[line]
}

// SkipsHeader reports whether listing the command should drop the first line
// of the section (the start marker) before numbering rows.
func SkipsHeader(name string) bool {
	return name == ListChecks || name == ListTargets
}
