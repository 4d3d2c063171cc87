package editor

import (
	"bytes"
	"context"
	"errors"
	"math"
	"reflect"
	"strconv"
	"strings"
	"testing"

	"file-sorter/internal/catalog"
	"file-sorter/internal/configstore"
	"file-sorter/internal/configstore/memstore"
)

const sampleConfig = `# file-sorter configuration
check_interval 5
parse_interval 3
debug_log 0
default_dir_path /home/user/sorted
enable_default_dir 1

CHECK

CHECK_DONE

TARGET
pdf /home/user/docs

TARGET_DONE`

type countingReporter struct {
	n int
}

func (r *countingReporter) Success() { r.n++ }

func newTestEditor(t *testing.T, text string) (*Editor, *memstore.Store, *countingReporter) {
	t.Helper()
	p := memstore.New(text)
	r := &countingReporter{}
	return New(configstore.New(p), r), p, r
}

func rowTexts(rows []Row) []string {
	var out []string
	for _, r := range rows {
		out = append(out, r.String())
	}
	return out
}

func mustList(t *testing.T, e *Editor, name string) []string {
	t.Helper()
	rows, err := e.List(context.Background(), name)
	if err != nil {
		t.Fatalf("List(%s): %v", name, err)
	}
	return rowTexts(rows)
}

func TestScenario_CheckLifecycle(t *testing.T) {
	e, p, r := newTestEditor(t, sampleConfig)
	ctx := context.Background()

	if err := e.Set(ctx, catalog.SetCheckInterval, "10"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if !strings.Contains(p.Text, "\ncheck_interval 10\n") {
		t.Errorf("check interval not updated:\n%s", p.Text)
	}
	if r.n != 1 {
		t.Errorf("success reports = %d, want 1", r.n)
	}

	if err := e.Add(ctx, catalog.AddCheck, "/data/in"); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if !strings.Contains(p.Text, "CHECK\n/data/in\n\nCHECK_DONE") {
		t.Errorf("new check not placed before terminator:\n%s", p.Text)
	}
	if got, want := mustList(t, e, catalog.ListChecks), []string{"1: /data/in"}; !reflect.DeepEqual(got, want) {
		t.Errorf("list-checks = %q, want %q", got, want)
	}

	if err := e.Remove(ctx, catalog.RemoveCheck, "1"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if got := mustList(t, e, catalog.ListChecks); len(got) != 0 {
		t.Errorf("list-checks after remove = %q, want empty", got)
	}

	before := p.Text
	writes := p.Writes
	err := e.Set(ctx, catalog.SetCheckInterval, "abc")
	if !errors.Is(err, ErrInvalidValue) {
		t.Errorf("Set(abc) error = %v, want ErrInvalidValue", err)
	}
	if p.Text != before || p.Writes != writes {
		t.Error("store changed after invalid set")
	}
	if r.n != 3 {
		t.Errorf("success reports = %d, want 3", r.n)
	}
}

func TestList_Options(t *testing.T) {
	e, _, _ := newTestEditor(t, sampleConfig)
	want := []string{
		"1: check_interval 5",
		"2: parse_interval 3",
		"3: debug_log 0",
		"4: default_dir_path /home/user/sorted",
		"5: enable_default_dir 1",
	}
	if got := mustList(t, e, catalog.ListOptions); !reflect.DeepEqual(got, want) {
		t.Errorf("list-options = %q, want %q", got, want)
	}
}

func TestList_Targets(t *testing.T) {
	e, _, _ := newTestEditor(t, sampleConfig)
	if got, want := mustList(t, e, catalog.ListTargets), []string{"1: pdf /home/user/docs"}; !reflect.DeepEqual(got, want) {
		t.Errorf("list-targets = %q, want %q", got, want)
	}
}

func TestList_MissingTerminatorStopsAtEnd(t *testing.T) {
	e, _, _ := newTestEditor(t, "header\nCHECK\n/a\n/b")
	if got, want := mustList(t, e, catalog.ListChecks), []string{"1: /a", "2: /b"}; !reflect.DeepEqual(got, want) {
		t.Errorf("list-checks = %q, want %q", got, want)
	}
}

func TestList_MatchStartsMidLine(t *testing.T) {
	e, _, _ := newTestEditor(t, "header\nold_check_interval 9\nparse_interval 1\nCHECK\nCHECK_DONE")
	want := []string{"1: check_interval 9", "2: parse_interval 1"}
	if got := mustList(t, e, catalog.ListOptions); !reflect.DeepEqual(got, want) {
		t.Errorf("list-options = %q, want %q", got, want)
	}
}

func TestList_Errors(t *testing.T) {
	ctx := context.Background()

	e, _, _ := newTestEditor(t, "header\ncheck_interval 5")
	if _, err := e.List(ctx, catalog.ListTargets); !errors.Is(err, ErrKeyNotFound) {
		t.Errorf("missing section error = %v, want ErrKeyNotFound", err)
	}
	if _, err := e.List(ctx, "list-everything"); !errors.Is(err, ErrUnknownCommand) {
		t.Errorf("unknown command error = %v, want ErrUnknownCommand", err)
	}
	if _, err := e.List(ctx, catalog.AddCheck); !errors.Is(err, ErrUnknownCommand) {
		t.Errorf("non-list command error = %v, want ErrUnknownCommand", err)
	}

	empty := New(configstore.New(memstore.Empty()), nil)
	if _, err := empty.List(ctx, catalog.ListChecks); !errors.Is(err, ErrConfigUnavailable) {
		t.Errorf("absent config error = %v, want ErrConfigUnavailable", err)
	}
}

func TestSet_NumericGuard(t *testing.T) {
	for _, v := range []string{"12a", "abc", "-1", " 5", "1.5", "５"} {
		t.Run(v, func(t *testing.T) {
			e, p, r := newTestEditor(t, sampleConfig)
			err := e.Set(context.Background(), catalog.SetCheckInterval, v)
			if !errors.Is(err, ErrInvalidValue) {
				t.Errorf("Set(%q) error = %v, want ErrInvalidValue", v, err)
			}
			if p.Writes != 0 || r.n != 0 {
				t.Errorf("Set(%q) wrote %d times, reported %d times", v, p.Writes, r.n)
			}
		})
	}
}

func TestSet_NonNumericOption(t *testing.T) {
	e, p, _ := newTestEditor(t, sampleConfig)
	if err := e.Set(context.Background(), catalog.SetDefaultDirPath, "/srv/sorted files"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if !strings.Contains(p.Text, "\ndefault_dir_path /srv/sorted files\n") {
		t.Errorf("default dir not updated:\n%s", p.Text)
	}
}

func TestSet_Idempotent(t *testing.T) {
	e, p, _ := newTestEditor(t, sampleConfig)
	if err := e.Set(context.Background(), catalog.SetCheckInterval, "5"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if p.Text != sampleConfig {
		t.Errorf("setting current value changed the config:\n%s", p.Text)
	}
}

func TestSet_LastMatchWins(t *testing.T) {
	e, p, _ := newTestEditor(t, "header\ncheck_interval 1\nother\ncheck_interval 2")
	if err := e.Set(context.Background(), catalog.SetCheckInterval, "7"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if want := "header\ncheck_interval 1\nother\ncheck_interval 7"; p.Text != want {
		t.Errorf("config = %q, want %q", p.Text, want)
	}
}

func TestSet_FirstLineIsNotFound(t *testing.T) {
	e, p, r := newTestEditor(t, "check_interval 5\nparse_interval 3")
	err := e.Set(context.Background(), catalog.SetCheckInterval, "10")
	if !errors.Is(err, ErrKeyNotFound) {
		t.Errorf("Set error = %v, want ErrKeyNotFound", err)
	}
	if p.Writes != 0 || r.n != 0 {
		t.Error("store written or success reported for first-line match")
	}
}

func TestSet_KeyMissing(t *testing.T) {
	e, _, _ := newTestEditor(t, "header\nparse_interval 3")
	if err := e.Set(context.Background(), catalog.SetCheckInterval, "10"); !errors.Is(err, ErrKeyNotFound) {
		t.Errorf("Set error = %v, want ErrKeyNotFound", err)
	}
}

func TestSet_WrongKind(t *testing.T) {
	e, p, _ := newTestEditor(t, sampleConfig)
	if err := e.Set(context.Background(), catalog.AddCheck, "x"); !errors.Is(err, ErrUnknownCommand) {
		t.Errorf("Set(add-check) error = %v, want ErrUnknownCommand", err)
	}
	if p.Writes != 0 {
		t.Error("store written for wrong command kind")
	}
}

func TestSet_PersistFailure(t *testing.T) {
	e, p, r := newTestEditor(t, sampleConfig)
	p.FailWrites = true
	err := e.Set(context.Background(), catalog.SetDebugLog, "1")
	if !errors.Is(err, ErrConfigUnavailable) {
		t.Errorf("Set error = %v, want ErrConfigUnavailable", err)
	}
	if r.n != 0 {
		t.Error("success reported after failed write")
	}
	if p.Text != sampleConfig {
		t.Error("config changed after failed write")
	}
}

func TestAdd_AppendsInOrder(t *testing.T) {
	e, _, _ := newTestEditor(t, sampleConfig)
	ctx := context.Background()

	for _, v := range []string{"jpg /home/user/pictures", "mp3 /home/user/music"} {
		if err := e.Add(ctx, catalog.AddTarget, v); err != nil {
			t.Fatalf("Add(%q): %v", v, err)
		}
	}

	want := []string{"1: pdf /home/user/docs", "2: jpg /home/user/pictures", "3: mp3 /home/user/music"}
	if got := mustList(t, e, catalog.ListTargets); !reflect.DeepEqual(got, want) {
		t.Errorf("list-targets = %q, want %q", got, want)
	}
}

func TestAdd_MissingTerminatorInsertsAtTop(t *testing.T) {
	e, p, _ := newTestEditor(t, "header\nCHECK\n/a")
	if err := e.Add(context.Background(), catalog.AddCheck, "/b"); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if want := "/b\nheader\n\nCHECK\n/a"; p.Text != want {
		t.Errorf("config = %q, want %q", p.Text, want)
	}
}

func TestAdd_MarkersStayInPlace(t *testing.T) {
	e, p, _ := newTestEditor(t, sampleConfig)
	if err := e.Add(context.Background(), catalog.AddCheck, "/data/in"); err != nil {
		t.Fatalf("Add: %v", err)
	}
	lines := configstore.Parse(p.Text).Lines()
	start := indexOf(lines, catalog.MarkerCheck)
	end := indexOf(lines, catalog.MarkerCheckDone)
	if start < 0 || end != start+2 || lines[start+1] != "/data/in" {
		t.Errorf("unexpected section layout: %q", lines)
	}
	if lines[len(lines)-1] != catalog.MarkerTargetDone {
		t.Errorf("last line = %q, want %q", lines[len(lines)-1], catalog.MarkerTargetDone)
	}
}

func TestAddRemove_Inverse(t *testing.T) {
	e, p, _ := newTestEditor(t, sampleConfig)
	ctx := context.Background()

	if err := e.Add(ctx, catalog.AddTarget, "txt /home/user/notes"); err != nil {
		t.Fatalf("Add: %v", err)
	}
	rows := mustList(t, e, catalog.ListTargets)
	if err := e.Remove(ctx, catalog.RemoveTarget, "2"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows after add = %q, want 2 rows", rows)
	}
	if p.Text != sampleConfig {
		t.Errorf("config after add+remove = %q, want it unchanged", p.Text)
	}
}

func TestRemove_RowParsing(t *testing.T) {
	tests := []struct {
		row     string
		wantErr error
		want    []string
	}{
		{"1", nil, []string{"1: /b", "2: /c"}},
		{"2", nil, []string{"1: /a", "2: /c"}},
		{"3xyz", nil, []string{"1: /a", "2: /b"}},
		{"", ErrProtectedLine, nil},
		{"abc", ErrProtectedLine, nil},
		{"0", ErrProtectedLine, nil},
		{"4", ErrProtectedLine, nil},
		{"5", ErrRowOutOfRange, nil},
		{"99999999999999999999999", ErrRowOutOfRange, nil},
		{strconv.Itoa(math.MaxInt), ErrRowOutOfRange, nil},
		{strconv.Itoa(math.MaxInt) + "rows", ErrRowOutOfRange, nil},
	}

	for _, tt := range tests {
		t.Run(tt.row, func(t *testing.T) {
			const text = "header\nCHECK\n/a\n/b\n/c\nCHECK_DONE"
			e, p, r := newTestEditor(t, text)
			err := e.Remove(context.Background(), catalog.RemoveCheck, tt.row)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Remove(%q) error = %v, want %v", tt.row, err, tt.wantErr)
				}
				if p.Writes != 0 || r.n != 0 {
					t.Errorf("Remove(%q) mutated the store", tt.row)
				}
				return
			}
			if err != nil {
				t.Fatalf("Remove(%q): %v", tt.row, err)
			}
			if got := mustList(t, e, catalog.ListChecks); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("list-checks = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRemove_StartMarkerMissing(t *testing.T) {
	e, _, _ := newTestEditor(t, "header\ncheck_interval 5")
	if err := e.Remove(context.Background(), catalog.RemoveTarget, "1"); !errors.Is(err, ErrKeyNotFound) {
		t.Errorf("Remove error = %v, want ErrKeyNotFound", err)
	}
}

func TestRemove_ConfigUnavailable(t *testing.T) {
	e := New(configstore.New(memstore.Empty()), nil)
	if err := e.Remove(context.Background(), catalog.RemoveCheck, "1"); !errors.Is(err, ErrConfigUnavailable) {
		t.Errorf("Remove error = %v, want ErrConfigUnavailable", err)
	}
}

func TestTextReporter(t *testing.T) {
	var buf bytes.Buffer
	TextReporter{Out: &buf}.Success()
	if got := buf.String(); got != "OK\n" {
		t.Errorf("Success() printed %q, want %q", got, "OK\n")
	}
}

func indexOf(lines []string, s string) int {
	for i, l := range lines {
		if l == s {
			return i
		}
	}
	return -1
}
