package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Iron-Ham/todomvc/internal/config"
	apperrors "github.com/Iron-Ham/todomvc/internal/errors"
	"github.com/Iron-Ham/todomvc/internal/export"
	"github.com/Iron-Ham/todomvc/internal/todo"
)

// executeCommand runs the root command with args and returns captured output
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	// Flag variables outlive a single execution.
	listRoute = todo.RouteAll
	toggleAllUndo = false
	exportFormat = string(export.FormatJSON)
	exportOutput = ""
	exportRoute = todo.RouteAll

	if args == nil {
		args = []string{}
	}
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

// setupTestEnvironment points config and data at a temporary directory
func setupTestEnvironment(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("TODOMVC_PATHS_DATA_DIR", filepath.Join(dir, "data"))
	t.Setenv("TODOMVC_STORE_DRIVER", "file")
	return dir
}

func mustExecute(t *testing.T, args ...string) string {
	t.Helper()
	out, err := executeCommand(t, args...)
	if err != nil {
		t.Fatalf("%v: error = %v\noutput:\n%s", args, err, out)
	}
	return out
}

func assertContains(t *testing.T, out string, want ...string) {
	t.Helper()
	for _, w := range want {
		if !strings.Contains(out, w) {
			t.Errorf("output missing %q:\n%s", w, out)
		}
	}
}

func TestRootCommand(t *testing.T) {
	if rootCmd.Use != "todomvc" {
		t.Errorf("rootCmd.Use = %q, want %q", rootCmd.Use, "todomvc")
	}

	expectedCmds := []string{"start", "add", "list", "toggle", "toggle-all", "edit", "rm", "clear-completed", "export", "config"}
	cmdMap := make(map[string]bool)
	for _, cmd := range rootCmd.Commands() {
		cmdMap[cmd.Name()] = true
	}
	for _, name := range expectedCmds {
		if !cmdMap[name] {
			t.Errorf("missing subcommand %q", name)
		}
	}
}

func TestAddAndList(t *testing.T) {
	setupTestEnvironment(t)

	out := mustExecute(t, "add", "Buy", "milk")
	assertContains(t, out, "Added #1: Buy milk", "1 item left")

	out = mustExecute(t, "add", "  Walk the dog  ")
	assertContains(t, out, "Added #2: Walk the dog", "2 items left")

	out = mustExecute(t, "list")
	assertContains(t, out, "[ ]   1  Buy milk", "[ ]   2  Walk the dog", "2 items left")
}

func TestListEmpty(t *testing.T) {
	setupTestEnvironment(t)

	out := mustExecute(t, "list")
	assertContains(t, out, "No todos")
	if strings.Contains(out, "left") {
		t.Errorf("empty list should have no counter line:\n%s", out)
	}
}

func TestAdd_BlankTitle(t *testing.T) {
	setupTestEnvironment(t)

	_, err := executeCommand(t, "add", "   ")
	if !apperrors.Is(err, apperrors.ErrInvalidInput) {
		t.Errorf("error = %v, want ErrInvalidInput", err)
	}
}

func TestToggle(t *testing.T) {
	setupTestEnvironment(t)
	mustExecute(t, "add", "Buy milk")
	mustExecute(t, "add", "Walk the dog")

	out := mustExecute(t, "toggle", "1")
	assertContains(t, out, "Completed #1", "1 item left, 1 completed")

	out = mustExecute(t, "list", "--route", "#/completed")
	assertContains(t, out, "[x]   1  Buy milk")
	if strings.Contains(out, "Walk the dog") {
		t.Errorf("completed list should not show active todos:\n%s", out)
	}

	out = mustExecute(t, "toggle", "#1")
	assertContains(t, out, "Reopened #1", "2 items left")
}

func TestToggle_Errors(t *testing.T) {
	setupTestEnvironment(t)
	mustExecute(t, "add", "Buy milk")

	tests := []struct {
		name string
		args []string
		want error
	}{
		{"missing task", []string{"toggle", "9"}, apperrors.ErrTaskNotFound},
		{"not a number", []string{"toggle", "abc"}, apperrors.ErrInvalidInput},
		{"zero", []string{"rm", "0"}, apperrors.ErrInvalidInput},
		{"missing edit", []string{"edit", "9", "title"}, apperrors.ErrTaskNotFound},
		{"missing remove", []string{"rm", "9"}, apperrors.ErrTaskNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := executeCommand(t, tt.args...)
			if !apperrors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
			if code := ExitCode(err); code != ExitUsage {
				t.Errorf("ExitCode() = %d, want %d", code, ExitUsage)
			}
		})
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"success", nil, ExitOK},
		{"missing task", apperrors.TaskNotFound(3), ExitUsage},
		{"missing task from store", apperrors.NewStoreError("update", apperrors.ErrTaskNotFound), ExitUsage},
		{"blank title", apperrors.NewValidationError("title must not be blank"), ExitUsage},
		{"invalid config", apperrors.Wrap(config.ValidationErrors{{Field: "store.driver"}}, "invalid configuration"), ExitUsage},
		{"store failure", apperrors.NewStoreError("update", apperrors.New("disk full")), ExitError},
		{"plain error", apperrors.New("boom"), ExitError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCode(tt.err); got != tt.want {
				t.Errorf("ExitCode(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestToggleAll(t *testing.T) {
	setupTestEnvironment(t)
	mustExecute(t, "add", "Buy milk")
	mustExecute(t, "add", "Walk the dog")
	mustExecute(t, "toggle", "2")

	out := mustExecute(t, "toggle-all")
	assertContains(t, out, "Completed #1", "0 items left, 2 completed")
	if strings.Contains(out, "#2") {
		t.Errorf("toggle-all should only change todos that differ:\n%s", out)
	}

	out = mustExecute(t, "toggle-all", "--undo")
	assertContains(t, out, "Reopened #1", "Reopened #2", "2 items left")
}

func TestEdit(t *testing.T) {
	setupTestEnvironment(t)
	mustExecute(t, "add", "Buy milk")

	out := mustExecute(t, "edit", "1", "  Buy", "oat", "milk ")
	assertContains(t, out, `Renamed #1 to "Buy oat milk"`)

	out = mustExecute(t, "list")
	assertContains(t, out, "Buy oat milk")

	out = mustExecute(t, "edit", "1", "   ")
	assertContains(t, out, "Removed #1")

	out = mustExecute(t, "list")
	assertContains(t, out, "No todos")
}

func TestRemove(t *testing.T) {
	setupTestEnvironment(t)
	mustExecute(t, "add", "Buy milk")
	mustExecute(t, "add", "Walk the dog")

	out := mustExecute(t, "rm", "1")
	assertContains(t, out, "Removed #1", "1 item left")

	out = mustExecute(t, "add", "Write report")
	assertContains(t, out, "Added #3: Write report")
}

func TestClearCompleted(t *testing.T) {
	setupTestEnvironment(t)
	mustExecute(t, "add", "Buy milk")
	mustExecute(t, "add", "Walk the dog")

	out := mustExecute(t, "clear-completed")
	assertContains(t, out, "No completed todos")

	mustExecute(t, "toggle", "1")
	out = mustExecute(t, "clear-completed")
	assertContains(t, out, "Removed #1", "1 item left")

	out = mustExecute(t, "list")
	if strings.Contains(out, "Buy milk") {
		t.Errorf("completed todo still listed:\n%s", out)
	}
}

func TestExport(t *testing.T) {
	dir := setupTestEnvironment(t)
	mustExecute(t, "add", "Buy milk")
	mustExecute(t, "add", "Walk the dog")
	mustExecute(t, "toggle", "2")

	t.Run("json to stdout", func(t *testing.T) {
		out := mustExecute(t, "export", "--route", "#/active")
		var report export.Report
		if err := json.Unmarshal([]byte(out), &report); err != nil {
			t.Fatalf("output is not JSON: %v\n%s", err, out)
		}
		if len(report.Tasks) != 1 || report.Tasks[0].Title != "Buy milk" {
			t.Errorf("Tasks = %+v, want [Buy milk]", report.Tasks)
		}
		if report.Counts.Total != 2 || report.Counts.Completed != 1 {
			t.Errorf("Counts = %+v, want 2 total, 1 completed", report.Counts)
		}
	})

	t.Run("pdf to file", func(t *testing.T) {
		path := filepath.Join(dir, "todos.pdf")
		out := mustExecute(t, "export", "-f", "pdf", "-o", path)
		assertContains(t, out, "Exported 2 todos to "+path)

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("failed to read export: %v", err)
		}
		if !bytes.HasPrefix(data, []byte("%PDF-")) {
			t.Errorf("export does not start with a PDF header: %q", data[:min(len(data), 16)])
		}
	})

	t.Run("unknown format", func(t *testing.T) {
		_, err := executeCommand(t, "export", "--format", "xml")
		if !apperrors.Is(err, apperrors.ErrUnsupportedFormat) {
			t.Errorf("error = %v, want ErrUnsupportedFormat", err)
		}
	})
}

func TestSQLiteDriver(t *testing.T) {
	setupTestEnvironment(t)
	t.Setenv("TODOMVC_STORE_DRIVER", "sqlite")

	mustExecute(t, "add", "Buy milk")
	out := mustExecute(t, "list")
	assertContains(t, out, "[ ]   1  Buy milk", "1 item left")
}

func TestInvalidConfig(t *testing.T) {
	setupTestEnvironment(t)
	t.Setenv("TODOMVC_STORE_DRIVER", "redis")

	_, err := executeCommand(t, "list")
	if !apperrors.Is(err, apperrors.ErrInvalidInput) {
		t.Errorf("error = %v, want ErrInvalidInput", err)
	}
}

func TestConfigShow(t *testing.T) {
	dir := setupTestEnvironment(t)

	out := mustExecute(t, "config", "show")
	assertContains(t, out, "driver: file", "default_route: '#/'", "# Data directory: "+filepath.Join(dir, "data"))
}

func TestConfigInitAndPath(t *testing.T) {
	dir := setupTestEnvironment(t)
	want := filepath.Join(dir, "config", "todomvc", "config.yaml")

	out := mustExecute(t, "config", "path")
	if strings.TrimSpace(out) != want {
		t.Errorf("config path = %q, want %q", strings.TrimSpace(out), want)
	}

	mustExecute(t, "config", "init")
	if _, err := os.Stat(want); err != nil {
		t.Fatalf("config file not created: %v", err)
	}

	if _, err := executeCommand(t, "config", "init"); err == nil {
		t.Error("second config init should fail")
	}
}

func TestStart_NoTerminal(t *testing.T) {
	setupTestEnvironment(t)

	for _, args := range [][]string{nil, {"start"}} {
		_, err := executeCommand(t, args...)
		if err != errNoTerminal {
			t.Errorf("%v: error = %v, want errNoTerminal", args, err)
		}
	}
}

func TestParseID(t *testing.T) {
	tests := []struct {
		arg     string
		want    int
		wantErr bool
	}{
		{"1", 1, false},
		{"#42", 42, false},
		{"0", 0, true},
		{"-3", 0, true},
		{"x", 0, true},
	}
	for _, tt := range tests {
		got, err := parseID(tt.arg)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseID(%q) error = %v, wantErr %v", tt.arg, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("parseID(%q) = %d, want %d", tt.arg, got, tt.want)
		}
	}
}
