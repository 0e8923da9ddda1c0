package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	huerror "github.com/msto63/helperutil/core/error"
	huerrors "github.com/msto63/helperutil/core/errors"
	"github.com/msto63/helperutil/pkg/version"
)

// runCLI executes a fresh command tree with an isolated config search path
func runCLI(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	root := NewRootCmd()
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func lines(s string) []string {
	return strings.Split(strings.TrimRight(s, "\n"), "\n")
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestSimpleCommands(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{"pad", []string{"pad", "--length", "5", "42"}, "00042\n"},
		{"pad multi-rune prefix", []string{"pad", "--length", "6", "--prefix", "ab", "7"}, "ababa7\n"},
		{"pad never truncates", []string{"pad", "--length", "2", "12345"}, "12345\n"},
		{"trim", []string{"trim", "--length", "8", "hello wonderful world"}, "hello...\n"},
		{"trim short input", []string{"trim", "short"}, "short\n"},
		{"mask default", []string{"mask", "1234567890"}, "12****7890\n"},
		{"mask explicit", []string{"mask", "--start", "0", "--length", "4", "--char", "#", "1234567890"}, "####567890\n"},
		{"contains ignores case", []string{"contains", "Hello World", "WORLD"}, "true\n"},
		{"fullname first only", []string{"fullname", "Ada"}, "Ada\n"},
		{"fullname", []string{"fullname", "Ada", "Lovelace"}, "Ada Lovelace\n"},
		{"time12", []string{"time12", "14:30", "09:05:59", "nope"}, "02:30 PM\n09:05 AM\nnope\n"},
		{"round", []string{"round", "1.005", "2.344"}, "1.01\n2.34\n"},
		{"round half-even", []string{"round", "--places", "0", "--mode", "half-even", "2.5"}, "2\n"},
		{"os detect", []string{"os", "--detect", "Darwin"}, "macos\n"},
		{"version short", []string{"version", "--short"}, version.Version + "\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := runCLI(t, "", tt.args...)
			if err != nil {
				t.Fatalf("Execute(%v) error = %v", tt.args, err)
			}
			if diff := cmp.Diff(tt.expected, stdout); diff != "" {
				t.Errorf("output mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestUID(t *testing.T) {
	stdout, _, err := runCLI(t, "", "uid", "--length", "12", "--prefix", "ord_", "--count", "3")
	if err != nil {
		t.Fatal(err)
	}

	ids := lines(stdout)
	if len(ids) != 3 {
		t.Fatalf("got %d ids: %q", len(ids), stdout)
	}
	for _, id := range ids {
		if len(id) != 12 || !strings.HasPrefix(id, "ord_") || id != strings.ToLower(id) {
			t.Errorf("unexpected id %q", id)
		}
	}
}

func TestUIDPrefixTooLong(t *testing.T) {
	_, _, err := runCLI(t, "", "uid", "--length", "2", "--prefix", "abc")
	if !huerror.HasCode(err, huerror.CodeValueOutOfRange) {
		t.Errorf("error = %v", err)
	}
}

func TestPin(t *testing.T) {
	stdout, _, err := runCLI(t, "", "pin", "--digits", "4")
	if err != nil {
		t.Fatal(err)
	}
	pin := strings.TrimSpace(stdout)
	if len(pin) != 4 || strings.Trim(pin, "0123456789") != "" {
		t.Errorf("pin = %q", pin)
	}
}

func TestArgumentErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"pad requires length", []string{"pad", "42"}},
		{"pad rejects non-integers", []string{"pad", "--length", "3", "4.2"}},
		{"mask char must be one rune", []string{"mask", "--char", "##", "secret"}},
		{"unknown rounding mode", []string{"round", "--mode", "banker", "1.5"}},
		{"round rejects text", []string{"round", "abc"}},
		{"daterange needs two dates", []string{"daterange", "2024-01-01"}},
		{"daterange parse error", []string{"daterange", "tomorrow-ish", "2024-01-01"}},
		{"unknown command", []string{"frobnicate"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := runCLI(t, "", tt.args...); err == nil {
				t.Errorf("Execute(%v) succeeded", tt.args)
			}
		})
	}
}

func TestPredicateExitCodes(t *testing.T) {
	stdout, _, err := runCLI(t, "", "contains", "--case-sensitive", "Hello World", "WORLD")
	if stdout != "false\n" || ExitCode(err) != 1 {
		t.Errorf("contains = %q, exit %d", stdout, ExitCode(err))
	}

	stdout, _, err = runCLI(t, "", "timezone", "Europe/Berlin", "Mars/Base")
	if ExitCode(err) != 1 {
		t.Errorf("timezone exit = %d", ExitCode(err))
	}
	out := lines(stdout)
	if len(out) != 2 || !strings.Contains(out[0], "valid") || !strings.Contains(out[1], "invalid") {
		t.Errorf("timezone output = %q", stdout)
	}

	if _, _, err := runCLI(t, "", "timezone", "Asia/Calcutta", "UTC"); err != nil {
		t.Errorf("timezone with valid names: %v", err)
	}
}

func TestDateRange(t *testing.T) {
	stdout, _, err := runCLI(t, "", "daterange", "2024-02-27", "2024-03-01")
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"2024-02-27", "2024-02-28", "2024-02-29", "2024-03-01"}
	if diff := cmp.Diff(want, lines(stdout)); diff != "" {
		t.Errorf("inclusive range mismatch (-want +got):\n%s", diff)
	}

	stdout, _, err = runCLI(t, "", "daterange", "--inclusive=false", "2024-02-27", "2024-03-01")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(want[:3], lines(stdout)); diff != "" {
		t.Errorf("exclusive range mismatch (-want +got):\n%s", diff)
	}

	stdout, _, err = runCLI(t, "", "daterange", "2024-03-01", "2024-02-27")
	if err != nil || stdout != "2024-03-01\n" {
		t.Errorf("reversed range = %q, %v", stdout, err)
	}

	stdout, _, err = runCLI(t, "", "daterange", "--inclusive=false", "2024-03-01", "2024-02-27")
	if err != nil || stdout != "" {
		t.Errorf("reversed exclusive range = %q, %v", stdout, err)
	}
}

func TestOS(t *testing.T) {
	stdout, _, err := runCLI(t, "", "os")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(stdout, runtime.GOOS) {
		t.Errorf("os output missing GOOS:\n%s", stdout)
	}
}

func TestVersion(t *testing.T) {
	stdout, _, err := runCLI(t, "", "version")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"helperutil v" + version.Version, "Git Commit", runtime.Version()} {
		if !strings.Contains(stdout, want) {
			t.Errorf("version output missing %q:\n%s", want, stdout)
		}
	}
}

func TestValidate(t *testing.T) {
	valid := writeFile(t, "settings.toml", "[mask]\nchar = \"#\"\n")
	stdout, _, err := runCLI(t, "", "validate", valid)
	if err != nil || !strings.Contains(stdout, "valid toml") {
		t.Errorf("validate valid file = %q, %v", stdout, err)
	}

	broken := writeFile(t, "data.json", `{"a": `)
	_, _, err = runCLI(t, "", "validate", broken)
	if !huerror.HasCode(err, huerror.CodeInvalidFormat) {
		t.Errorf("validate broken file error = %v", err)
	}

	unknown := writeFile(t, "notes.txt", "hello")
	if _, _, err := runCLI(t, "", "validate", unknown); err == nil {
		t.Error("validate without a known format succeeded")
	}

	stdout, _, err = runCLI(t, "a: 1\nb: [2, 3]\n", "validate", "--format", "yaml", "-")
	if err != nil || !strings.Contains(stdout, "valid yaml") {
		t.Errorf("validate stdin = %q, %v", stdout, err)
	}

	if _, _, err := runCLI(t, "", "validate", filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("validate of a missing file succeeded")
	}
}

func TestConfigDefaults(t *testing.T) {
	path := writeFile(t, "helperutil.toml", `
[mask]
char = "#"
start = 0

[trim]
length = 6
delimiter = "~"
`)

	stdout, _, err := runCLI(t, "", "--config", path, "mask", "1234")
	if err != nil {
		t.Fatal(err)
	}
	if stdout != "##34\n" {
		t.Errorf("mask with config = %q", stdout)
	}

	stdout, _, err = runCLI(t, "", "--config", path, "trim", "abcdefghij")
	if err != nil {
		t.Fatal(err)
	}
	if stdout != "abcde~\n" {
		t.Errorf("trim with config = %q", stdout)
	}

	stdout, _, err = runCLI(t, "", "--config", path, "mask", "--char", "x", "1234")
	if err != nil || stdout != "xx34\n" {
		t.Errorf("flag should beat config: %q, %v", stdout, err)
	}
}

func TestConfigEnvOverride(t *testing.T) {
	path := writeFile(t, "helperutil.toml", "[mask]\nchar = \"#\"\nstart = 0\n")
	t.Setenv("HELPERUTIL_MASK_CHAR", "@")

	stdout, _, err := runCLI(t, "", "--config", path, "mask", "1234")
	if err != nil {
		t.Fatal(err)
	}
	if stdout != "@@34\n" {
		t.Errorf("mask with env override = %q", stdout)
	}
}

func TestConfigErrors(t *testing.T) {
	invalid := writeFile(t, "helperutil.toml", "[mask]\nchar = \"ab\"\n")
	_, _, err := runCLI(t, "", "--config", invalid, "os")
	if !huerror.HasCode(err, huerror.CodeInvalidConfig) {
		t.Errorf("invalid config error = %v", err)
	}

	_, _, err = runCLI(t, "", "--config", filepath.Join(t.TempDir(), "absent.toml"), "os")
	if !huerror.HasCode(err, huerror.CodeNotFound) {
		t.Errorf("missing config error = %v", err)
	}
}

func TestExec(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("process tests assume a POSIX userland")
	}

	stdout, _, err := runCLI(t, "", "exec", "--", "printf", "%s", "a b")
	if err != nil || stdout != "a b" {
		t.Errorf("exec with separate args = %q, %v", stdout, err)
	}

	stdout, _, err = runCLI(t, "", "exec", "echo 'one two'")
	if err != nil || stdout != "one two\n" {
		t.Errorf("exec with one command line = %q, %v", stdout, err)
	}

	stdout, _, err = runCLI(t, "", "exec", "echo hello | tr a-z A-Z")
	if err != nil || stdout != "HELLO\n" {
		t.Errorf("exec with a pipeline = %q, %v", stdout, err)
	}

	stdout, stderr, err := runCLI(t, "", "exec", "--shell", "echo out; echo err >&2; exit 7")
	if ExitCode(err) != 7 {
		t.Errorf("exit code = %d (%v)", ExitCode(err), err)
	}
	if stdout != "out\n" || stderr != "err\n" {
		t.Errorf("stdout = %q, stderr = %q", stdout, stderr)
	}

	_, _, err = runCLI(t, "", "exec", "--timeout", "100ms", "--shell", "exec sleep 10")
	if !huerror.HasCode(err, huerror.CodeTimeout) {
		t.Errorf("timeout error = %v", err)
	}
}

func TestCommandString(t *testing.T) {
	tests := []struct {
		args      []string
		shellMode bool
		expected  string
	}{
		{[]string{"ls -la"}, false, "ls -la"},
		{[]string{"echo", "a b"}, false, "echo 'a b'"},
		{[]string{"echo", "plain"}, false, "echo plain"},
		{[]string{"echo", "a", "|", "wc"}, true, "echo a | wc"},
	}

	for _, tt := range tests {
		if got := commandString(tt.args, tt.shellMode); got != tt.expected {
			t.Errorf("commandString(%q, %v) = %q, want %q", tt.args, tt.shellMode, got, tt.expected)
		}
	}
}

func TestExitCode(t *testing.T) {
	if ExitCode(nil) != 0 {
		t.Error("ExitCode(nil) != 0")
	}
	if ExitCode(errors.New("boom")) != 1 {
		t.Error("plain errors should exit 1")
	}
	if ExitCode(&ExitCodeError{Code: 42}) != 42 {
		t.Error("ExitCodeError code not used")
	}
}

func TestPrintError(t *testing.T) {
	var buf bytes.Buffer
	printError(&buf, errors.New("boom"))
	if !strings.Contains(buf.String(), "Error:") || !strings.Contains(buf.String(), "boom") {
		t.Errorf("printError output = %q", buf.String())
	}

	buf.Reset()
	printError(&buf, huerrors.OsxSpawnFailed("missing-tool", errors.New("not found")))
	if !strings.Contains(buf.String(), "Error (high):") {
		t.Errorf("spawn failure output = %q", buf.String())
	}

	buf.Reset()
	printError(&buf, huerrors.InvalidInput(huerrors.ModuleStringx, "pad", -1, "a length"))
	if strings.Contains(buf.String(), "(low)") || !strings.Contains(buf.String(), "Error:") {
		t.Errorf("input error output = %q", buf.String())
	}
}

func TestLogging(t *testing.T) {
	_, stderr, err := runCLI(t, "", "--verbose", "--log-format", "logfmt", "os")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(stderr, `message="configuration loaded"`) || !strings.Contains(stderr, "level=debug") {
		t.Errorf("stderr = %q, want a logfmt debug entry", stderr)
	}

	_, stderr, err = runCLI(t, "", "os")
	if err != nil || stderr != "" {
		t.Errorf("quiet run wrote %q, %v", stderr, err)
	}

	_, _, err = runCLI(t, "", "--log-format", "xml", "os")
	if !huerror.HasCode(err, huerror.CodeInvalidInput) {
		t.Errorf("invalid --log-format error = %v", err)
	}
}
