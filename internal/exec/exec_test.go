package exec

import (
	"context"
	"runtime"
	"testing"
)

func TestRun_SimpleCommand(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("test uses unix commands")
	}

	result, err := Run(context.Background(), "echo", "hello")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result.ExitCode != 0 {
		t.Errorf("exit code = %d, want 0", result.ExitCode)
	}
	if result.Stdout != "hello\n" {
		t.Errorf("stdout = %q, want %q", result.Stdout, "hello\n")
	}
}

func TestRun_FailingCommand(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("test uses unix commands")
	}

	result, err := Run(context.Background(), "false")
	if err == nil {
		t.Error("expected error for failing command")
	}
	if result.ExitCode != 1 {
		t.Errorf("exit code = %d, want 1", result.ExitCode)
	}
}

func TestRun_CommandNotFound(t *testing.T) {
	_, err := Run(context.Background(), "nonexistent_command_12345")
	if err == nil {
		t.Error("expected error for missing command")
	}
}

func TestFindChrome(t *testing.T) {
	mock := &MockRunner{Paths: map[string]string{
		"chromium":        "/usr/bin/chromium",
		"/opt/chrome/bin": "/opt/chrome/bin",
	}}

	if got := FindChrome(mock, ""); got != "/usr/bin/chromium" {
		t.Errorf("FindChrome = %q, want /usr/bin/chromium", got)
	}
	if got := FindChrome(mock, "/opt/chrome/bin"); got != "/opt/chrome/bin" {
		t.Errorf("FindChrome(explicit) = %q", got)
	}
	if got := FindChrome(mock, "/missing/chrome"); got != "" {
		t.Errorf("FindChrome(missing explicit) = %q, want empty", got)
	}
	if got := FindChrome(&MockRunner{}, ""); got != "" {
		t.Errorf("FindChrome(none) = %q, want empty", got)
	}
}

func TestOpenCommand(t *testing.T) {
	tests := []struct {
		goos string
		name string
	}{
		{"darwin", "open"},
		{"windows", "rundll32"},
		{"linux", "xdg-open"},
	}
	for _, tt := range tests {
		name, args := OpenCommand(tt.goos, "out.pdf")
		if name != tt.name {
			t.Errorf("%s: name = %q, want %q", tt.goos, name, tt.name)
		}
		if args[len(args)-1] != "out.pdf" {
			t.Errorf("%s: args = %v, want path last", tt.goos, args)
		}
	}
}

func TestOpen(t *testing.T) {
	name, args := OpenCommand(runtime.GOOS, "out.pdf")
	key := name
	for _, a := range args {
		key += " " + a
	}
	mock := &MockRunner{Results: map[string]Result{key: {}}}

	if err := Open(context.Background(), mock, "out.pdf"); err != nil {
		t.Fatalf("Open: %v", err)
	}
	if len(mock.Calls) != 1 || mock.Calls[0] != key {
		t.Errorf("calls = %v, want [%s]", mock.Calls, key)
	}
}

func TestMockRunner(t *testing.T) {
	mock := &MockRunner{
		Results: map[string]Result{
			"xdg-open out.pdf": {Stdout: "", ExitCode: 0},
			"xdg-open bad.pdf": {Stderr: "no handler", ExitCode: 4},
		},
	}

	if _, err := mock.Run(context.Background(), "xdg-open", "out.pdf"); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if _, err := mock.Run(context.Background(), "xdg-open", "bad.pdf"); err == nil {
		t.Error("expected error for non-zero exit code")
	}
	if _, err := mock.Run(context.Background(), "unknown"); err == nil {
		t.Error("expected error for unexpected command")
	}
}
