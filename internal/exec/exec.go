package exec

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

// Result holds the output and exit code of a command execution.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Runner is an interface for executing external commands.
// Use DefaultRunner for real commands and MockRunner for tests.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (Result, error)
	LookPath(name string) (string, error)
}

// DefaultRunner executes commands on the real system.
type DefaultRunner struct{}

// Run executes the named command with the given arguments using the real system.
func (d *DefaultRunner) Run(ctx context.Context, name string, args ...string) (Result, error) {
	return Run(ctx, name, args...)
}

// LookPath searches PATH for name.
func (d *DefaultRunner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

// Run executes the named command with the given arguments and returns
// the captured stdout, stderr, and exit code.
func Run(ctx context.Context, name string, args ...string) (Result, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	result := Result{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
		}
		return result, fmt.Errorf("command %q failed: %w\nstderr: %s", name, err, stderr.String())
	}

	return result, nil
}

// chromeCandidates lists browser executables chromedp can drive, most
// specific first.
var chromeCandidates = []string{
	"google-chrome",
	"google-chrome-stable",
	"chromium",
	"chromium-browser",
	"chrome",
	"headless-shell",
	"msedge",
}

// FindChrome returns the first Chrome-compatible executable found via r, or
// "" if none is installed. An explicit path is returned as is when it resolves.
func FindChrome(r Runner, explicit string) string {
	if explicit != "" {
		if p, err := r.LookPath(explicit); err == nil {
			return p
		}
		return ""
	}
	for _, name := range chromeCandidates {
		if p, err := r.LookPath(name); err == nil {
			return p
		}
	}
	return ""
}

// OpenCommand returns the command that opens a file with the desktop's
// default application on goos.
func OpenCommand(goos, path string) (string, []string) {
	switch goos {
	case "darwin":
		return "open", []string{path}
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", path}
	default:
		return "xdg-open", []string{path}
	}
}

// Open opens path with the default application for this platform.
func Open(ctx context.Context, r Runner, path string) error {
	name, args := OpenCommand(runtime.GOOS, path)
	if _, err := r.Run(ctx, name, args...); err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	return nil
}

// MockRunner is a test double that returns pre-configured results for commands.
type MockRunner struct {
	Results map[string]Result
	Paths   map[string]string
	Calls   []string
}

// Run looks up the command key in the Results map and returns the matching result.
// The key is formed as "name arg1 arg2 ...".
func (m *MockRunner) Run(ctx context.Context, name string, args ...string) (Result, error) {
	key := name
	if len(args) > 0 {
		key = name + " " + strings.Join(args, " ")
	}
	m.Calls = append(m.Calls, key)

	if result, ok := m.Results[key]; ok {
		if result.ExitCode != 0 {
			return result, fmt.Errorf("command %q exited with code %d", key, result.ExitCode)
		}
		return result, nil
	}

	return Result{}, fmt.Errorf("unexpected command: %q", key)
}

// LookPath resolves name from the Paths map.
func (m *MockRunner) LookPath(name string) (string, error) {
	if p, ok := m.Paths[name]; ok {
		return p, nil
	}
	return "", fmt.Errorf("%s: %w", name, exec.ErrNotFound)
}
