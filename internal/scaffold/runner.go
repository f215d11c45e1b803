package scaffold

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
)

// Runner executes package-manager commands. Injected so tests never shell
// out.
type Runner interface {
	Run(ctx context.Context, dir string, name string, args ...string) error
}

// ExecRunner runs commands through os/exec, streaming output.
type ExecRunner struct {
	Stdout io.Writer
	Stderr io.Writer
}

func (r ExecRunner) Run(ctx context.Context, dir string, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s %v failed: %w", name, args, err)
	}
	return nil
}

// DetectPackageManager prefers yarn when it is on PATH, matching what the
// hosted platform's own starters use, and falls back to npm.
func DetectPackageManager() string {
	if _, err := exec.LookPath("yarn"); err == nil {
		return "yarn"
	}
	return "npm"
}
