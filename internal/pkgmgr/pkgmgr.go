// Package pkgmgr detects the target project's package manager and runs its
// install step.
package pkgmgr

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"go.uber.org/zap"
)

// Manager is a JavaScript package manager binary.
type Manager string

const (
	Yarn Manager = "yarn"
	NPM  Manager = "npm"
)

// Detect returns Yarn when dir has a yarn.lock, NPM otherwise.
func Detect(dir string) Manager {
	if _, err := os.Stat(filepath.Join(dir, "yarn.lock")); err == nil {
		return Yarn
	}
	return NPM
}

// ScriptCommand is the shell command that runs a package.json script.
func (m Manager) ScriptCommand(script string) string {
	if m == Yarn {
		return "yarn " + script
	}
	return string(m) + " run " + script
}

// RunCommand is a Manager invocation prepared for a Runner.
type RunCommand struct {
	Binary string
	Args   []string
	Dir    string
	Stdout io.Writer
	Stderr io.Writer
}

// Runner executes a RunCommand. Tests substitute a recorder.
type Runner interface {
	Run(ctx context.Context, cmd RunCommand) error
}

// ExecRunner runs commands as subprocesses.
type ExecRunner struct{}

// Run implements Runner.
func (ExecRunner) Run(ctx context.Context, cmd RunCommand) error {
	path, err := exec.LookPath(cmd.Binary)
	if err != nil {
		return fmt.Errorf("%s not found in PATH: %w", cmd.Binary, err)
	}
	c := exec.CommandContext(ctx, path, cmd.Args...)
	c.Dir = cmd.Dir
	c.Stdout = cmd.Stdout
	c.Stderr = cmd.Stderr
	return c.Run()
}

// Installer runs "<manager> install" in a project directory.
type Installer struct {
	Runner Runner
	Stdout io.Writer
	Stderr io.Writer
	Logger *zap.Logger
}

// NewInstaller returns an Installer that execs the real binary and streams
// its output to stdout and stderr.
func NewInstaller(stdout, stderr io.Writer, logger *zap.Logger) *Installer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Installer{Runner: ExecRunner{}, Stdout: stdout, Stderr: stderr, Logger: logger}
}

// Install runs the install command and waits for it.
func (i *Installer) Install(ctx context.Context, dir string, m Manager) error {
	logger := i.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	runner := i.Runner
	if runner == nil {
		runner = ExecRunner{}
	}

	cmd := RunCommand{
		Binary: string(m),
		Args:   []string{"install"},
		Dir:    dir,
		Stdout: orDiscard(i.Stdout),
		Stderr: orDiscard(i.Stderr),
	}

	logger.Info("Installing dependencies", zap.String("manager", string(m)), zap.String("dir", dir))
	start := time.Now()

	err := runner.Run(ctx, cmd)
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("%s install canceled: %w", m, ctx.Err())
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return fmt.Errorf("%s install exited with code %d: %w", m, exitErr.ExitCode(), err)
		}
		return fmt.Errorf("failed to run %s install: %w", m, err)
	}

	logger.Debug("Dependencies installed", zap.Duration("elapsed", time.Since(start)))
	return nil
}

func orDiscard(w io.Writer) io.Writer {
	if w == nil {
		return io.Discard
	}
	return w
}
