package runtime

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
)

// Runner looks up and executes external tools.
type Runner interface {
	// LookPath resolves name against PATH.
	LookPath(name string) (string, error)
	// Run executes name with args in dir. A process that starts and exits
	// non-zero is reported through Output.ExitCode, not an error; the error
	// is reserved for failures to start (missing binary, canceled context).
	Run(ctx context.Context, dir, name string, args ...string) (*Output, error)
}

// Output captures the result of a command execution.
type Output struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Success reports whether the command exited zero.
func (o *Output) Success() bool {
	return o != nil && o.ExitCode == 0
}

// Command is a program plus its arguments.
type Command struct {
	Name string
	Args []string
}

// String renders the command the way a user would type it.
func (c Command) String() string {
	if len(c.Args) == 0 {
		return c.Name
	}
	return c.Name + " " + strings.Join(c.Args, " ")
}

// RunCommand executes c through r and folds a non-zero exit into the error,
// for callers that only care about success or failure.
func RunCommand(ctx context.Context, r Runner, dir string, c Command) error {
	out, err := r.Run(ctx, dir, c.Name, c.Args...)
	if err != nil {
		return fmt.Errorf("running %q: %w", c.String(), err)
	}
	if !out.Success() {
		return fmt.Errorf("%q exited with code %d", c.String(), out.ExitCode)
	}
	return nil
}

// ExecRunner is the production Runner backed by os/exec.
type ExecRunner struct {
	// Logger receives debug records for every command; nil disables them.
	Logger *slog.Logger
}

// LookPath resolves name against PATH.
func (e *ExecRunner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

// Run executes the command, capturing stdout and stderr.
func (e *ExecRunner) Run(ctx context.Context, dir, name string, args ...string) (*Output, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	output := &Output{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			output.ExitCode = exitErr.ExitCode()
			e.log(name, args, dir, output)
			return output, nil
		}
		return output, fmt.Errorf("executing %s: %w", name, err)
	}

	e.log(name, args, dir, output)
	return output, nil
}

func (e *ExecRunner) log(name string, args []string, dir string, out *Output) {
	if e.Logger == nil {
		return
	}
	e.Logger.Debug("command finished",
		"command", Command{Name: name, Args: args}.String(),
		"dir", dir,
		"exit_code", out.ExitCode,
		"stderr", strings.TrimSpace(out.Stderr),
	)
}
