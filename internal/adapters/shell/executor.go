// Package shell provides the subprocess adapter.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"go.trai.ch/sail/internal/core/domain"
	"go.trai.ch/sail/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Executor implements ports.CommandRunner using os/exec.
type Executor struct {
	logger ports.Logger
}

// NewExecutor creates a new Executor.
func NewExecutor(logger ports.Logger) *Executor {
	return &Executor{
		logger: logger,
	}
}

// Run starts the command and waits for it to exit.
// The environment is os.Environ() with cmd.Env layered on top. Streams that
// are left nil are inherited from the current process, so an interactive
// program keeps its terminal.
func (e *Executor) Run(ctx context.Context, c domain.Command) (int, error) {
	if c.Name == "" {
		return -1, zerr.Wrap(domain.ErrCommandFailed, "empty command")
	}

	env := resolveEnvironment(os.Environ(), c.Env)

	// Resolve against the child's PATH, which the overrides may have changed.
	executable := c.Name
	if !filepath.IsAbs(c.Name) && !strings.ContainsRune(c.Name, filepath.Separator) {
		if lp, err := lookPath(c.Name, env); err == nil {
			executable = lp
		}
	}

	cmd := exec.CommandContext(ctx, executable, c.Args...) //nolint:gosec // user provided command
	if len(cmd.Args) > 0 {
		cmd.Args[0] = c.Name
	}
	cmd.Dir = c.Dir
	cmd.Env = env
	cmd.Stdin = c.Stdin
	if cmd.Stdin == nil {
		cmd.Stdin = os.Stdin
	}

	var pumps errgroup.Group
	if err := attach(cmd, &pumps, c.Stdout, os.Stdout, (*exec.Cmd).StdoutPipe, func(w io.Writer) { cmd.Stdout = w }); err != nil {
		return -1, startError(c, err)
	}
	if err := attach(cmd, &pumps, c.Stderr, os.Stderr, (*exec.Cmd).StderrPipe, func(w io.Writer) { cmd.Stderr = w }); err != nil {
		return -1, startError(c, err)
	}

	e.logger.Debug("starting command", "command", c.String(), "dir", c.Dir)

	if err := cmd.Start(); err != nil {
		return -1, startError(c, err)
	}

	// All pipe reads must finish before Wait closes the pipes.
	pumpErr := pumps.Wait()
	waitErr := cmd.Wait()

	if waitErr != nil {
		var exitErr *exec.ExitError
		if !errors.As(waitErr, &exitErr) {
			return -1, zerr.With(zerr.Wrap(waitErr, "failed to wait for command"), "command", c.String())
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return exitErr.ExitCode(), zerr.With(zerr.Wrap(ctxErr, "command interrupted"), "command", c.String())
		}
		return exitErr.ExitCode(), nil
	}

	if pumpErr != nil {
		return 0, zerr.With(zerr.Wrap(pumpErr, "failed to forward command output"), "command", c.String())
	}
	return 0, nil
}

// attach wires one output stream. A nil destination inherits fallback
// directly; otherwise the stream is read through a pipe by a pump goroutine so
// that writers which are not *os.File still receive everything before Run returns.
func attach(
	cmd *exec.Cmd,
	pumps *errgroup.Group,
	dst io.Writer,
	fallback *os.File,
	pipe func(*exec.Cmd) (io.ReadCloser, error),
	set func(io.Writer),
) error {
	if dst == nil {
		set(fallback)
		return nil
	}
	if f, ok := dst.(*os.File); ok {
		set(f)
		return nil
	}

	r, err := pipe(cmd)
	if err != nil {
		return err
	}
	pumps.Go(func() error {
		_, err := io.Copy(dst, r)
		if f, ok := dst.(interface{ Flush() error }); ok {
			if flushErr := f.Flush(); err == nil {
				err = flushErr
			}
		}
		return err
	})
	return nil
}

func startError(c domain.Command, err error) error {
	return zerr.With(
		zerr.Wrap(fmt.Errorf("%w: %w", domain.ErrCommandFailed, err), "failed to start command"),
		"command", c.String(),
	)
}

// resolveEnvironment layers overrides on top of the system environment.
func resolveEnvironment(sysEnv []string, overrides map[string]string) []string {
	envMap := make(map[string]string, len(sysEnv)+len(overrides))
	order := make([]string, 0, len(sysEnv)+len(overrides))
	for _, entry := range sysEnv {
		k, v, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		if _, seen := envMap[k]; !seen {
			order = append(order, k)
		}
		envMap[k] = v
	}

	for k, v := range overrides {
		if _, seen := envMap[k]; !seen {
			order = append(order, k)
		}
		envMap[k] = v
	}

	result := make([]string, 0, len(order))
	for _, k := range order {
		result = append(result, k+"="+envMap[k])
	}
	return result
}

// lookPath searches for an executable in the directories named by the PATH entry of env.
func lookPath(file string, env []string) (string, error) {
	var path string
	for _, e := range env {
		if strings.HasPrefix(e, "PATH=") {
			path = strings.TrimPrefix(e, "PATH=")
		}
	}

	if path == "" {
		return "", exec.ErrNotFound
	}

	for _, dir := range filepath.SplitList(path) {
		if dir == "" {
			// Unix shell semantics: path element "" means "."
			dir = "."
		}
		path := filepath.Join(dir, file)
		if err := findExecutable(path); err == nil {
			return path, nil
		}
	}
	return "", exec.ErrNotFound
}

func findExecutable(file string) error {
	d, err := os.Stat(file)
	if err != nil {
		return err
	}
	if m := d.Mode(); !m.IsDir() && m&0o111 != 0 {
		return nil
	}
	return os.ErrPermission
}
