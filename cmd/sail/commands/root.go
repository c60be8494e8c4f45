// Package commands implements the CLI for sail.
package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/sail/internal/build"
	"go.trai.ch/sail/internal/core/domain"
	"go.trai.ch/sail/internal/core/ports"
)

// Pipeline runs a resolved configuration and returns the program's exit code.
type Pipeline interface {
	Run(ctx context.Context, cfg domain.Configuration) (int, error)
}

// CLI represents the command line interface for sail.
type CLI struct {
	pipeline Pipeline
	resolver ports.ConfigResolver
	env      map[string]string
	rootCmd  *cobra.Command
	exitCode int
}

// New creates a new CLI. env is the process environment as a map; it feeds
// the SAIL_* configuration layer.
func New(p Pipeline, resolver ports.ConfigResolver, env map[string]string) *CLI {
	c := &CLI{
		pipeline: p,
		resolver: resolver,
		env:      env,
	}

	c.rootCmd = &cobra.Command{
		Use:   "sail [options...] <address> [program-arguments...]",
		Short: "Fetch and run a .NET program from a gist, repository or URL",
		// Options and program arguments share one token stream, so the
		// configuration resolver owns the grammar.
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		Version:            build.Version,
		Args:               cobra.ArbitraryArgs,
		RunE:               c.run,
	}
	c.rootCmd.SetOut(os.Stdout)
	c.rootCmd.SetErr(os.Stderr)

	return c
}

// Execute runs the root command and returns the exit code to report.
func (c *CLI) Execute(ctx context.Context) (int, error) {
	c.rootCmd.SetContext(ctx)
	if err := c.rootCmd.Execute(); err != nil {
		return 1, err
	}
	return c.exitCode, nil
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput redirects the command's standard and error output. Used for testing.
func (c *CLI) SetOutput(stdout, stderr io.Writer) {
	c.rootCmd.SetOut(stdout)
	c.rootCmd.SetErr(stderr)
}

func (c *CLI) run(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		switch args[0] {
		case "--help":
			printUsage(cmd.ErrOrStderr())
			c.exitCode = 1
			return nil
		case "--version":
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "sail version %s\n", build.Version)
			return nil
		}
	}

	cfg, err := c.resolver.Resolve(c.env, args)
	if err != nil {
		return err
	}
	if strings.TrimSpace(cfg.Address) == "" {
		printUsage(cmd.ErrOrStderr())
		c.exitCode = 1
		return nil
	}

	code, err := c.pipeline.Run(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	c.exitCode = code
	return nil
}
