// Package main is the entry point for sail.
package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/sail/cmd/sail/commands"
	"go.trai.ch/sail/internal/app"
	_ "go.trai.ch/sail/internal/wiring"
)

func main() {
	os.Exit(run(os.Args[1:], os.Environ(), os.Stderr))
}

func run(args, environ []string, stderr io.Writer) int {
	// 0. Context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// 1. Initialize application components
	components, _, err := graft.ExecuteFor[*app.Components](ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		// Write directly to stderr
		_, _ = io.WriteString(stderr, "Error: "+err.Error()+"\n")
		return 1
	}
	defer func() { _ = components.App.Close() }()

	// 2. Interface - CLI
	cli := commands.New(components.App, components.ConfigResolver, environment(environ))
	cli.SetArgs(args)
	cli.SetOutput(os.Stdout, stderr)

	// 3. Execution
	code, err := cli.Execute(ctx)
	if err != nil {
		components.Logger.DebugError(err)
		commands.PrintError(stderr, err)
	}
	return code
}

func environment(environ []string) map[string]string {
	env := make(map[string]string, len(environ))
	for _, kv := range environ {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			continue
		}
		env[k] = v
	}
	return env
}
