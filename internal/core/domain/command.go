package domain

import (
	"io"
	"strings"
)

// Command is one external process invocation.
type Command struct {
	Name string
	Args []string
	Dir  string
	// Env holds variables layered on top of the current process environment.
	Env map[string]string

	// Nil streams are inherited from the current process.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// String renders the command line for diagnostics.
func (c Command) String() string {
	parts := make([]string, 0, len(c.Args)+1)
	parts = append(parts, c.Name)
	for _, a := range c.Args {
		if a == "" || strings.ContainsAny(a, " \t\"'") {
			a = `"` + strings.ReplaceAll(a, `"`, `\"`) + `"`
		}
		parts = append(parts, a)
	}
	return strings.Join(parts, " ")
}
