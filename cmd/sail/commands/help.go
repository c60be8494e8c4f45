package commands

import (
	"fmt"
	"io"
	"strings"

	"go.trai.ch/sail/internal/build"
	"go.trai.ch/sail/internal/ui/style"
)

type usageOption struct {
	flags string
	desc  string
}

var usageOptions = []usageOption{
	{"-e, --env <NAME=VALUE>", "Set an environment variable for the program (repeatable)"},
	{"-r, --runner <NAME>", "Runner to use: run (default) or publish"},
	{"-c, --configuration <NAME>", "Build configuration (default: Release)"},
	{"-lp, --launch-profile <NAME>", "Launch profile passed to dotnet run"},
	{"--no-launch-profile", "Do not use a launch profile"},
	{"-s, --source <ADDRESS>", "Address to fetch, instead of the positional argument"},
	{"-v, --verbosity <LEVEL>", "Trace, Information, Error or None"},
	{"--exec-name <FILE>", "Entry module executed by the publish runner"},
	{"--sdk <NAME>", "SDK for synthesized project files"},
	{"--target-framework <TFM>", "Target framework for synthesized project files"},
	{"--help", "Show this help"},
	{"--version", "Print the application version"},
}

var usageAddresses = []string{
	"https://gist.github.com/<user>/<id>[/<revision>]",
	"https://github.com/<owner>/<repo>[/tree|blob/<ref>/<path>]",
	"https://host/repo.git[?branch=<ref>|hash=<sha>][&path=<dir>]",
	"https://host/Program.cs or https://host/app.zip",
}

var usageEnvironment = []string{
	"SAIL_CONFIG_FILE, SAIL_RUNNER, SAIL_SOURCE, SAIL_CONFIGURATION, SAIL_VERBOSITY,",
	"SAIL_KEEP_WORKSPACE and SAIL_ENV_<NAME> for program variables.",
}

func printUsage(w io.Writer) {
	var b strings.Builder

	fmt.Fprintf(&b, "%s %s\n\n", style.Heading.Render("sail"), style.Muted.Render(build.Version))
	fmt.Fprintf(&b, "%s\n  sail [options...] <address> [program-arguments...]\n\n", style.Heading.Render("Usage:"))

	fmt.Fprintf(&b, "%s\n", style.Heading.Render("Addresses:"))
	for _, a := range usageAddresses {
		fmt.Fprintf(&b, "  %s\n", a)
	}

	width := 0
	for _, o := range usageOptions {
		width = max(width, len(o.flags))
	}
	fmt.Fprintf(&b, "\n%s\n", style.Heading.Render("Options:"))
	for _, o := range usageOptions {
		fmt.Fprintf(&b, "  %-*s  %s\n", width, o.flags, style.Muted.Render(o.desc))
	}

	fmt.Fprintf(&b, "\n%s\n", style.Heading.Render("Environment:"))
	for _, line := range usageEnvironment {
		fmt.Fprintf(&b, "  %s\n", line)
	}

	_, _ = io.WriteString(w, b.String())
}
