package config

import (
	"slices"
	"strings"

	"go.trai.ch/sail/internal/core/domain"
)

const (
	helpFlag            = "--help"
	noLaunchProfileFlag = "--no-launch-profile"
)

type flagSetter func(cfg *domain.Configuration, value string)

// flagSetters lists every flag that consumes one value.
var flagSetters = map[string]flagSetter{
	"-e":                 setEnv,
	"--env":              setEnv,
	"-r":                 func(cfg *domain.Configuration, v string) { cfg.RunnerName = v },
	"--runner":           func(cfg *domain.Configuration, v string) { cfg.RunnerName = v },
	"-c":                 func(cfg *domain.Configuration, v string) { cfg.BuildConfiguration = v },
	"--configuration":    func(cfg *domain.Configuration, v string) { cfg.BuildConfiguration = v },
	"-lp":                func(cfg *domain.Configuration, v string) { cfg.LaunchProfile = v },
	"--launch-profile":   func(cfg *domain.Configuration, v string) { cfg.LaunchProfile = v },
	"-s":                 func(cfg *domain.Configuration, v string) { cfg.Address = v },
	"--source":           func(cfg *domain.Configuration, v string) { cfg.Address = v },
	"-v":                 setVerbosity,
	"--verbosity":        setVerbosity,
	"--exec-name":        func(cfg *domain.Configuration, v string) { cfg.ExecName = v },
	"--sdk":              func(cfg *domain.Configuration, v string) { cfg.SDKName = v },
	"--target-framework": func(cfg *domain.Configuration, v string) { cfg.TargetFrameworkName = v },
}

// applyArgs scans the command line left to right. Until an address is known
// every token is an option or the address itself; from then on every token is
// passed to the program verbatim. An address that came from an earlier layer
// therefore turns the whole command line into program arguments.
func applyArgs(cfg *domain.Configuration, args []string) {
	for i := 0; i < len(args); i++ {
		if cfg.Address != "" {
			cfg.ProgramArguments = slices.Clone(args[i:])
			return
		}

		token := args[i]
		switch {
		case token == helpFlag:
			continue
		case token == noLaunchProfileFlag:
			cfg.NoLaunchProfile = true
		case strings.HasPrefix(token, "-"):
			// A flag with no following value is ignored.
			if i+1 >= len(args) {
				return
			}
			i++
			// Unknown flags swallow their presumed value.
			if set, ok := flagSetters[token]; ok {
				set(cfg, args[i])
			}
		default:
			cfg.Address = token
		}
	}
}

// setEnv splits value once on "=". A missing separator sets an empty value.
func setEnv(cfg *domain.Configuration, value string) {
	name, val, _ := strings.Cut(value, "=")
	if name == "" {
		return
	}
	cfg.EnvironmentOverrides[name] = val
}

func setVerbosity(cfg *domain.Configuration, value string) {
	if v, err := domain.ParseVerbosity(value); err == nil {
		cfg.Verbosity = v
	}
}
