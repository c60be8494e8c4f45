package config

import (
	"strconv"
	"strings"

	"go.trai.ch/sail/internal/core/domain"
)

const (
	// EnvPrefix prefixes every environment variable read by the resolver.
	EnvPrefix = "SAIL_"
	// EnvOverridePrefix prefixes variables injected into the launched program.
	// SAIL_ENV_FOO=bar sets FOO=bar for the program.
	EnvOverridePrefix = EnvPrefix + "ENV_"
	// EnvConfigFile names the optional YAML defaults file.
	EnvConfigFile = EnvPrefix + "CONFIG_FILE"
)

// envKeys maps the environment suffix after EnvPrefix to a settings key.
var envKeys = map[string]string{
	"RUNNER":            keyRunner,
	"EXEC_NAME":         keyExecName,
	"SOURCE":            keySource,
	"CONFIGURATION":     keyConfiguration,
	"LAUNCH_PROFILE":    keyLaunchProfile,
	"NO_LAUNCH_PROFILE": keyNoLaunchProfile,
	"ARGUMENTS":         keyArguments,
	"SDK":               keySDK,
	"TARGET_FRAMEWORK":  keyTargetFramework,
	"VERBOSITY":         keyVerbosity,
	"KEEP_WORKSPACE":    keyKeepWorkspace,
}

// envSettings extracts the settings layer from the environment. Empty values
// are treated as absent and values that do not parse are skipped, leaving the
// previous layer in effect.
func envSettings(env map[string]string) map[string]any {
	m := map[string]any{}
	for suffix, key := range envKeys {
		raw, ok := env[EnvPrefix+suffix]
		if !ok || raw == "" {
			continue
		}
		switch key {
		case keyNoLaunchProfile, keyKeepWorkspace:
			b, err := strconv.ParseBool(raw)
			if err != nil {
				continue
			}
			m[key] = b
		case keyVerbosity:
			v, err := domain.ParseVerbosity(raw)
			if err != nil {
				continue
			}
			m[key] = v.String()
		case keyArguments:
			if fields := strings.Fields(raw); len(fields) > 0 {
				m[key] = fields
			}
		default:
			m[key] = raw
		}
	}
	return m
}

// envOverrides collects SAIL_ENV_* variables. Empty values are kept, since
// setting a variable to the empty string is a meaningful override.
func envOverrides(env map[string]string) map[string]string {
	out := map[string]string{}
	for k, v := range env {
		name, ok := strings.CutPrefix(k, EnvOverridePrefix)
		if !ok || name == "" {
			continue
		}
		out[name] = v
	}
	return out
}
