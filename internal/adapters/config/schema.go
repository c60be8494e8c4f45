package config

// Sailfile represents the structure of the optional YAML defaults file named
// by SAIL_CONFIG_FILE.
type Sailfile struct {
	Runner          string            `yaml:"runner"`
	ExecName        string            `yaml:"exec_name"`
	Source          string            `yaml:"source"`
	Configuration   string            `yaml:"configuration"`
	LaunchProfile   string            `yaml:"launch_profile"`
	NoLaunchProfile *bool             `yaml:"no_launch_profile"`
	Arguments       []string          `yaml:"arguments"`
	SDK             string            `yaml:"sdk"`
	TargetFramework string            `yaml:"target_framework"`
	Verbosity       string            `yaml:"verbosity"`
	KeepWorkspace   *bool             `yaml:"keep_workspace"`
	Environment     map[string]string `yaml:"env"`
}

// settings is the flat view viper layers and decodes.
type settings struct {
	Runner          string   `mapstructure:"runner"`
	ExecName        string   `mapstructure:"exec_name"`
	Source          string   `mapstructure:"source"`
	Configuration   string   `mapstructure:"configuration"`
	LaunchProfile   string   `mapstructure:"launch_profile"`
	NoLaunchProfile bool     `mapstructure:"no_launch_profile"`
	Arguments       []string `mapstructure:"arguments"`
	SDK             string   `mapstructure:"sdk"`
	TargetFramework string   `mapstructure:"target_framework"`
	Verbosity       string   `mapstructure:"verbosity"`
	KeepWorkspace   bool     `mapstructure:"keep_workspace"`
}

const (
	keyRunner          = "runner"
	keyExecName        = "exec_name"
	keySource          = "source"
	keyConfiguration   = "configuration"
	keyLaunchProfile   = "launch_profile"
	keyNoLaunchProfile = "no_launch_profile"
	keyArguments       = "arguments"
	keySDK             = "sdk"
	keyTargetFramework = "target_framework"
	keyVerbosity       = "verbosity"
	keyKeepWorkspace   = "keep_workspace"
)
