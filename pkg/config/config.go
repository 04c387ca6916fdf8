// Package config defines core configuration types for gopyright.
// These types are pure data structures with no dependency on a config loader.
package config

// Default values.
const (
	DefaultBaseDir    = "."
	DefaultExecutable = "pyright"
	DefaultThreshold  = 0
)

// DefaultInstallCommand returns the command used to install the analyzer.
func DefaultInstallCommand() []string {
	return []string{"npm", "install", "-g", "pyright"}
}

// OutputFormat specifies how the review status report is printed.
type OutputFormat string

const (
	FormatText     OutputFormat = "text"
	FormatJSON     OutputFormat = "json"
	FormatMarkdown OutputFormat = "markdown"
)

// IsValid returns true if the format is known.
func (f OutputFormat) IsValid() bool {
	switch f {
	case FormatText, FormatJSON, FormatMarkdown:
		return true
	default:
		return false
	}
}

// Config is the root configuration structure for gopyright.
type Config struct {
	// ConfigFile is an optional analyzer project file (pyrightconfig.json
	// or pyproject.toml), passed to the analyzer as --project.
	ConfigFile string `yaml:"config_file,omitempty" toml:"config_file,omitempty"`

	// BaseDir is the directory the analyzer checks.
	BaseDir string `yaml:"base_dir" toml:"base_dir"`

	// Threshold is the number of issues tolerated before anything is reported.
	Threshold int `yaml:"threshold" toml:"threshold"`

	// Executable is the analyzer binary.
	Executable string `yaml:"executable" toml:"executable"`

	// AutoInstall installs the analyzer when it is missing. Nil means true.
	AutoInstall *bool `yaml:"auto_install,omitempty" toml:"auto_install,omitempty"`

	// InstallCommand installs the analyzer.
	InstallCommand []string `yaml:"install_command,omitempty" toml:"install_command,omitempty"`

	// InlineComments makes lint annotate lines instead of posting a table.
	InlineComments bool `yaml:"inline_comments" toml:"inline_comments"`

	// ShouldFail makes count record a failure instead of a warning.
	ShouldFail bool `yaml:"should_fail" toml:"should_fail"`

	// SCMProvider overrides provider detection, e.g. "github".
	SCMProvider string `yaml:"scm_provider,omitempty" toml:"scm_provider,omitempty"`

	// CLI-level options (not persisted to config files).

	// Format specifies the status report output format.
	Format OutputFormat `yaml:"-" toml:"-"`
}

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	autoInstall := true
	return &Config{
		BaseDir:        DefaultBaseDir,
		Threshold:      DefaultThreshold,
		Executable:     DefaultExecutable,
		AutoInstall:    &autoInstall,
		InstallCommand: DefaultInstallCommand(),
		Format:         FormatText,
	}
}

// AutoInstallEnabled reports whether a missing analyzer is installed.
func (c *Config) AutoInstallEnabled() bool {
	return c.AutoInstall == nil || *c.AutoInstall
}
