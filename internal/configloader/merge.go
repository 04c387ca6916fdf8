package configloader

import "github.com/yaklabco/gopyright/pkg/config"

// Overrides is a partial configuration. Nil fields are unset and leave the
// underlying value untouched, so a file can set threshold to 0 or
// should_fail to false over a lower-precedence source.
type Overrides struct {
	ConfigFile     *string  `yaml:"config_file" toml:"config_file"`
	BaseDir        *string  `yaml:"base_dir" toml:"base_dir"`
	Threshold      *int     `yaml:"threshold" toml:"threshold"`
	Executable     *string  `yaml:"executable" toml:"executable"`
	AutoInstall    *bool    `yaml:"auto_install" toml:"auto_install"`
	InstallCommand []string `yaml:"install_command" toml:"install_command"`
	InlineComments *bool    `yaml:"inline_comments" toml:"inline_comments"`
	ShouldFail     *bool    `yaml:"should_fail" toml:"should_fail"`
	SCMProvider    *string  `yaml:"scm_provider" toml:"scm_provider"`
	Format         *string  `yaml:"-" toml:"-"`
}

// knownKeys lists the keys a config file may contain.
//
//nolint:gochecknoglobals // Read-only lookup table.
var knownKeys = map[string]bool{
	"config_file":     true,
	"base_dir":        true,
	"threshold":       true,
	"executable":      true,
	"auto_install":    true,
	"install_command": true,
	"inline_comments": true,
	"should_fail":     true,
	"scm_provider":    true,
}

// merge applies override on top of base and returns the result.
// The rules are:
//   - Pointer fields: set in override replaces base
//   - Slices: override replaces base entirely if non-nil
//   - Nil values in override do not override values in base
func merge(base *config.Config, override *Overrides) *config.Config {
	if base == nil {
		base = config.NewConfig()
	}
	if override == nil {
		return base
	}

	result := base.Clone()

	if override.ConfigFile != nil {
		result.ConfigFile = *override.ConfigFile
	}
	if override.BaseDir != nil {
		result.BaseDir = *override.BaseDir
	}
	if override.Threshold != nil {
		result.Threshold = *override.Threshold
	}
	if override.Executable != nil {
		result.Executable = *override.Executable
	}
	if override.AutoInstall != nil {
		autoInstall := *override.AutoInstall
		result.AutoInstall = &autoInstall
	}
	if override.InstallCommand != nil {
		result.InstallCommand = append([]string(nil), override.InstallCommand...)
	}
	if override.InlineComments != nil {
		result.InlineComments = *override.InlineComments
	}
	if override.ShouldFail != nil {
		result.ShouldFail = *override.ShouldFail
	}
	if override.SCMProvider != nil {
		result.SCMProvider = *override.SCMProvider
	}
	if override.Format != nil {
		result.Format = config.OutputFormat(*override.Format)
	}

	return result
}

// MergeAll applies overrides in order, later ones taking precedence.
func MergeAll(base *config.Config, overrides ...*Overrides) *config.Config {
	result := base
	for _, override := range overrides {
		result = merge(result, override)
	}
	return result
}
