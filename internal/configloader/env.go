package configloader

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// envVarPrefix is the prefix for all gopyright environment variables.
const envVarPrefix = "GOPYRIGHT_"

// envFieldType represents the type of a configuration field.
type envFieldType int

const (
	envTypeString envFieldType = iota
	envTypeBool
	envTypeInt
	envTypeCommand
)

// envMapping defines environment variable to config field mappings.
type envMapping struct {
	field string
	typ   envFieldType
}

// envMappings maps environment variable names (without prefix) to config fields.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envMappings = map[string]envMapping{
	"CONFIG_FILE":     {field: "config_file", typ: envTypeString},
	"BASE_DIR":        {field: "base_dir", typ: envTypeString},
	"THRESHOLD":       {field: "threshold", typ: envTypeInt},
	"EXECUTABLE":      {field: "executable", typ: envTypeString},
	"AUTO_INSTALL":    {field: "auto_install", typ: envTypeBool},
	"INSTALL_COMMAND": {field: "install_command", typ: envTypeCommand},
	"INLINE_COMMENTS": {field: "inline_comments", typ: envTypeBool},
	"SHOULD_FAIL":     {field: "should_fail", typ: envTypeBool},
	"SCM_PROVIDER":    {field: "scm_provider", typ: envTypeString},
	"FORMAT":          {field: "format", typ: envTypeString},
}

// OverridesFromEnv reads GOPYRIGHT_* environment variables
// (e.g., GOPYRIGHT_THRESHOLD). Unset or empty variables are skipped.
func OverridesFromEnv() (*Overrides, error) {
	overrides := &Overrides{}

	for envSuffix, mapping := range envMappings {
		envVar := envVarPrefix + envSuffix
		value := os.Getenv(envVar)
		if value == "" {
			continue
		}

		if err := applyEnvValue(overrides, mapping, value, envVar); err != nil {
			return nil, err
		}
	}

	return overrides, nil
}

// applyEnvValue applies a single environment variable value to overrides.
func applyEnvValue(overrides *Overrides, mapping envMapping, value, envVar string) error {
	switch mapping.typ {
	case envTypeString:
		return setStringField(overrides, mapping.field, value)
	case envTypeBool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean for %s: %q (expected true/false/1/0)", envVar, value)
		}
		return setBoolField(overrides, mapping.field, b)
	case envTypeInt:
		i, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid integer for %s: %q", envVar, value)
		}
		return setIntField(overrides, mapping.field, i)
	case envTypeCommand:
		return setCommandField(overrides, mapping.field, strings.Fields(value))
	default:
		return fmt.Errorf("unknown field type for %s", envVar)
	}
}

func setStringField(overrides *Overrides, field, value string) error {
	switch field {
	case "config_file":
		overrides.ConfigFile = &value
	case "base_dir":
		overrides.BaseDir = &value
	case "executable":
		overrides.Executable = &value
	case "scm_provider":
		overrides.SCMProvider = &value
	case "format":
		overrides.Format = &value
	default:
		return fmt.Errorf("unknown string field: %s", field)
	}
	return nil
}

func setBoolField(overrides *Overrides, field string, value bool) error {
	switch field {
	case "auto_install":
		overrides.AutoInstall = &value
	case "inline_comments":
		overrides.InlineComments = &value
	case "should_fail":
		overrides.ShouldFail = &value
	default:
		return fmt.Errorf("unknown boolean field: %s", field)
	}
	return nil
}

func setIntField(overrides *Overrides, field string, value int) error {
	switch field {
	case "threshold":
		overrides.Threshold = &value
	default:
		return fmt.Errorf("unknown integer field: %s", field)
	}
	return nil
}

func setCommandField(overrides *Overrides, field string, value []string) error {
	switch field {
	case "install_command":
		overrides.InstallCommand = value
	default:
		return fmt.Errorf("unknown command field: %s", field)
	}
	return nil
}

// GetEnvVarName returns the full environment variable name for a config field.
func GetEnvVarName(field string) string {
	for suffix, mapping := range envMappings {
		if mapping.field == field {
			return envVarPrefix + suffix
		}
	}
	return ""
}

// ListEnvVars returns a list of all supported environment variables with their descriptions.
func ListEnvVars() map[string]string {
	return map[string]string{
		"GOPYRIGHT_CONFIG_FILE":     "Analyzer project file passed as --project",
		"GOPYRIGHT_BASE_DIR":        "Directory checked by the analyzer",
		"GOPYRIGHT_THRESHOLD":       "Number of issues tolerated before reporting",
		"GOPYRIGHT_EXECUTABLE":      "Analyzer executable",
		"GOPYRIGHT_AUTO_INSTALL":    "Install the analyzer when missing: true or false",
		"GOPYRIGHT_INSTALL_COMMAND": "Space-separated install command",
		"GOPYRIGHT_INLINE_COMMENTS": "lint posts inline comments: true or false",
		"GOPYRIGHT_SHOULD_FAIL":     "count records failures: true or false",
		"GOPYRIGHT_SCM_PROVIDER":    "SCM provider override: github, gitlab, bitbucket_cloud",
		"GOPYRIGHT_FORMAT":          "Status report format: text, json, or markdown",
	}
}
