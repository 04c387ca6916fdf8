package config

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// commentWrapWidth is the maximum width for wrapped comments in templates.
const commentWrapWidth = 70

// Template formats.
const (
	TemplateYAML      = "yaml"
	TemplatePyproject = "pyproject"
)

// PyprojectTable is the pyproject.toml table holding gopyright settings.
const PyprojectTable = "tool.gopyright"

// TemplateOptions controls configuration template generation.
type TemplateOptions struct {
	// Full uncomments every setting and documents it.
	// If false, generates a minimal commented template.
	Full bool

	// Format is "yaml" (default) or "pyproject".
	Format string
}

// fieldDoc documents one configuration key.
type fieldDoc struct {
	key         string
	value       string
	description string
	optional    bool
}

func fieldDocs() []fieldDoc {
	return []fieldDoc{
		{key: "base_dir", value: `"."`, description: "Directory checked by the analyzer."},
		{key: "config_file", value: `"pyrightconfig.json"`, description: "Analyzer project file passed as --project. By default the analyzer looks for pyrightconfig.json or pyproject.toml itself.", optional: true},
		{key: "threshold", value: "0", description: "Number of issues tolerated before anything is reported."},
		{key: "executable", value: `"pyright"`, description: "Analyzer executable, looked up on PATH."},
		{key: "auto_install", value: "true", description: "Install the analyzer when it is not on PATH."},
		{key: "install_command", value: `["npm", "install", "-g", "pyright"]`, description: "Command used to install the analyzer."},
		{key: "inline_comments", value: "false", description: "lint annotates each line instead of posting one table."},
		{key: "should_fail", value: "false", description: "count records a failure instead of a warning."},
		{key: "scm_provider", value: `"github"`, description: "Override SCM provider detection: github, gitlab, bitbucket_cloud.", optional: true},
	}
}

// GenerateTemplate creates a configuration file template.
func GenerateTemplate(opts TemplateOptions) ([]byte, error) {
	switch opts.Format {
	case TemplateYAML, "":
		return generateYAMLTemplate(opts), nil
	case TemplatePyproject:
		return generatePyprojectTemplate(opts)
	default:
		return nil, fmt.Errorf("unknown template format %q; valid formats: yaml, pyproject", opts.Format)
	}
}

// generateYAMLTemplate creates a commented .gopyright.yml.
func generateYAMLTemplate(opts TemplateOptions) []byte {
	var buf bytes.Buffer

	buf.WriteString(DefaultTemplateHeader())
	buf.WriteString("\n")

	for _, doc := range fieldDocs() {
		prefix := "# "
		if opts.Full && !doc.optional {
			prefix = ""
		}
		buf.WriteString("\n# " + wrapComment(doc.description, commentWrapWidth) + "\n")
		buf.WriteString(prefix + doc.key + ": " + doc.value + "\n")
	}

	return buf.Bytes()
}

// generatePyprojectTemplate renders the defaults as a [tool.gopyright] table.
func generatePyprojectTemplate(opts TemplateOptions) ([]byte, error) {
	cfg := NewConfig()

	var body bytes.Buffer
	encoder := toml.NewEncoder(&body)
	encoder.Indent = ""
	if err := encoder.Encode(cfg); err != nil {
		return nil, fmt.Errorf("encode toml: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString(DefaultTemplateHeader())
	buf.WriteString("\n\n[" + PyprojectTable + "]\n")

	for _, line := range strings.Split(strings.TrimRight(body.String(), "\n"), "\n") {
		if line == "" {
			continue
		}
		if !opts.Full {
			line = "# " + line
		}
		buf.WriteString(line + "\n")
	}

	return buf.Bytes(), nil
}

// wrapComment wraps a comment to fit within maxWidth characters.
func wrapComment(text string, maxWidth int) string {
	if len(text) <= maxWidth {
		return text
	}

	var lines []string
	currentLine := ""

	for _, word := range strings.Fields(text) {
		switch {
		case currentLine == "":
			currentLine = word
		case len(currentLine)+1+len(word) <= maxWidth:
			currentLine += " " + word
		default:
			lines = append(lines, currentLine)
			currentLine = word
		}
	}
	if currentLine != "" {
		lines = append(lines, currentLine)
	}

	return strings.Join(lines, "\n# ")
}

// DefaultTemplateHeader returns the default header for generated configs.
func DefaultTemplateHeader() string {
	return `# gopyright configuration
# See: https://github.com/yaklabco/gopyright`
}
