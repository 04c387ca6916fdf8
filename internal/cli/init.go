package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yaklabco/gopyright/internal/configloader"
	"github.com/yaklabco/gopyright/internal/logging"
	"github.com/yaklabco/gopyright/pkg/config"
	"github.com/yaklabco/gopyright/pkg/fsutil"
)

// defaultConfigFile is written by init when no output path is given.
const defaultConfigFile = ".gopyright.yml"

// errAborted is returned when the user declines to overwrite a file.
var errAborted = errors.New("aborted")

// initFlags holds the flags for the init command.
type initFlags struct {
	force    bool
	full     bool
	template string
	output   string
}

func newInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new gopyright configuration file",
		Long: `Create a commented .gopyright.yml in the current directory, or add a
[tool.gopyright] table to pyproject.toml.

Examples:
  gopyright init                       Create a minimal .gopyright.yml
  gopyright init --full                Uncomment and document every setting
  gopyright init --template pyproject  Append [tool.gopyright] to pyproject.toml
  gopyright init --output ci.yml       Write to a custom file path`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "overwrite an existing configuration file")
	cmd.Flags().BoolVar(&flags.full, "full", false, "uncomment and document every setting")
	cmd.Flags().StringVar(&flags.template, "template", config.TemplateYAML, "template kind: yaml or pyproject")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "",
		"output file path (default: .gopyright.yml or pyproject.toml)")

	return cmd
}

func runInit(cmd *cobra.Command, flags *initFlags) error {
	logger := logging.NewInteractive()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if flags.template != config.TemplateYAML && flags.template != config.TemplatePyproject {
		return fmt.Errorf("%w: invalid template %q: must be yaml or pyproject", ErrUsage, flags.template)
	}

	outputPath := flags.output
	if outputPath == "" {
		outputPath = defaultConfigFile
		if flags.template == config.TemplatePyproject {
			outputPath = configloader.PyprojectFile
		}
	}

	absPath, err := filepath.Abs(outputPath)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	content, err := config.GenerateTemplate(config.TemplateOptions{
		Full:   flags.full,
		Format: flags.template,
	})
	if err != nil {
		return fmt.Errorf("generate template: %w", err)
	}

	if flags.template == config.TemplatePyproject {
		backupPath, err := appendPyproject(ctx, absPath, content)
		if err != nil {
			return err
		}
		if backupPath != "" {
			logger.Info("saved previous file", logging.FieldPath, backupPath)
		}
		logger.Info("added [tool.gopyright] table", logging.FieldPath, outputPath)
		return nil
	}

	if _, err := os.Stat(absPath); err == nil && !flags.force {
		overwrite, err := confirmOverwrite(cmd.InOrStdin(), cmd.ErrOrStderr(), outputPath)
		if err != nil {
			return err
		}
		if !overwrite {
			return errAborted
		}
		logger.Warn("overwriting existing file", logging.FieldPath, outputPath)
	}

	backupPath, err := fsutil.Backup(ctx, absPath)
	if err != nil {
		return err
	}
	if backupPath != "" {
		logger.Info("saved previous file", logging.FieldPath, backupPath)
	}

	if err := fsutil.WriteAtomic(ctx, absPath, content, fsutil.DefaultFileMode); err != nil {
		return err
	}

	logger.Info("created configuration file", logging.FieldPath, outputPath)
	logger.Info("customize your configuration by editing the file")

	return nil
}

// appendPyproject adds the template table to path, creating the file when
// it does not exist, and returns the backup of the previous content. A file
// that already has the table is left alone.
func appendPyproject(ctx context.Context, path string, table []byte) (string, error) {
	existing, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("read file: %w", err)
	}

	if len(existing) > 0 && configloader.HasPyprojectTable(path) {
		return "", fmt.Errorf("%s already has a [%s] table", path, config.PyprojectTable)
	}

	var out []byte
	out = append(out, existing...)
	if len(out) > 0 {
		if !strings.HasSuffix(string(out), "\n") {
			out = append(out, '\n')
		}
		out = append(out, '\n')
	}
	out = append(out, table...)

	backupPath, err := fsutil.Backup(ctx, path)
	if err != nil {
		return "", err
	}
	if err := fsutil.WriteAtomic(ctx, path, out, fsutil.DefaultFileMode); err != nil {
		return "", err
	}
	return backupPath, nil
}

// confirmOverwrite asks before replacing an existing file. Without a
// terminal on stdin it refuses and points at --force.
func confirmOverwrite(in io.Reader, out io.Writer, path string) (bool, error) {
	file, ok := in.(*os.File)
	if !ok || !term.IsTerminal(int(file.Fd())) {
		return false, fmt.Errorf("file %q already exists; use --force to overwrite", path)
	}

	if _, err := fmt.Fprintf(out, "%s already exists. Overwrite? [y/N] ", path); err != nil {
		return false, fmt.Errorf("write prompt: %w", err)
	}

	answer, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("read answer: %w", err)
	}

	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
