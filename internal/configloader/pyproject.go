package configloader

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// pyprojectDocument is the slice of pyproject.toml we decode.
type pyprojectDocument struct {
	Tool struct {
		Gopyright *Overrides `toml:"gopyright"`
	} `toml:"tool"`
}

// HasPyprojectTable reports whether path declares a [tool.gopyright] table.
// Unreadable or invalid files report false.
func HasPyprojectTable(path string) bool {
	var doc pyprojectDocument
	meta, err := toml.DecodeFile(path, &doc)
	if err != nil {
		return false
	}
	return meta.IsDefined("tool", "gopyright")
}

// loadPyproject reads the [tool.gopyright] table of a pyproject.toml.
// A file without the table yields empty overrides. Keys in the table that
// gopyright does not know are returned as warnings.
func loadPyproject(path string) (*Overrides, []string, error) {
	var doc pyprojectDocument
	meta, err := toml.DecodeFile(path, &doc)
	if err != nil {
		return nil, nil, fmt.Errorf("parse TOML: %w", err)
	}

	var warnings []string
	for _, key := range meta.Undecoded() {
		if len(key) < 3 || key[0] != "tool" || key[1] != "gopyright" {
			continue
		}
		warnings = append(warnings,
			fmt.Sprintf("%s: unknown key %q in [tool.gopyright]; it will be ignored", path, strings.Join(key[2:], ".")))
	}

	if doc.Tool.Gopyright == nil {
		return &Overrides{}, warnings, nil
	}
	return doc.Tool.Gopyright, warnings, nil
}
