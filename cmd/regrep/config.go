package main

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v2"
)

// fileDefaults holds the default flag values read from an optional
// .regrep.yaml in the working directory. A missing or unreadable file is not
// an error: the zero value (all defaults off) applies.
type fileDefaults struct {
	CountOnly bool `yaml:"count_only"`
	Quiet     bool `yaml:"quiet"`
}

func loadFileDefaults(dir string) fileDefaults {
	data, err := os.ReadFile(filepath.Join(dir, ".regrep.yaml"))
	if err != nil {
		return fileDefaults{}
	}
	var d fileDefaults
	if err := yaml.Unmarshal(data, &d); err != nil {
		return fileDefaults{}
	}
	return d
}
