package config

import (
	"path/filepath"
	"strings"
)

// InputsConfig controls where default puzzle inputs are looked up.
type InputsConfig struct {
	// Directory holding one input file per day.
	Dir string `yaml:"dir" json:"dir,omitempty"`
	// Extension appended to the day identifier, including the dot.
	Extension string `yaml:"extension" json:"extension,omitempty"`
}

// PathFor returns the conventional input path for a day: <dir>/<day><ext>.
func (c InputsConfig) PathFor(dayID string) string {
	ext := c.Extension
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return filepath.Join(c.Dir, dayID+ext)
}
