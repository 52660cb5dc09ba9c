// Package config loads the startup settings of the practice screen from the
// .vars.env file next to the binary's parent directory, we also supply the
// ParentDirFile helper used to find shared assets like title.txt
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/YvesDansereau/pentatonic-master/internal/tui/utils"
)

// delay slider bounds in milliseconds
const (
	DelayMin     = 100
	DelayMax     = 2000
	DelayStep    = 100
	DelayDefault = 1000

	CellSizeDefault = 20
)

type Config struct {
	Pattern  int // index into the pattern catalog
	DelayMS  int // time between two emphasized notes
	CellSize int // pixel size of one (fret, string) cell
}

func Default() Config {
	return Config{
		Pattern:  0,
		DelayMS:  DelayDefault,
		CellSize: CellSizeDefault,
	}
}

// ParentDirFile returns a path that lives in the parent directory of the
// running executable. It is used to find .vars.env or title.txt when the
// binary is invoked from the cmd/ directory.
func ParentDirFile(filename string) string {
	if exe, err := os.Executable(); err == nil {
		parent := filepath.Dir(filepath.Dir(exe))
		return filepath.Join(parent, filename)
	}
	return ""
}

// Load reads .vars.env, a missing or unreadable file leaves the defaults. The
// pattern index is clamped later against the catalog size by the caller.
func Load() Config {
	path := ParentDirFile(".vars.env")
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Default()
	}
	return Parse(string(data))
}

// Parse reads KEY="value" lines. Unknown keys, comments and values that are
// not integers are skipped.
func Parse(data string) Config {
	cfg := Default()

	for _, line := range strings.Split(data, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}
		key := strings.TrimSpace(parts[0])
		val, err := strconv.Atoi(strings.Trim(strings.TrimSpace(parts[1]), "\""))
		if err != nil {
			continue
		}
		switch key {
		case "PATTERN":
			cfg.Pattern = max(val, 0)
		case "DELAY_MS":
			cfg.DelayMS = SnapDelay(val)
		case "CELL_SIZE":
			if val > 0 {
				cfg.CellSize = val
			}
		}
	}
	return cfg
}

// SnapDelay rounds ms to the slider step and keeps it inside the slider range.
func SnapDelay(ms int) int {
	ms = (ms + DelayStep/2) / DelayStep * DelayStep
	return utils.Clamp(ms, DelayMin, DelayMax)
}
