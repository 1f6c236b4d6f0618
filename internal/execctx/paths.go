package execctx

import (
	"path/filepath"
	"strings"
)

// SplitFilename separates a target file into its directory and its base name
// without extension. A bare file name has no directory.
func SplitFilename(filename string) (dir, base string) {
	filename = strings.TrimSpace(strings.Trim(filename, `"`))
	if filename == "" {
		return "", ""
	}
	dir = filepath.Dir(filename)
	if dir == "." && !strings.HasPrefix(filename, "."+string(filepath.Separator)) {
		dir = ""
	}
	name := filepath.Base(filename)
	base = strings.TrimSuffix(name, filepath.Ext(name))
	return dir, base
}

// JoinOutput builds an output path from a directory, a base name and an
// extension that includes its leading dot.
func JoinOutput(dir, base, ext string) string {
	dir = strings.Trim(dir, `"`)
	base = strings.Trim(base, `"`)
	if dir == "" {
		return base + ext
	}
	return filepath.Join(dir, base+ext)
}
