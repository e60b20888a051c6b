package gen

import (
	"os"
	"path/filepath"
	"strings"
)

// writeDebugUnformatted dumps source that failed formatting to a sidecar
// next to the intended output, so the offending override expression can be
// inspected in place. Best-effort; the formatting error is reported either way.
func writeDebugUnformatted(dir, filename string, content []byte) error {
	if dir == "" || filename == "" {
		return nil
	}

	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return err
	}

	// A .go extension keeps editor highlighting; the extra suffix keeps it
	// from colliding with real output.
	sidecar := strings.TrimSuffix(filename, ".go") + ".unformatted.go"

	return os.WriteFile(filepath.Join(dir, sidecar), content, filePerm)
}
