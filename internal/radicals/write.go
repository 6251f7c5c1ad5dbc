package radicals

import (
	"fmt"
	"os"
)

// DefaultPath is where the note is written unless overridden.
const DefaultPath = "/mnt/data/Simplify_Radicals_Expanded.txt"

// Write overwrites path with Document. The parent directory must already
// exist; a missing or read-only directory is reported as an error.
func Write(path string) error {
	if err := os.WriteFile(path, []byte(Document), 0o644); err != nil {
		return fmt.Errorf("write radicals note: %w", err)
	}
	return nil
}
