package manifest

import (
	"fmt"
	"os"
	"path/filepath"
)

// PruneConfigFiles deletes each named file under root that exists.
// Missing files are skipped and directories are left alone. The names that
// were actually removed are returned.
func PruneConfigFiles(root string, names []string) ([]string, error) {
	var removed []string
	for _, name := range names {
		path := filepath.Join(root, name)

		info, err := os.Lstat(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return removed, fmt.Errorf("failed to stat %s: %w", path, err)
		}
		if info.IsDir() {
			continue
		}

		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return removed, fmt.Errorf("failed to remove %s: %w", path, err)
		}
		removed = append(removed, name)
	}
	return removed, nil
}
