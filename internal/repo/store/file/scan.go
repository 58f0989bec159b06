package file

import (
	"fmt"
	"sort"
)

// ScanFilesInWorkingTree lists the plain files at the top of the working tree,
// skipping directories and ignored names.
func (fc *FileContext) ScanFilesInWorkingTree() ([]string, error) {
	entries, err := fc.FS.ReadDir(fc.WorkingTreeDir)
	if err != nil {
		return nil, fmt.Errorf("scan working tree %q: %w", fc.WorkingTreeDir, err)
	}

	paths := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !e.Type().IsRegular() {
			continue
		}
		if fc.Ignore != nil && fc.Ignore.Match(e.Name()) {
			continue
		}
		paths = append(paths, e.Name())
	}

	sort.Strings(paths)
	return paths, nil
}
