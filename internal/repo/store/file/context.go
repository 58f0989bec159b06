package file

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/keshon/gitlet/internal/config"
	"github.com/keshon/gitlet/internal/fs"
	"github.com/keshon/gitlet/internal/util"
)

// FileContext reads and writes tracked files in the working tree.
// Paths handed to it are relative to WorkingTreeDir.
type FileContext struct {
	WorkingTreeDir string
	FS             fs.FS
	Ignore         *Ignore
}

// NewFileContext creates a FileContext and loads the ignore rules under root.
func NewFileContext(root, ignoreFile string, fsys fs.FS) *FileContext {
	return &FileContext{
		WorkingTreeDir: root,
		FS:             fsys,
		Ignore:         NewIgnore(fsys, ignoreFile),
	}
}

// Abs joins a tracked path onto the working tree root.
func (fc *FileContext) Abs(path string) string {
	return filepath.Join(fc.WorkingTreeDir, filepath.FromSlash(path))
}

// Normalize turns a user-supplied path into the slash-separated key used in trees.
func (fc *FileContext) Normalize(path string) (string, error) {
	if filepath.IsAbs(path) {
		rel, err := filepath.Rel(fc.WorkingTreeDir, path)
		if err != nil {
			return "", fmt.Errorf("path %q is outside the working tree: %w", path, err)
		}
		path = rel
	}
	clean := filepath.ToSlash(filepath.Clean(path))
	if clean == "." || clean == ".." || strings.HasPrefix(clean, "../") {
		return "", fmt.Errorf("path %q is outside the working tree", path)
	}
	// Only files at the top of the working tree are tracked.
	if strings.Contains(clean, "/") {
		return "", fmt.Errorf("path %q is not in the top-level working directory", path)
	}
	if clean == config.RepoDir {
		return "", fmt.Errorf("path %q is inside the repository directory", path)
	}
	return clean, nil
}

// Exists reports whether a regular file is present at path.
func (fc *FileContext) Exists(path string) bool {
	info, err := fc.FS.Stat(fc.Abs(path))
	return err == nil && !info.IsDir()
}

// Read returns the current bytes of a working file.
func (fc *FileContext) Read(path string) ([]byte, error) {
	f, err := fc.FS.Open(fc.Abs(path))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("read %q: %w", path, err)
	}
	return data, nil
}

// Write replaces a working file atomically, creating parent directories.
func (fc *FileContext) Write(path string, data []byte) error {
	abs := fc.Abs(path)
	if err := fc.FS.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return fmt.Errorf("ensure dir for %q: %w", path, err)
	}
	if err := util.WriteFileAtomic(fc.FS, abs, data); err != nil {
		return fmt.Errorf("write %q: %w", path, err)
	}
	return nil
}

// Delete removes a working file. A file that is already gone is not an error.
func (fc *FileContext) Delete(path string) error {
	err := fc.FS.Remove(fc.Abs(path))
	if err != nil && !fc.FS.IsNotExist(err) {
		return fmt.Errorf("delete %q: %w", path, err)
	}
	return nil
}
