package file

import (
	"bufio"
	"bytes"
	"path/filepath"
	"strings"

	"github.com/keshon/gitlet/internal/config"
	"github.com/keshon/gitlet/internal/fs"
)

type Ignore struct {
	static  map[string]bool
	pattern []string
}

// NewIgnore loads the default ignores plus the patterns in ignoreFile, if present.
func NewIgnore(fsys fs.FS, ignoreFile string) *Ignore {
	m := &Ignore{static: make(map[string]bool)}

	for _, s := range config.DefaultIgnoredFiles {
		m.static[filepath.ToSlash(filepath.Clean(s))] = true
	}

	data, err := fsys.ReadFile(ignoreFile)
	if err != nil {
		return m
	}
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		m.pattern = append(m.pattern, line)
	}
	return m
}

// Match returns true if the path should be ignored.
// Paths are relative to the working tree.
func (m *Ignore) Match(path string) bool {
	clean := filepath.ToSlash(filepath.Clean(path))

	if m.static[clean] {
		return true
	}

	for _, pat := range m.pattern {
		if matchPattern(pat, clean) {
			return true
		}
	}

	return false
}

// matchPattern handles *, ?, and ** like Git. A trailing slash only marks a
// directory pattern and is matched like the pattern without it.
func matchPattern(pattern, path string) bool {
	pattern = strings.TrimSuffix(filepath.ToSlash(pattern), "/")
	return matchSegments(strings.Split(pattern, "/"), strings.Split(path, "/"))
}

func matchSegments(pats, parts []string) bool {
	for len(pats) > 0 {
		p := pats[0]
		pats = pats[1:]

		if p == "**" {
			if len(pats) == 0 {
				return true // trailing ** matches anything
			}
			for i := 0; i <= len(parts); i++ {
				if matchSegments(pats, parts[i:]) {
					return true
				}
			}
			return false
		}

		if len(parts) == 0 {
			return false
		}

		ok, _ := filepath.Match(p, parts[0])
		if !ok {
			return false
		}

		parts = parts[1:]
	}

	return len(parts) == 0
}
