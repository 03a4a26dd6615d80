// Package filelist resolves list files and expands user-supplied paths.
package filelist

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultCommentPrefix marks a comment line in a list file.
const DefaultCommentPrefix = "#"

// Loader reads list files: one path per line, blank lines and comments skipped.
type Loader struct {
	CommentPrefix string
}

// Load returns the entries of the list file at path in file order.
// A readable but empty list returns an empty slice and no error.
func (l Loader) Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	prefix := l.CommentPrefix
	if prefix == "" {
		prefix = DefaultCommentPrefix
	}

	entries := []string{}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, prefix) {
			continue
		}
		entries = append(entries, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return entries, nil
}

// Expand replaces $VAR and ${VAR} references from the environment and a
// leading ~ with the home directory. Other paths are returned unchanged.
func Expand(path string) string {
	path = os.ExpandEnv(path)
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[1:])
		}
	}
	return path
}
