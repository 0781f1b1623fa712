// Package walk enumerates the C source files under a directory tree.
package walk

import (
	"os"
	"path/filepath"
	"strings"

	gitignore "github.com/sabhiram/go-gitignore"
)

// Config controls the enumeration.
type Config struct {
	// Root is the directory to walk.
	Root string

	// IncludeHidden includes dot-files and dot-directories.
	IncludeHidden bool

	// MaxFileSize skips files larger than this many bytes; zero means
	// no limit.
	MaxFileSize int64
}

// ignoreFiles are consulted in order; the first one present wins.
var ignoreFiles = []string{".ccheckignore", ".gitignore"}

// Sources walks the tree under cfg.Root and returns the paths of the
// .c and .h files found, in walk order. Ignore patterns from a
// .ccheckignore (or, failing that, .gitignore) at the root are
// honored. The engine processes one translation unit at a time, so the
// walk is sequential and the order deterministic.
func Sources(cfg Config) ([]string, error) {
	var ignore *gitignore.GitIgnore
	for _, name := range ignoreFiles {
		path := filepath.Join(cfg.Root, name)
		if _, err := os.Stat(path); err == nil {
			ignore, _ = gitignore.CompileIgnoreFile(path)
			break
		}
	}

	var files []string
	err := filepath.Walk(cfg.Root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() {
			if !cfg.IncludeHidden && isHidden(info.Name()) && path != cfg.Root {
				return filepath.SkipDir
			}
			return nil
		}

		if !cfg.IncludeHidden && isHidden(info.Name()) {
			return nil
		}
		if !isCSource(path) {
			return nil
		}
		if cfg.MaxFileSize > 0 && info.Size() > cfg.MaxFileSize {
			return nil
		}

		if ignore != nil {
			relPath, err := filepath.Rel(cfg.Root, path)
			if err != nil {
				return err
			}
			if ignore.MatchesPath(relPath) {
				return nil
			}
		}

		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return files, nil
}

func isCSource(path string) bool {
	switch filepath.Ext(path) {
	case ".c", ".h":
		return true
	}
	return false
}

// isHidden checks if a name is hidden (starts with a dot). The special
// entries "." and ".." are not considered hidden.
func isHidden(name string) bool {
	if name == "." || name == ".." {
		return false
	}
	return strings.HasPrefix(name, ".")
}
