package analyzer

import (
	"io/fs"
	"log"
	"os"
	"path/filepath"

	ignore "github.com/sabhiram/go-gitignore"
)

// skipDirs contains directory names that are never scanned.
var skipDirs = map[string]bool{
	"node_modules": true,
	".git":         true,
	".next":        true,
	"dist":         true,
	"build":        true,
	"coverage":     true,
	"vendor":       true,
}

// walker walks project subtrees, skipping well-known build output directories
// and anything matched by the project's .gitignore.
type walker struct {
	root      string
	gitignore *ignore.GitIgnore // nil when the project has no .gitignore
}

func newWalker(root string) *walker {
	w := &walker{root: root}
	gitignorePath := filepath.Join(root, ".gitignore")
	if _, err := os.Stat(gitignorePath); err == nil {
		if gi, err := ignore.CompileIgnoreFile(gitignorePath); err == nil {
			w.gitignore = gi
		}
	}
	return w
}

// walk calls fn for every regular file under dir with its path relative to
// the walker root. Unreadable entries are logged and skipped, never fatal.
func (w *walker) walk(dir string, fn func(rel string)) {
	_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			log.Printf("analyze: skipping %q: %v", path, err)
			return nil
		}

		rel, relErr := filepath.Rel(w.root, path)
		if relErr != nil {
			return nil
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if skipDirs[d.Name()] {
				return filepath.SkipDir
			}
			if w.ignored(rel) && rel != "." {
				return filepath.SkipDir
			}
			return nil
		}

		if w.ignored(rel) {
			return nil
		}
		fn(rel)
		return nil
	})
}

func (w *walker) ignored(rel string) bool {
	return w.gitignore != nil && w.gitignore.MatchesPath(rel)
}
