package analyzer

import (
	"path/filepath"
	"strings"
)

// StructureDirs is the fixed set of source directories inspected for the
// file-structure summary, in report order.
var StructureDirs = []string{"src", "app", "pages", "components", "lib"}

// AnalyzeStructure counts files by extension under each candidate source
// directory. Directories that do not exist are silently skipped. Returns the
// per-directory counts and the total file count across all of them.
func AnalyzeStructure(root string, w *walker) (map[string]map[string]int, int) {
	structure := make(map[string]map[string]int)
	total := 0

	for _, name := range StructureDirs {
		dir := filepath.Join(root, name)
		if !dirExists(dir) {
			continue
		}

		counts := make(map[string]int)
		w.walk(dir, func(rel string) {
			if ext := filepath.Ext(rel); ext != "" {
				counts[ext]++
				total++
			}
		})
		structure[name] = counts
	}

	return structure, total
}

// countStyleFiles counts .css and .scss files anywhere under the project
// root for styling detection.
func countStyleFiles(root string, w *walker) (cssFiles, scssFiles int) {
	w.walk(root, func(rel string) {
		switch strings.ToLower(filepath.Ext(rel)) {
		case ".css":
			cssFiles++
		case ".scss":
			scssFiles++
		}
	})
	return cssFiles, scssFiles
}
