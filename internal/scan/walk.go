package scan

import (
	"io/fs"
	"path/filepath"
	"strings"
)

// sourceExts are the file extensions the scanner looks at.
var sourceExts = map[string]bool{
	".js":  true,
	".jsx": true,
	".ts":  true,
	".tsx": true,
}

// IsSourceFile reports whether a path is a scannable source file:
// right extension and not a test file.
func IsSourceFile(path string) bool {
	if !sourceExts[filepath.Ext(path)] {
		return false
	}
	base := filepath.Base(path)
	return !strings.Contains(base, ".test.") && !strings.Contains(base, ".spec.")
}

// isTestDir reports whether a directory name marks test content
// (covers "test", "tests", "__tests__" and friends).
func isTestDir(name string) bool {
	return strings.Contains(strings.ToLower(name), "test")
}

// Walk returns project-relative paths of all scannable source files
// under root/srcDir, in deterministic lexical order. Report truncation
// ("showing first N") depends on this order being stable.
func Walk(root, srcDir string) ([]string, error) {
	start := filepath.Join(root, srcDir)

	var files []string
	err := filepath.WalkDir(start, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != start && isTestDir(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if !IsSourceFile(path) {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}
