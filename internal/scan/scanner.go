package scan

import (
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/eatsense-app/i18nscan/internal/scanlog"
)

// Result aggregates one scan pass over a set of files.
type Result struct {
	Keys     *KeySet
	Findings []Finding
}

// Scanner runs the key extractor and hardcode detector over source
// files. Files are processed one at a time in the order given; each
// file's findings are independent.
type Scanner struct {
	Root     string
	Detector *Detector
}

// NewScanner creates a scanner rooted at the project directory.
func NewScanner(root string, det *Detector) *Scanner {
	return &Scanner{Root: root, Detector: det}
}

// ScanFiles scans the given project-relative files. A file that cannot
// be read or is not valid UTF-8 text is logged and contributes zero
// findings; the scan continues.
func (s *Scanner) ScanFiles(files []string) *Result {
	res := &Result{Keys: NewKeySet()}
	for _, rel := range files {
		s.scanFile(rel, res)
	}
	return res
}

func (s *Scanner) scanFile(rel string, res *Result) {
	data, err := os.ReadFile(filepath.Join(s.Root, filepath.FromSlash(rel)))
	if err != nil {
		scanlog.Log.Error("failed to read source file", "file", rel, "error", err)
		return
	}
	if !utf8.Valid(data) {
		scanlog.Log.Error("source file is not valid UTF-8", "file", rel)
		return
	}

	content := string(data)
	ExtractKeys(content, rel, res.Keys)
	res.Findings = append(res.Findings, s.Detector.Detect(content, rel)...)
}
