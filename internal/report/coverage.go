// Package report cross-references extracted keys against locales and
// renders the console reports.
package report

import (
	"sort"

	"github.com/eatsense-app/i18nscan/internal/locale"
	"github.com/eatsense-app/i18nscan/internal/scan"
)

// MissingPair is a key that failed to resolve for some language,
// together with the file that references it.
type MissingPair struct {
	Key  string
	File string
}

// Missing resolves every extracted (key, file) pair against every
// language and returns the per-language pairs that are absent or
// falsy. Every configured language gets an entry, possibly empty.
func Missing(locales map[string]*locale.Dict, languages []string, refs []scan.KeyRef) map[string][]MissingPair {
	missing := make(map[string][]MissingPair, len(languages))
	for _, lang := range languages {
		missing[lang] = nil
	}

	for _, ref := range refs {
		for _, lang := range languages {
			if !locale.Has(locales[lang], ref.Key) {
				missing[lang] = append(missing[lang], MissingPair{Key: ref.Key, File: ref.File})
			}
		}
	}
	return missing
}

// FileGroup is one source file's missing keys, sorted.
type FileGroup struct {
	File string
	Keys []string
}

// GroupByFile groups pairs by file (files sorted lexicographically)
// with each file's keys sorted and deduplicated.
func GroupByFile(pairs []MissingPair) []FileGroup {
	byFile := make(map[string]map[string]bool)
	for _, p := range pairs {
		if byFile[p.File] == nil {
			byFile[p.File] = make(map[string]bool)
		}
		byFile[p.File][p.Key] = true
	}

	files := make([]string, 0, len(byFile))
	for f := range byFile {
		files = append(files, f)
	}
	sort.Strings(files)

	groups := make([]FileGroup, 0, len(files))
	for _, f := range files {
		keys := make([]string, 0, len(byFile[f]))
		for k := range byFile[f] {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		groups = append(groups, FileGroup{File: f, Keys: keys})
	}
	return groups
}
