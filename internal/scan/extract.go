// Package scan finds translation-key references and hardcoded display
// strings in JS/TS source trees. Detection is deliberately
// line-oriented and regex-based: it over-matches and filters, trading
// a few false positives for not silently missing real call sites.
package scan

import (
	"regexp"
	"strings"
)

// keyCallPattern matches t('key.path') or t("key.path"), with an
// optional second argument (fallback text or params object). It also
// matches i18n.t(...) since the receiver is irrelevant to the key.
var keyCallPattern = regexp.MustCompile(`t\(\s*['"]([a-zA-Z0-9_.]+)['"]\s*(?:,\s*[^)]+)?\)`)

// keyDenylist holds known false positives: single-character helpers
// and globals whose calls the loose t( pattern accidentally matches.
var keyDenylist = map[string]bool{
	".":      true,
	"T":      true,
	"window": true,
	"screen": true,
	"api":    true,
	"cache":  true,
	"xss":    true,
	"b":      true,
	"a":      true,
}

// KeyRef is one translation key referenced from a source file.
type KeyRef struct {
	Key  string
	File string // project-relative path
}

// KeySet accumulates distinct (key, file) pairs.
type KeySet struct {
	seen map[KeyRef]bool
	refs []KeyRef
}

// NewKeySet returns an empty accumulator.
func NewKeySet() *KeySet {
	return &KeySet{seen: make(map[KeyRef]bool)}
}

// Add records a reference; duplicates collapse.
func (s *KeySet) Add(ref KeyRef) {
	if s.seen[ref] {
		return
	}
	s.seen[ref] = true
	s.refs = append(s.refs, ref)
}

// Refs returns the distinct references in insertion order.
func (s *KeySet) Refs() []KeyRef {
	return s.refs
}

// Len returns the number of distinct references.
func (s *KeySet) Len() int {
	return len(s.refs)
}

// ExtractKeys scans full file text for translation-call keys and adds
// the distinct (key, file) pairs to the accumulator. Dynamic keys
// (template interpolation), keys shorter than two characters and the
// denylist are dropped. Lines that are single-line comments are
// skipped entirely.
func ExtractKeys(content, relPath string, into *KeySet) {
	for _, line := range strings.Split(content, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "//") {
			continue
		}
		for _, m := range keyCallPattern.FindAllStringSubmatch(line, -1) {
			key := m[1]
			if strings.Contains(key, "${") || len(key) < 2 {
				continue
			}
			if keyDenylist[key] {
				continue
			}
			into.Add(KeyRef{Key: key, File: relPath})
		}
	}
}
