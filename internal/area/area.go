// Package area maps source files and translation keys to named
// functional areas (Onboarding, Nutrition, ...) used to group scan
// output. The mapping is static configuration passed in at
// construction so tests can substitute fixtures.
package area

import (
	"fmt"
	"path"
	"strings"

	"github.com/gobwas/glob"
)

// Other is the implicit bucket for files no area claims.
const Other = "Other"

// Area is one named functional grouping. Patterns may be exact
// project-relative paths, bare basenames, or glob patterns with
// wildcards. KeyPrefixes attribute keys to the area regardless of
// which file referenced them, so a key used from a shared component
// still lands in the domain area it belongs to.
type Area struct {
	Name        string
	Patterns    []string
	KeyPrefixes []string
}

type compiledArea struct {
	area  Area
	globs []glob.Glob
	exact []string
}

// Classifier tests files and keys for area membership. Area order is
// the report order.
type Classifier struct {
	areas []compiledArea
}

// NewClassifier compiles the area configuration. Patterns containing
// wildcards become globs; "/**/" patterns additionally match direct
// children of the prefix directory (so "a/**/*.js" covers "a/x.js").
func NewClassifier(areas []Area) (*Classifier, error) {
	c := &Classifier{}
	for _, a := range areas {
		ca := compiledArea{area: a}
		for _, p := range a.Patterns {
			if !strings.ContainsAny(p, "*?[") {
				ca.exact = append(ca.exact, p)
				continue
			}
			g, err := glob.Compile(p, '/')
			if err != nil {
				return nil, fmt.Errorf("area %s: pattern %q: %w", a.Name, p, err)
			}
			ca.globs = append(ca.globs, g)
			if strings.Contains(p, "/**/") {
				flat, err := glob.Compile(strings.Replace(p, "/**/", "/", 1), '/')
				if err != nil {
					return nil, fmt.Errorf("area %s: pattern %q: %w", a.Name, p, err)
				}
				ca.globs = append(ca.globs, flat)
			}
		}
		c.areas = append(c.areas, ca)
	}
	return c, nil
}

// Order returns area names in configured report order.
func (c *Classifier) Order() []string {
	names := make([]string, len(c.areas))
	for i, ca := range c.areas {
		names[i] = ca.area.Name
	}
	return names
}

// ClassifyFile returns every area a project-relative file belongs to,
// in area order. Files no area claims return nil; callers bucket them
// under Other.
func (c *Classifier) ClassifyFile(rel string) []string {
	var matches []string
	for _, ca := range c.areas {
		if ca.matchesFile(rel) {
			matches = append(matches, ca.area.Name)
		}
	}
	return matches
}

// ClassifyKey returns every area whose key prefixes match the key.
func (c *Classifier) ClassifyKey(key string) []string {
	var matches []string
	for _, ca := range c.areas {
		for _, prefix := range ca.area.KeyPrefixes {
			if strings.HasPrefix(key, prefix) {
				matches = append(matches, ca.area.Name)
				break
			}
		}
	}
	return matches
}

func (ca *compiledArea) matchesFile(rel string) bool {
	base := path.Base(rel)
	for _, p := range ca.exact {
		// Basename matching mirrors the find-by-filename fallback in
		// SelectFiles: a screen file that moved directories keeps its
		// area.
		if rel == p || base == path.Base(p) {
			return true
		}
	}
	for _, g := range ca.globs {
		if g.Match(rel) {
			return true
		}
	}
	return false
}

// SelectFiles filters a walked file list down to the files any area
// claims, preserving walk order and dropping duplicates. Patterns that
// name a path not present in the list fall back to basename matching,
// so a moved screen file is still found.
func (c *Classifier) SelectFiles(files []string) []string {
	present := make(map[string]bool, len(files))
	for _, f := range files {
		present[f] = true
	}

	wanted := make(map[string]bool)
	for _, ca := range c.areas {
		for _, p := range ca.exact {
			if present[p] {
				wanted[p] = true
				continue
			}
			// Fall back to locating the file by basename anywhere in
			// the tree.
			base := path.Base(p)
			for _, f := range files {
				if path.Base(f) == base {
					wanted[f] = true
				}
			}
		}
		for _, g := range ca.globs {
			for _, f := range files {
				if g.Match(f) {
					wanted[f] = true
				}
			}
		}
	}

	var selected []string
	for _, f := range files {
		if wanted[f] {
			selected = append(selected, f)
		}
	}
	return selected
}
