// Package inject bulk-inserts a curated table of missing translation
// keys into the locale files. It is an offline maintenance operation
// against the locale store, independent of the scanners.
package inject

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/eatsense-app/i18nscan/internal/i18n"
	"github.com/eatsense-app/i18nscan/internal/locale"
	"github.com/eatsense-app/i18nscan/internal/scanlog"
)

// Patch maps language code to dotted key to replacement value.
type Patch map[string]map[string]string

// Injector applies a patch to a locale store.
type Injector struct {
	store  *locale.Store
	patch  Patch
	dryRun bool
}

// NewInjector creates an injector. With dryRun set, nothing is
// written; the would-be additions are only reported.
func NewInjector(store *locale.Store, patch Patch, dryRun bool) *Injector {
	return &Injector{store: store, patch: patch, dryRun: dryRun}
}

// Run applies the patch to every configured language that has entries.
// A key is added only when it resolves absent-or-falsy in the loaded
// dictionary, so running twice is a no-op. The file is rewritten only
// when at least one key was added. Returns per-language added counts.
func (inj *Injector) Run(w io.Writer) (map[string]int, error) {
	added := make(map[string]int)

	for _, lang := range inj.store.Languages {
		entries := inj.patch[lang]
		if len(entries) == 0 {
			continue
		}

		dict, err := inj.store.Load(lang)
		if err != nil {
			// A language we cannot load is skipped entirely: injecting
			// into an empty dictionary would clobber the real file.
			switch {
			case errors.Is(err, locale.ErrLocaleMissing):
				scanlog.Log.Warn("locale file not found, skipping", "lang", lang)
			default:
				scanlog.Log.Error("failed to load locale, skipping", "lang", lang, "error", err)
			}
			continue
		}

		count := inj.apply(lang, dict, entries)
		added[lang] = count

		tag := strings.ToUpper(lang)
		if count == 0 {
			fmt.Fprintln(w, i18n.Tf("fill.none", "[%s] No missing keys to add", tag))
			continue
		}

		if !inj.dryRun {
			if err := inj.store.Save(lang, dict); err != nil {
				return added, err
			}
		}
		fmt.Fprintln(w, i18n.Tf("fill.added", "[%s] Added %d missing keys", tag, count))
	}

	return added, nil
}

// apply upserts every absent-or-falsy entry. Collisions with existing
// non-object values are logged and skipped, never overwritten.
func (inj *Injector) apply(lang string, dict *locale.Dict, entries map[string]string) int {
	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var count int
	for _, key := range keys {
		if locale.Has(dict, key) {
			continue
		}
		if err := locale.Upsert(dict, key, entries[key]); err != nil {
			scanlog.Log.Warn("key collision, skipping", "lang", lang, "key", key, "error", err)
			continue
		}
		count++
	}
	return count
}
