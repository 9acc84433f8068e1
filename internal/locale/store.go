package locale

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/eatsense-app/i18nscan/internal/scanlog"
)

// Sentinel errors for the recoverable locale-loading failures. Both
// are warnings: the affected language proceeds with an empty
// dictionary and every key reports as missing for it.
var (
	ErrLocaleMissing = errors.New("locale file not found")
	ErrLocaleParse   = errors.New("locale file is not valid JSON")
)

// Store reads and writes per-language dictionaries from a directory of
// <lang>.json files.
type Store struct {
	Dir       string
	Languages []string
}

// NewStore creates a store for the given locales directory and
// language set.
func NewStore(dir string, languages []string) *Store {
	return &Store{Dir: dir, Languages: languages}
}

// Path returns the locale file path for a language code.
func (s *Store) Path(lang string) string {
	return filepath.Join(s.Dir, lang+".json")
}

// Load reads one language's dictionary. A missing file returns an
// empty dictionary wrapped in ErrLocaleMissing; malformed JSON returns
// an empty dictionary wrapped in ErrLocaleParse. Callers treat both as
// warnings and keep going.
func (s *Store) Load(lang string) (*Dict, error) {
	path := s.Path(lang)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return NewDict(), fmt.Errorf("%w: %s", ErrLocaleMissing, path)
		}
		return NewDict(), fmt.Errorf("read %s: %w", path, err)
	}

	d := NewDict()
	if err := json.Unmarshal(data, d); err != nil {
		return NewDict(), fmt.Errorf("%w: %s: %v", ErrLocaleParse, path, err)
	}
	return d, nil
}

// LoadAll loads every configured language, logging load problems as
// warnings. The returned map always has an entry per language.
func (s *Store) LoadAll() map[string]*Dict {
	locales := make(map[string]*Dict, len(s.Languages))
	for _, lang := range s.Languages {
		d, err := s.Load(lang)
		if err != nil {
			switch {
			case errors.Is(err, ErrLocaleMissing):
				scanlog.Log.Warn("locale file not found", "lang", lang, "path", s.Path(lang))
			default:
				scanlog.Log.Error("failed to load locale", "lang", lang, "error", err)
			}
		}
		locales[lang] = d
	}
	return locales
}

// Save rewrites a language's locale file: UTF-8, 2-space indentation,
// non-ASCII characters written literally, trailing newline.
func (s *Store) Save(lang string, d *Dict) error {
	// d.MarshalJSON directly: json.Marshal would re-escape <, > and &
	// on the encoded output.
	compact, err := d.MarshalJSON()
	if err != nil {
		return fmt.Errorf("encode %s locale: %w", lang, err)
	}

	var out bytes.Buffer
	if err := json.Indent(&out, compact, "", "  "); err != nil {
		return fmt.Errorf("indent %s locale: %w", lang, err)
	}
	out.WriteByte('\n')

	path := s.Path(lang)
	if err := os.WriteFile(path, out.Bytes(), 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
