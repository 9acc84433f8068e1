package report

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/eatsense-app/i18nscan/internal/locale"
	"github.com/eatsense-app/i18nscan/internal/scan"
)

func parseDict(t *testing.T, data string) *locale.Dict {
	t.Helper()
	d := locale.NewDict()
	if err := json.Unmarshal([]byte(data), d); err != nil {
		t.Fatal(err)
	}
	return d
}

func TestMissing(t *testing.T) {
	locales := map[string]*locale.Dict{
		"en": parseDict(t, `{"common": {"ok": "OK", "empty": ""}}`),
		"fr": locale.NewDict(),
	}
	refs := []scan.KeyRef{
		{Key: "common.ok", File: "src/A.js"},
		{Key: "common.empty", File: "src/B.js"},
	}

	missing := Missing(locales, []string{"en", "fr"}, refs)

	if len(missing) != 2 {
		t.Fatalf("expected entry per language, got %v", missing)
	}

	// en resolves common.ok but common.empty is falsy.
	wantEN := []MissingPair{{Key: "common.empty", File: "src/B.js"}}
	if !reflect.DeepEqual(missing["en"], wantEN) {
		t.Errorf("en = %v, want %v", missing["en"], wantEN)
	}

	if len(missing["fr"]) != 2 {
		t.Errorf("fr should miss both keys, got %v", missing["fr"])
	}
}

func TestMissingEmptyRefs(t *testing.T) {
	missing := Missing(map[string]*locale.Dict{"en": locale.NewDict()}, []string{"en"}, nil)
	if pairs, ok := missing["en"]; !ok || len(pairs) != 0 {
		t.Errorf("expected empty entry for en, got %v", missing)
	}
}

func TestGroupByFile(t *testing.T) {
	pairs := []MissingPair{
		{Key: "b.key", File: "src/z.js"},
		{Key: "a.key", File: "src/a.js"},
		{Key: "c.key", File: "src/z.js"},
		{Key: "b.key", File: "src/z.js"},
	}

	groups := GroupByFile(pairs)

	want := []FileGroup{
		{File: "src/a.js", Keys: []string{"a.key"}},
		{File: "src/z.js", Keys: []string{"b.key", "c.key"}},
	}
	if !reflect.DeepEqual(groups, want) {
		t.Errorf("got %v, want %v", groups, want)
	}
}
