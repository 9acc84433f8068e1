package inject

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/eatsense-app/i18nscan/internal/locale"
)

func newStore(t *testing.T, languages []string, files map[string]string) *locale.Store {
	t.Helper()
	dir := t.TempDir()
	for lang, content := range files {
		if err := os.WriteFile(filepath.Join(dir, lang+".json"), []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return locale.NewStore(dir, languages)
}

func TestInjectorAddsMissingKeys(t *testing.T) {
	store := newStore(t, []string{"en"}, map[string]string{
		"en": `{"common": {"ok": "OK", "empty": ""}}`,
	})
	patch := Patch{
		"en": {
			"common.ok":     "OK again", // present, must not overwrite
			"common.empty":  "Filled",   // falsy, must be filled
			"common.cancel": "Cancel",   // absent, must be added
		},
	}

	var buf bytes.Buffer
	added, err := NewInjector(store, patch, false).Run(&buf)
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if added["en"] != 2 {
		t.Errorf("added = %v, want en:2", added)
	}
	if !strings.Contains(buf.String(), "[EN] Added 2 missing keys") {
		t.Errorf("output: %s", buf.String())
	}

	d, err := store.Load("en")
	if err != nil {
		t.Fatal(err)
	}
	if v, _ := locale.Resolve(d, "common.ok"); v != "OK" {
		t.Errorf("existing value overwritten: %v", v)
	}
	if v, _ := locale.Resolve(d, "common.empty"); v != "Filled" {
		t.Errorf("falsy value not filled: %v", v)
	}
	if v, _ := locale.Resolve(d, "common.cancel"); v != "Cancel" {
		t.Errorf("new key not added: %v", v)
	}
}

func TestInjectorIdempotent(t *testing.T) {
	store := newStore(t, []string{"en"}, map[string]string{"en": `{}`})
	patch := Patch{"en": {"common.ok": "OK"}}

	var buf bytes.Buffer
	if _, err := NewInjector(store, patch, false).Run(&buf); err != nil {
		t.Fatal(err)
	}
	first, err := os.ReadFile(store.Path("en"))
	if err != nil {
		t.Fatal(err)
	}

	buf.Reset()
	added, err := NewInjector(store, patch, false).Run(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if added["en"] != 0 {
		t.Errorf("second run added %d keys", added["en"])
	}
	if !strings.Contains(buf.String(), "[EN] No missing keys to add") {
		t.Errorf("output: %s", buf.String())
	}

	second, err := os.ReadFile(store.Path("en"))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(first, second) {
		t.Error("second run rewrote the file")
	}
}

func TestInjectorDryRun(t *testing.T) {
	store := newStore(t, []string{"en"}, map[string]string{"en": `{}`})
	patch := Patch{"en": {"common.ok": "OK"}}

	var buf bytes.Buffer
	added, err := NewInjector(store, patch, true).Run(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if added["en"] != 1 {
		t.Errorf("dry run should still count, got %v", added)
	}

	data, err := os.ReadFile(store.Path("en"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{}` {
		t.Errorf("dry run wrote the file: %s", data)
	}
}

func TestInjectorSkipsCollisions(t *testing.T) {
	store := newStore(t, []string{"en"}, map[string]string{
		"en": `{"common": {"ok": "OK"}}`,
	})
	patch := Patch{
		"en": {
			"common.ok.deep": "v", // collides with the string common.ok
			"common.cancel":  "Cancel",
		},
	}

	var buf bytes.Buffer
	added, err := NewInjector(store, patch, false).Run(&buf)
	if err != nil {
		t.Fatalf("collisions must not abort the run: %v", err)
	}
	if added["en"] != 1 {
		t.Errorf("added = %v, want en:1", added)
	}

	d, err := store.Load("en")
	if err != nil {
		t.Fatal(err)
	}
	if v, _ := locale.Resolve(d, "common.ok"); v != "OK" {
		t.Errorf("collision target modified: %v", v)
	}
	if !locale.Has(d, "common.cancel") {
		t.Error("non-colliding key missing")
	}
}

func TestInjectorSkipsMissingLocale(t *testing.T) {
	store := newStore(t, []string{"en", "fr"}, map[string]string{"en": `{}`})
	patch := Patch{
		"en": {"common.ok": "OK"},
		"fr": {"common.ok": "OK"},
	}

	var buf bytes.Buffer
	added, err := NewInjector(store, patch, false).Run(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if added["en"] != 1 {
		t.Errorf("en should still be processed, got %v", added)
	}
	if _, ok := added["fr"]; ok {
		t.Error("unloadable language should be skipped entirely")
	}
	if _, err := os.Stat(store.Path("fr")); !os.IsNotExist(err) {
		t.Error("skipped language must not be created")
	}
}

func TestInjectorSkipsLanguagesWithoutEntries(t *testing.T) {
	store := newStore(t, []string{"en", "kk"}, map[string]string{
		"en": `{}`,
		"kk": `{}`,
	})
	patch := Patch{"en": {"common.ok": "OK"}, "kk": {}}

	var buf bytes.Buffer
	added, err := NewInjector(store, patch, false).Run(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := added["kk"]; ok {
		t.Error("language with no patch entries should be skipped")
	}
	if strings.Contains(buf.String(), "[KK]") {
		t.Errorf("no output expected for kk: %s", buf.String())
	}
}

func TestDefaultPatch(t *testing.T) {
	p := DefaultPatch()

	if len(p["en"]) == 0 {
		t.Fatal("en patch table is empty")
	}
	if v := p["en"]["onboarding.welcome"]; v != "Welcome to EatSense" {
		t.Errorf("onboarding.welcome = %q", v)
	}
	if v := p["ru"]["common.goTo"]; v != "Перейти" {
		t.Errorf("ru common.goTo = %q", v)
	}
	if _, ok := p["kk"]; !ok {
		t.Error("kk slot should exist")
	}
}
