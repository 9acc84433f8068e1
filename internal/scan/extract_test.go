package scan

import "testing"

func extract(content string) []KeyRef {
	set := NewKeySet()
	ExtractKeys(content, "src/App.js", set)
	return set.Refs()
}

func TestExtractKeys(t *testing.T) {
	refs := extract(`
const a = t('common.ok');
const b = i18n.t("onboarding.welcome");
const c = t('diets_title', { count: 2 });
`)

	want := []string{"common.ok", "onboarding.welcome", "diets_title"}
	if len(refs) != len(want) {
		t.Fatalf("expected %d keys, got %v", len(want), refs)
	}
	for i, k := range want {
		if refs[i].Key != k {
			t.Errorf("key %d: got %q, want %q", i, refs[i].Key, k)
		}
		if refs[i].File != "src/App.js" {
			t.Errorf("key %d: file %q", i, refs[i].File)
		}
	}
}

func TestExtractKeysFilters(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"denylisted global", `window.setTimeout(t('window'), 0)`},
		{"single char", `t('a')`},
		{"comment line", `// t('commented.key')`},
		{"indented comment", `    // const x = t('also.commented')`},
	}

	for _, tt := range tests {
		if refs := extract(tt.content); len(refs) != 0 {
			t.Errorf("%s: expected no keys, got %v", tt.name, refs)
		}
	}
}

func TestExtractKeysDedupes(t *testing.T) {
	refs := extract(`
t('common.ok')
t('common.ok')
`)
	if len(refs) != 1 {
		t.Fatalf("expected 1 distinct key, got %v", refs)
	}
}

func TestKeySetDedupesAcrossFiles(t *testing.T) {
	set := NewKeySet()
	ExtractKeys(`t('common.ok')`, "src/A.js", set)
	ExtractKeys(`t('common.ok')`, "src/B.js", set)

	// Same key in different files is two distinct references.
	if set.Len() != 2 {
		t.Errorf("expected 2 refs, got %d", set.Len())
	}
}
