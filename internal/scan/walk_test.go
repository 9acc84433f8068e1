package scan

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeFiles(t *testing.T, root string, paths ...string) {
	t.Helper()
	for _, p := range paths {
		full := filepath.Join(root, filepath.FromSlash(p))
		if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(full, []byte("// empty\n"), 0644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestIsSourceFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"src/App.js", true},
		{"src/Screen.tsx", true},
		{"src/util.ts", true},
		{"src/Widget.jsx", true},
		{"src/App.test.js", false},
		{"src/App.spec.tsx", false},
		{"src/readme.md", false},
		{"src/data.json", false},
	}
	for _, tt := range tests {
		if got := IsSourceFile(tt.path); got != tt.want {
			t.Errorf("IsSourceFile(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestWalk(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root,
		"src/b.tsx",
		"src/a.js",
		"src/screens/Home.js",
		"src/screens/__tests__/Home.js",
		"src/util.test.js",
		"src/notes.txt",
		"outside/c.js",
	)

	files, err := Walk(root, "src")
	if err != nil {
		t.Fatalf("Walk error: %v", err)
	}

	want := []string{"src/a.js", "src/b.tsx", "src/screens/Home.js"}
	if !reflect.DeepEqual(files, want) {
		t.Errorf("got %v, want %v", files, want)
	}
}

func TestWalkMissingDir(t *testing.T) {
	if _, err := Walk(t.TempDir(), "src"); err == nil {
		t.Error("expected error for missing source dir")
	}
}
