package scan

import (
	"os"
	"path/filepath"
	"testing"
)

func TestScanFiles(t *testing.T) {
	root := t.TempDir()
	src := `import { t } from '../i18n';

export function Screen() {
  return (
    <View>
      <Text>{t('common.ok')}</Text>
      <Text>Hardcoded Copy</Text>
    </View>
  );
}
`
	if err := os.MkdirAll(filepath.Join(root, "src"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "src", "Screen.js"), []byte(src), 0644); err != nil {
		t.Fatal(err)
	}

	res := NewScanner(root, NewDetector()).ScanFiles([]string{"src/Screen.js"})

	if res.Keys.Len() != 1 {
		t.Fatalf("expected 1 key, got %v", res.Keys.Refs())
	}
	if ref := res.Keys.Refs()[0]; ref.Key != "common.ok" || ref.File != "src/Screen.js" {
		t.Errorf("got ref %+v", ref)
	}

	if len(res.Findings) != 1 {
		t.Fatalf("expected 1 finding, got %v", res.Findings)
	}
	if f := res.Findings[0]; f.Text != "Hardcoded Copy" || f.Line != 7 {
		t.Errorf("got finding %+v", f)
	}
}

func TestScanFilesSkipsUnreadable(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "bin.js"), []byte{0xff, 0xfe, 0x00, 0xc3}, 0644); err != nil {
		t.Fatal(err)
	}

	res := NewScanner(root, NewDetector()).ScanFiles([]string{"bin.js", "missing.js"})
	if res.Keys.Len() != 0 || len(res.Findings) != 0 {
		t.Errorf("binary and missing files should contribute nothing, got %+v", res)
	}
}
