package scan

import "testing"

func TestDetectMarkupText(t *testing.T) {
	tests := []struct {
		name string
		line string
		want int
	}{
		{"plain text", `<Text>Hello World</Text>`, 1},
		{"interpolation", `<Text>{translatedGreeting}</Text>`, 0},
		{"lowercase identifier", `<Text>greeting</Text>`, 0},
		{"single uppercase word", `<Text>Save</Text>`, 1},
		{"digits only", `<Text>123</Text>`, 0},
		{"code expression", `<Text>items.map(x)</Text>`, 0},
		{"logical operator", `<Text>a && b</Text>`, 0},
		{"single char", `<Text>x</Text>`, 0},
	}

	d := NewDetector()
	for _, tt := range tests {
		findings := d.DetectLine(tt.line, "src/App.js", 1)
		if len(findings) != tt.want {
			t.Errorf("%s: got %d findings (%v), want %d", tt.name, len(findings), findings, tt.want)
		}
	}
}

func TestDetectMarkupTextFields(t *testing.T) {
	d := NewDetector()
	findings := d.DetectLine(`<Text> Hello World </Text>`, "src/App.js", 7)
	if len(findings) != 1 {
		t.Fatalf("expected 1 finding, got %v", findings)
	}

	f := findings[0]
	if f.Kind != KindMarkupText {
		t.Errorf("kind = %v", f.Kind)
	}
	if f.Text != "Hello World" {
		t.Errorf("text not trimmed: %q", f.Text)
	}
	if f.Line != 7 || f.File != "src/App.js" {
		t.Errorf("location %s:%d", f.File, f.Line)
	}
	if f.Label() != "JSX Text" {
		t.Errorf("label = %q", f.Label())
	}
}

func TestDetectProps(t *testing.T) {
	tests := []struct {
		name string
		line string
		want int
	}{
		{"double quoted", `<Screen title="Welcome Home" />`, 1},
		{"single quoted", `<Input placeholder='Enter your name' />`, 1},
		{"dynamic value", `<Screen title={dynamicTitle} />`, 0},
		{"url", `<Link title="http://example.com" />`, 0},
		{"translated", `<Screen title={t('common.ok')} />`, 0},
		{"lowercase single word", `<Screen label="value" />`, 0},
	}

	d := NewDetector()
	for _, tt := range tests {
		findings := d.DetectLine(tt.line, "src/App.js", 1)
		if len(findings) != tt.want {
			t.Errorf("%s: got %d findings (%v), want %d", tt.name, len(findings), findings, tt.want)
		}
	}
}

func TestDetectPropLabel(t *testing.T) {
	d := NewDetector()
	findings := d.DetectLine(`<Screen title="Welcome Home" />`, "src/App.js", 1)
	if len(findings) != 1 {
		t.Fatalf("expected 1 finding, got %v", findings)
	}
	if findings[0].Label() != "Prop (title)" {
		t.Errorf("label = %q", findings[0].Label())
	}
}

func TestExtendedDetector(t *testing.T) {
	base := NewDetector()
	ext := NewExtendedDetector()

	// subtitle is only a prop in the extended set.
	line := `<Card subtitle="Fun diets inspired by history" />`
	if got := base.DetectLine(line, "f.js", 1); len(got) != 0 {
		t.Errorf("base detector should ignore subtitle, got %v", got)
	}
	if got := ext.DetectLine(line, "f.js", 1); len(got) != 1 {
		t.Errorf("extended detector should flag subtitle, got %v", got)
	}

	// HTTP verbs are only denylisted in the extended set.
	line = `<Text>DELETE</Text>`
	if got := base.DetectLine(line, "f.js", 1); len(got) != 1 {
		t.Errorf("base detector should flag DELETE, got %v", got)
	}
	if got := ext.DetectLine(line, "f.js", 1); len(got) != 0 {
		t.Errorf("extended detector should drop DELETE, got %v", got)
	}
}

func TestDetectSkipsCommentLines(t *testing.T) {
	content := `// <Text>Hidden Comment</Text>
<Text>Visible Copy</Text>
  // title="Also Hidden"
`
	d := NewDetector()
	findings := d.Detect(content, "src/App.js")
	if len(findings) != 1 {
		t.Fatalf("expected 1 finding, got %v", findings)
	}
	if findings[0].Text != "Visible Copy" || findings[0].Line != 2 {
		t.Errorf("got %+v", findings[0])
	}
}
