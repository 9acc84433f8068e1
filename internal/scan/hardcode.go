package scan

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// markupTextPattern matches text strictly between a closing '>' and
// the next '<'. Braces exclude JSX expression interpolation.
var markupTextPattern = regexp.MustCompile(`>([^<{}]+)<`)

// Prop patterns match name="literal" / name='literal' assignments for
// props that typically carry display text. The audit variant adds
// subtitle/description/hint.
var (
	propPattern         = regexp.MustCompile(`\b(title|label|placeholder|message|header)\s*=\s*["']([^"']{2,})["']`)
	propPatternExtended = regexp.MustCompile(`\b(title|label|placeholder|message|header|subtitle|description|hint)\s*=\s*["']([^"']{2,})["']`)
)

// baseCodeTokens are substrings that mark a candidate as code rather
// than display text: keywords, operators and common type utilities
// that the loose markup regex keeps picking up.
var baseCodeTokens = []string{
	"Promise", "void", "return", "import", "export",
	"||", "&&", "==", "!=", "=>", "):", "({",
	".includes(", ".map(", ".filter(", ".join(",
	"const ", "let ", "var ", "function", "class ",
	"(url: string", "Record", "Partial", "Pick",
	"Omit", "<T>",
}

// extraCodeTokens extend the denylist for the audit scan, which covers
// files where HTTP verbs and error-class names show up between tags.
var extraCodeTokens = []string{
	"DELETE", "HEAD", "GET", "PUT",
	"Performance", "Error",
}

// FindingKind distinguishes the two hardcode sub-scans.
type FindingKind string

const (
	// KindMarkupText is literal text inside a markup element.
	KindMarkupText FindingKind = "JSX Text"
	// KindProp is a string literal assigned to a text-bearing prop.
	// The Finding's Prop field names the property.
	KindProp FindingKind = "Prop"
)

// Finding is one suspicious hardcoded string.
type Finding struct {
	Kind FindingKind
	Prop string // property name for KindProp, empty otherwise
	File string // project-relative path
	Line int    // 1-based
	Text string
}

// Label renders the kind the way reports print it.
func (f Finding) Label() string {
	if f.Kind == KindProp {
		return "Prop (" + f.Prop + ")"
	}
	return string(f.Kind)
}

// Detector scans lines for hardcoded display strings.
type Detector struct {
	codeTokens []string
	props      *regexp.Regexp
}

// NewDetector returns a detector with the base denylist and prop set.
func NewDetector() *Detector {
	return &Detector{codeTokens: baseCodeTokens, props: propPattern}
}

// NewExtendedDetector returns the audit-variant detector: more prop
// names and a longer code-token denylist.
func NewExtendedDetector() *Detector {
	tokens := make([]string, 0, len(baseCodeTokens)+len(extraCodeTokens))
	tokens = append(tokens, baseCodeTokens...)
	tokens = append(tokens, extraCodeTokens...)
	return &Detector{codeTokens: tokens, props: propPatternExtended}
}

// suspicious reports whether trimmed candidate text looks like display
// text: non-empty, not purely numeric, at least two characters, free
// of code tokens, and either multi-word or starting uppercase (bare
// camelCase identifiers are dropped).
func (d *Detector) suspicious(text string) bool {
	text = strings.TrimSpace(text)
	if text == "" || allDigits(text) || len(text) < 2 {
		return false
	}
	for _, tok := range d.codeTokens {
		if strings.Contains(text, tok) {
			return false
		}
	}
	if !strings.Contains(text, " ") {
		r, _ := utf8.DecodeRuneInString(text)
		if !unicode.IsUpper(r) {
			return false
		}
	}
	return true
}

func allDigits(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return s != ""
}

// DetectLine runs both sub-scans over one physical line and returns
// its findings in match order. Comment lines must be filtered by the
// caller before line numbering diverges.
func (d *Detector) DetectLine(line, relPath string, lineNo int) []Finding {
	var findings []Finding

	for _, m := range markupTextPattern.FindAllStringSubmatch(line, -1) {
		if d.suspicious(m[1]) {
			findings = append(findings, Finding{
				Kind: KindMarkupText,
				File: relPath,
				Line: lineNo,
				Text: strings.TrimSpace(m[1]),
			})
		}
	}

	for _, m := range d.props.FindAllStringSubmatch(line, -1) {
		prop, text := m[1], m[2]
		if d.suspicious(text) && !strings.HasPrefix(text, "http") {
			findings = append(findings, Finding{
				Kind: KindProp,
				Prop: prop,
				File: relPath,
				Line: lineNo,
				Text: strings.TrimSpace(text),
			})
		}
	}

	return findings
}

// Detect scans full file text line by line. Lines whose trimmed
// content starts with // are skipped before either sub-scan runs.
func (d *Detector) Detect(content, relPath string) []Finding {
	var findings []Finding
	for i, line := range strings.Split(content, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "//") {
			continue
		}
		findings = append(findings, d.DetectLine(line, relPath, i+1)...)
	}
	return findings
}
