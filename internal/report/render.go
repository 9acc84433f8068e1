package report

import (
	"fmt"
	"io"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/eatsense-app/i18nscan/internal/i18n"
	"github.com/eatsense-app/i18nscan/internal/scan"
)

// otherFindingsCap bounds the flat "other files" hardcode list in the
// whole-tree scan report.
const otherFindingsCap = 20

// areaFindingsCap bounds each area's hardcode list in the audit
// report.
const areaFindingsCap = 10

// Styles holds the lipgloss styles the renderer writes with.
type Styles struct {
	Header    lipgloss.Style
	Section   lipgloss.Style
	LangTag   lipgloss.Style
	File      lipgloss.Style
	Highlight lipgloss.Style
	Dim       lipgloss.Style
}

// DefaultStyles returns the colored style set, or a plain set when
// color is disabled.
func DefaultStyles(colored bool) Styles {
	if !colored {
		return Styles{}
	}
	return Styles{
		Header:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("81")),
		Section:   lipgloss.NewStyle().Bold(true),
		LangTag:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
		File:      lipgloss.NewStyle().Foreground(lipgloss.Color("75")),
		Highlight: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		Dim:       lipgloss.NewStyle().Faint(true),
	}
}

// Renderer writes scan reports to a writer.
type Renderer struct {
	w      io.Writer
	styles Styles
}

// NewRenderer creates a renderer.
func NewRenderer(w io.Writer, styles Styles) *Renderer {
	return &Renderer{w: w, styles: styles}
}

func (r *Renderer) rule(width int) {
	fmt.Fprintln(r.w, strings.Repeat("=", width))
}

func (r *Renderer) header(text string) {
	fmt.Fprintln(r.w)
	r.rule(70)
	fmt.Fprintln(r.w, r.styles.Header.Render(text))
	r.rule(70)
}

// ScanData is the whole-tree scan outcome prepared for rendering.
type ScanData struct {
	Languages []string
	Missing   map[string][]MissingPair
	Critical  map[string]bool // files in release-critical areas, flagged in the listing

	// Hardcode findings split into the critical buckets and the
	// capped remainder.
	Onboarding []scan.Finding
	Nutrition  []scan.Finding
	Other      []scan.Finding
}

// TotalIssues counts missing pairs and hardcode findings; nonzero
// drives the failure exit code.
func (d *ScanData) TotalIssues() int {
	n := len(d.Onboarding) + len(d.Nutrition) + len(d.Other)
	for _, pairs := range d.Missing {
		n += len(pairs)
	}
	return n
}

// RenderScan writes the whole-tree report: missing keys per language
// grouped by file, then hardcode findings with critical areas first
// and the remainder capped.
func (r *Renderer) RenderScan(d *ScanData) {
	r.header(i18n.T("report.missing.header", "MISSING TRANSLATION KEYS"))

	for _, lang := range d.Languages {
		pairs := d.Missing[lang]
		if len(pairs) == 0 {
			continue
		}
		fmt.Fprintln(r.w)
		tag := strings.ToUpper(lang)
		fmt.Fprintln(r.w, r.styles.LangTag.Render(i18n.Tf("report.missing.lang", "[%s] Missing %d keys:", tag, len(pairs))))
		for _, g := range GroupByFile(pairs) {
			prefix := "    "
			if d.Critical[g.File] {
				prefix = ">>> "
			}
			fmt.Fprintf(r.w, "%s%s:\n", prefix, r.styles.File.Render(g.File))
			for _, k := range g.Keys {
				fmt.Fprintf(r.w, "      - %s\n", k)
			}
		}
	}

	r.header(i18n.T("report.hardcoded.header", "POTENTIAL HARDCODED STRINGS"))

	r.findingSection(d.Onboarding, r.styles.Highlight.Render("--- ONBOARDING (CRITICAL) ---"))
	r.findingSection(d.Nutrition, r.styles.Highlight.Render("--- NUTRITION / DIETS (CRITICAL) ---"))

	if len(d.Other) > otherFindingsCap {
		fmt.Fprintln(r.w)
		fmt.Fprintln(r.w, r.styles.Section.Render(
			i18n.Tf("report.hardcoded.showing", "--- OTHER FILES (%d issues found, showing first %d) ---",
				len(d.Other), otherFindingsCap)))
		for _, f := range d.Other[:otherFindingsCap] {
			r.finding(f)
		}
		fmt.Fprintln(r.w, r.styles.Dim.Render(
			i18n.Tf("report.hardcoded.more", "... and %d more", len(d.Other)-otherFindingsCap)))
	} else {
		r.findingSection(d.Other, r.styles.Section.Render("--- OTHER FILES ---"))
	}
}

func (r *Renderer) findingSection(findings []scan.Finding, title string) {
	if len(findings) == 0 {
		return
	}
	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, title)
	for _, f := range findings {
		r.finding(f)
	}
}

func (r *Renderer) finding(f scan.Finding) {
	fmt.Fprintf(r.w, "%s:%d [%s] %q\n", r.styles.File.Render(f.File), f.Line, f.Label(), f.Text)
}

// AuditData is the targeted area scan outcome prepared for rendering.
type AuditData struct {
	Languages []string
	Order     []string // area render order; "Other" appended when used

	AreaFiles map[string]int // scanned files per area
	AreaKeys  map[string]int // unique keys per area

	Missing  map[string]map[string][]MissingPair // area -> lang -> pairs
	Findings map[string][]scan.Finding           // area -> findings
}

// TotalIssues counts all missing pairs and findings across areas.
func (d *AuditData) TotalIssues() int {
	var n int
	for _, byLang := range d.Missing {
		for _, pairs := range byLang {
			n += len(pairs)
		}
	}
	for _, fs := range d.Findings {
		n += len(fs)
	}
	return n
}

// langTotals sums missing pairs per language across areas.
func (d *AuditData) langTotals() map[string]int {
	totals := make(map[string]int, len(d.Languages))
	for _, byLang := range d.Missing {
		for lang, pairs := range byLang {
			totals[lang] += len(pairs)
		}
	}
	return totals
}

// RenderAudit writes the area-grouped report: per-area stats, per-area
// missing keys, combined totals, then per-area hardcode findings
// capped per area.
func (r *Renderer) RenderAudit(d *AuditData) {
	r.header(i18n.T("report.audit.header", "TRANSLATION AUDIT"))

	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, i18n.T("report.audit.files_found", "Files found per area:"))
	for _, name := range d.Order {
		if d.AreaFiles[name] == 0 && d.AreaKeys[name] == 0 {
			continue
		}
		fmt.Fprintf(r.w, "  %s\n", i18n.Tf("report.audit.area_stats", "%s: %d files, %d unique keys",
			name, d.AreaFiles[name], d.AreaKeys[name]))
	}

	r.header(i18n.T("report.missing.header", "MISSING TRANSLATION KEYS"))

	for _, name := range d.Order {
		byLang := d.Missing[name]
		if !anyMissing(byLang) {
			continue
		}

		fmt.Fprintln(r.w)
		fmt.Fprintln(r.w, r.styles.Section.Render(name))
		fmt.Fprintln(r.w, strings.Repeat("-", 70))

		for _, lang := range d.Languages {
			pairs := byLang[lang]
			if len(pairs) == 0 {
				continue
			}
			tag := strings.ToUpper(lang)
			fmt.Fprintln(r.w)
			fmt.Fprintln(r.w, r.styles.LangTag.Render(i18n.Tf("report.missing.lang", "[%s] Missing %d keys:", tag, len(pairs))))
			for _, g := range GroupByFile(pairs) {
				fmt.Fprintf(r.w, "  %s:\n", r.styles.File.Render(g.File))
				for _, k := range g.Keys {
					fmt.Fprintf(r.w, "    - %s\n", k)
				}
			}
		}
	}

	r.header(i18n.T("report.totals.header", "TOTALS"))
	totals := d.langTotals()
	for _, lang := range d.Languages {
		tag := strings.ToUpper(lang)
		fmt.Fprintln(r.w, i18n.Tf("report.missing.total", "[%s] Total missing: %d keys", tag, totals[lang]))
	}

	r.header(i18n.T("report.hardcoded.header", "POTENTIAL HARDCODED STRINGS"))

	for _, name := range d.Order {
		findings := d.Findings[name]
		if len(findings) == 0 {
			continue
		}
		fmt.Fprintln(r.w)
		fmt.Fprintf(r.w, "%s:\n", r.styles.Section.Render(name))
		shown := findings
		if len(shown) > areaFindingsCap {
			shown = shown[:areaFindingsCap]
		}
		for _, f := range shown {
			fmt.Fprint(r.w, "  ")
			r.finding(f)
		}
		if len(findings) > areaFindingsCap {
			fmt.Fprintln(r.w, r.styles.Dim.Render(
				i18n.Tf("report.hardcoded.more", "... and %d more", len(findings)-areaFindingsCap)))
		}
	}

	r.header(i18n.T("report.done", "SCAN COMPLETE"))
}

func anyMissing(byLang map[string][]MissingPair) bool {
	for _, pairs := range byLang {
		if len(pairs) > 0 {
			return true
		}
	}
	return false
}
