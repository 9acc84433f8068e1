package report

import (
	"github.com/eatsense-app/i18nscan/internal/area"
	"github.com/eatsense-app/i18nscan/internal/locale"
	"github.com/eatsense-app/i18nscan/internal/scan"
)

// BuildScan assembles the whole-tree report data: missing keys per
// language and hardcode findings bucketed by the broad area config
// (Onboarding and Nutrition shown in full, everything else capped by
// the renderer).
func BuildScan(res *scan.Result, locales map[string]*locale.Dict, languages []string, cls *area.Classifier) *ScanData {
	d := &ScanData{
		Languages: languages,
		Missing:   Missing(locales, languages, res.Keys.Refs()),
		Critical:  make(map[string]bool),
	}

	for _, ref := range res.Keys.Refs() {
		for _, name := range cls.ClassifyFile(ref.File) {
			if name == "Onboarding" || name == "Nutrition" {
				d.Critical[ref.File] = true
			}
		}
	}

	for _, f := range res.Findings {
		areas := cls.ClassifyFile(f.File)
		switch {
		case contains(areas, "Onboarding"):
			d.Onboarding = append(d.Onboarding, f)
		case contains(areas, "Nutrition"):
			d.Nutrition = append(d.Nutrition, f)
		default:
			d.Other = append(d.Other, f)
		}
	}

	return d
}

// BuildAudit assembles the area-grouped report data. A (key, file)
// pair belongs to every area that claims the file plus every area
// whose key prefixes match the key; pairs nothing claims go to Other.
// Findings are attributed by file only.
func BuildAudit(res *scan.Result, locales map[string]*locale.Dict, languages []string, cls *area.Classifier) *AuditData {
	d := &AuditData{
		Languages: languages,
		Order:     cls.Order(),
		AreaFiles: make(map[string]int),
		AreaKeys:  make(map[string]int),
		Missing:   make(map[string]map[string][]MissingPair),
		Findings:  make(map[string][]scan.Finding),
	}

	areaRefs := make(map[string][]scan.KeyRef)
	areaFileSet := make(map[string]map[string]bool)
	areaKeySet := make(map[string]map[string]bool)
	usedOther := false

	for _, ref := range res.Keys.Refs() {
		names := union(cls.ClassifyFile(ref.File), cls.ClassifyKey(ref.Key))
		if len(names) == 0 {
			names = []string{area.Other}
			usedOther = true
		}
		for _, name := range names {
			areaRefs[name] = append(areaRefs[name], ref)
			if areaFileSet[name] == nil {
				areaFileSet[name] = make(map[string]bool)
				areaKeySet[name] = make(map[string]bool)
			}
			areaFileSet[name][ref.File] = true
			areaKeySet[name][ref.Key] = true
		}
	}

	for _, f := range res.Findings {
		names := cls.ClassifyFile(f.File)
		if len(names) == 0 {
			names = []string{area.Other}
			usedOther = true
		}
		for _, name := range names {
			d.Findings[name] = append(d.Findings[name], f)
		}
	}

	if usedOther {
		d.Order = append(d.Order, area.Other)
	}

	for name, refs := range areaRefs {
		d.Missing[name] = Missing(locales, languages, refs)
		d.AreaFiles[name] = len(areaFileSet[name])
		d.AreaKeys[name] = len(areaKeySet[name])
	}

	return d
}

func contains(names []string, want string) bool {
	for _, n := range names {
		if n == want {
			return true
		}
	}
	return false
}

// union merges two name lists preserving first-seen order.
func union(a, b []string) []string {
	seen := make(map[string]bool, len(a)+len(b))
	var out []string
	for _, lists := range [][]string{a, b} {
		for _, n := range lists {
			if !seen[n] {
				seen[n] = true
				out = append(out, n)
			}
		}
	}
	return out
}
