package inject

import (
	"fmt"
	"sort"

	"whitecore/core/gamedata"
)

// Check statuses, worst last.
const (
	CheckPass    = "PASS"
	CheckWarning = "WARNING"
	CheckFail    = "FAIL"
)

// ItemCheck compares one mod item with the state of the host tables.
type ItemCheck struct {
	ID              string   `json:"id"`
	Name            string   `json:"name,omitempty"`
	Enabled         bool     `json:"enabled"`
	Clone           string   `json:"clone,omitempty"`
	InTemplates     bool     `json:"in_templates"`
	InHandbook      bool     `json:"in_handbook"`
	HandbookEntries int      `json:"handbook_entries"`
	MissingLocales  []string `json:"missing_locales,omitempty"`
	Mismatches      []string `json:"mismatches,omitempty"`
	Status          string   `json:"status"`
}

// VerifySummary counts checks by status.
type VerifySummary struct {
	Total    int `json:"total"`
	Pass     int `json:"pass"`
	Warnings int `json:"warnings"`
	Failures int `json:"failures"`
}

// Verification is the result of Verify.
type Verification struct {
	Items   []ItemCheck   `json:"items"`
	Summary VerifySummary `json:"summary"`
}

// Verify checks every mod item against the tables after a pass. An enabled item must
// be registered once in templates and once in the handbook with display strings in
// every language. A disabled or undecodable item must be absent.
func Verify(tables *gamedata.Tables, mod *ModDatabase) *Verification {
	ids := make([]string, 0, len(mod.Items)+len(mod.DecodeErrors))
	for id := range mod.IDs() {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	v := &Verification{Items: make([]ItemCheck, 0, len(ids))}
	for _, id := range ids {
		check := VerifyItem(tables, mod, id)
		v.Items = append(v.Items, check)
		v.Summary.Total++
		switch check.Status {
		case CheckPass:
			v.Summary.Pass++
		case CheckWarning:
			v.Summary.Warnings++
		case CheckFail:
			v.Summary.Failures++
		}
	}
	return v
}

// VerifyItem checks a single mod item.
func VerifyItem(tables *gamedata.Tables, mod *ModDatabase, id string) ItemCheck {
	check := ItemCheck{ID: id, Status: CheckPass}

	tpl, inTemplates := tables.Template(id)
	check.InTemplates = inTemplates
	entries := tables.HandbookEntries(id)
	check.HandbookEntries = len(entries)
	check.InHandbook = len(entries) > 0

	def, ok := mod.Items[id]
	if !ok {
		if _, broken := mod.DecodeErrors[id]; broken {
			check.Mismatches = append(check.Mismatches, "definition could not be decoded")
		} else {
			check.Mismatches = append(check.Mismatches, "not defined by the mod")
		}
		check.Status = CheckFail
		return check
	}

	check.Enabled = def.Enable
	check.Clone = def.Clone
	if def.Locales != nil {
		check.Name = def.Locales.Name
	}

	if !def.Enable {
		if inTemplates || check.InHandbook {
			check.Mismatches = append(check.Mismatches, "disabled but registered")
			check.Status = CheckFail
		}
		return check
	}

	if _, ok := tables.Template(def.Clone); !ok {
		check.Mismatches = append(check.Mismatches, fmt.Sprintf("clone source %s not found", def.Clone))
	}
	if !inTemplates {
		check.Mismatches = append(check.Mismatches, "missing from templates")
	} else if tpl.ID() != id {
		check.Mismatches = append(check.Mismatches, fmt.Sprintf("template _id is %q", tpl.ID()))
	}
	if !check.InHandbook {
		check.Mismatches = append(check.Mismatches, "missing from handbook")
	}
	if len(check.Mismatches) > 0 {
		check.Status = CheckFail
	}

	if len(entries) > 1 {
		check.Mismatches = append(check.Mismatches, fmt.Sprintf("%d handbook entries", len(entries)))
		raise(&check, CheckWarning)
	}
	for _, lang := range tables.Languages() {
		if _, ok := tables.Locales.Global[lang][id+" Name"]; !ok {
			check.MissingLocales = append(check.MissingLocales, lang)
		}
	}
	if len(check.MissingLocales) > 0 {
		raise(&check, CheckWarning)
	}

	return check
}

func raise(check *ItemCheck, status string) {
	if check.Status == CheckPass {
		check.Status = status
	}
}
