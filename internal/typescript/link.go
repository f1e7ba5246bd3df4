package typescript

import (
	"regexp"
	"sort"

	"github.com/tordrt/schemats/internal/naming"
)

// DanglingReference is a foreign key whose target table has no entry in the
// registry.
type DanglingReference struct {
	FromTable string
	Column    string
	Table     string
}

// Link resolves the foreign-key references of units against reg. References
// whose target table is missing stay Unresolved and are returned, sorted by
// source table then column. Units that are already linked are left as is.
func Link(units []*Unit, reg Registry) []DanglingReference {
	var dangling []DanglingReference
	for _, u := range units {
		for i := range u.ForeignKeys {
			fk := &u.ForeignKeys[i]
			ref, ok := fk.Ref.(Unresolved)
			if !ok {
				continue
			}
			if names, found := reg[ref.Table]; found {
				fk.Ref = Resolved{Type: names.Type}
				continue
			}
			dangling = append(dangling, DanglingReference{
				FromTable: u.RawName,
				Column:    fk.Column,
				Table:     ref.Table,
			})
		}
	}

	sort.SliceStable(dangling, func(i, j int) bool {
		if dangling[i].FromTable != dangling[j].FromTable {
			return dangling[i].FromTable < dangling[j].FromTable
		}
		return dangling[i].Column < dangling[j].Column
	})
	return dangling
}

var placeholderPattern = regexp.MustCompile(`null as unknown /\* ([^\n]*?) \*/`)

// AttachJoinTypes rewrites every unresolved join placeholder in rendered text
// whose table is in reg to reference that table's type. Placeholders for
// unknown tables are left unchanged.
func AttachJoinTypes(text string, reg Registry) string {
	if len(reg) == 0 {
		return text
	}
	byPlaceholder := placeholderIndex(reg)
	return placeholderPattern.ReplaceAllStringFunc(text, func(match string) string {
		names, ok := byPlaceholder[placeholderPattern.FindStringSubmatch(match)[1]]
		if !ok {
			return match
		}
		return "null as unknown as " + names.Type
	})
}

// placeholderIndex keys reg by the table text written inside placeholders.
// When two raw names flatten to the same text the first in sort order wins.
func placeholderIndex(reg Registry) map[string]naming.NameTriple {
	raws := make([]string, 0, len(reg))
	for raw := range reg {
		raws = append(raws, raw)
	}
	sort.Strings(raws)

	index := make(map[string]naming.NameTriple, len(reg))
	for _, raw := range raws {
		key := commentLine(raw)
		if _, ok := index[key]; !ok {
			index[key] = reg[raw]
		}
	}
	return index
}

// UnresolvedTables lists the distinct tables named by join placeholders still
// present in text, in order of first appearance. Names come back as written in
// the placeholder, flattened onto one line.
func UnresolvedTables(text string) []string {
	seen := make(map[string]struct{})
	var tables []string
	for _, m := range placeholderPattern.FindAllStringSubmatch(text, -1) {
		table := uncommentText(m[1])
		if _, ok := seen[table]; ok {
			continue
		}
		seen[table] = struct{}{}
		tables = append(tables, table)
	}
	return tables
}
