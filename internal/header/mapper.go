package header

import "strings"

// MapColumns resolves each input column to a template column and reports the
// template columns that received no assignment.
//
// Resolution runs in three tiers, each tier only considering input columns
// the previous tiers left unmapped:
//
//  1. exact: the normalized input name equals a normalized template name
//  2. alias: the normalized input name is a key in the alias table
//  3. fuzzy: the normalized forms are substrings of one another, in either
//     direction, taking the first unclaimed template column in declaration
//     order
//
// Assignment is greedy and first-match-wins: each input column maps to at
// most one target and each target is claimed at most once, enforced by a
// running set of used targets. The matcher never backtracks to find a
// globally better assignment. Input columns that match nothing are left out
// of the mapping; their data is dropped downstream.
//
// The fuzzy tier's bidirectional substring test is intentionally coarse (a
// short template name can claim an unrelated input column) and the
// template-declaration-order tie-break is part of the observable contract.
func MapColumns(cols []string, templateCols []string, aliases map[string]string) (map[string]string, []string) {
	mapping := make(map[string]string, len(cols))
	used := make(map[string]bool, len(templateCols))

	// Tier 1: exact normalized match.
	for _, col := range cols {
		key := Normalize(col)
		for _, tmpl := range templateCols {
			if !used[tmpl] && key == Normalize(tmpl) {
				mapping[col] = tmpl
				used[tmpl] = true
				break
			}
		}
	}

	// Tier 2: configured alias lookup.
	for _, col := range cols {
		if _, ok := mapping[col]; ok {
			continue
		}
		target, ok := aliases[Normalize(col)]
		if ok && target != "" && !used[target] {
			mapping[col] = target
			used[target] = true
		}
	}

	// Tier 3: bidirectional substring fallback. Columns that normalize to the
	// empty key are skipped: an empty string is a substring of everything and
	// would claim the first free template column.
	for _, col := range cols {
		if _, ok := mapping[col]; ok {
			continue
		}
		key := Normalize(col)
		if key == "" {
			continue
		}
		for _, tmpl := range templateCols {
			if used[tmpl] {
				continue
			}
			tmplKey := Normalize(tmpl)
			if strings.Contains(key, tmplKey) || strings.Contains(tmplKey, key) {
				mapping[col] = tmpl
				used[tmpl] = true
				break
			}
		}
	}

	var unfilled []string
	for _, tmpl := range templateCols {
		if !used[tmpl] {
			unfilled = append(unfilled, tmpl)
		}
	}

	return mapping, unfilled
}
