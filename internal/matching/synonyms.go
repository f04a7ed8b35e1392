// Package matching scores a normalized profile against a free-text job
// description using deterministic, table-driven heuristics: a synonym-aware
// skill overlap, recency-weighted experience relevance, keyword coverage, and
// education relevance, combined by configured weights.
package matching

import (
	"strings"

	"github.com/jonathan/profile-analyzer/internal/parsing"
)

// SynonymTable resolves alternate spellings of the same skill to one
// canonical group. Resolution is symmetric within a group and only ever
// through explicit table entries, never inferred.
type SynonymTable struct {
	group map[string]string // lowercased term -> group key
}

// NewSynonymTable builds a table from canonical-term -> variants entries.
func NewSynonymTable(entries map[string][]string) *SynonymTable {
	group := make(map[string]string, len(entries)*3)
	for canonical, variants := range entries {
		key := strings.ToLower(strings.TrimSpace(canonical))
		if key == "" {
			continue
		}
		group[key] = key
		for _, v := range variants {
			if v = strings.ToLower(strings.TrimSpace(v)); v != "" {
				group[v] = key
			}
		}
	}
	return &SynonymTable{group: group}
}

// Canonical returns the group key for a term, or the lowercased term itself
// when it has no table entry.
func (t *SynonymTable) Canonical(term string) string {
	key := strings.ToLower(strings.TrimSpace(term))
	if g, ok := t.group[key]; ok {
		return g
	}
	return key
}

// Match reports whether two skill names refer to the same skill: equal
// case-insensitively, linked by the table, or one containing the other as a
// whole word ("AWS Lambda" covers "aws").
func (t *SynonymTable) Match(a, b string) bool {
	ca, cb := t.Canonical(a), t.Canonical(b)
	if ca == cb {
		return true
	}
	return parsing.ContainsTerm(ca, cb) || parsing.ContainsTerm(cb, ca)
}

// AppearsIn reports whether the term, or any registered synonym of it,
// occurs in the text as a whole word or phrase.
func (t *SynonymTable) AppearsIn(text, term string) bool {
	if parsing.ContainsTerm(text, term) {
		return true
	}
	key := t.Canonical(term)
	for variant, group := range t.group {
		if group == key && parsing.ContainsTerm(text, variant) {
			return true
		}
	}
	return false
}
