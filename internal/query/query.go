// Package query filters a catalog by search text and category.
package query

import (
	"strings"

	"go.seanlatimer.dev/amhub/internal/catalog"
)

// All matches every category.
const All = "All"

type Query struct {
	Text     string
	Category string
}

// Reset is the "clear filters" query.
func Reset() Query {
	return Query{Category: All}
}

func (q Query) IsZero() bool {
	return q.Text == "" && (q.Category == "" || q.Category == All)
}

func (q Query) Apply(presets []catalog.Preset) []catalog.Preset {
	return Filter(presets, q.Text, q.Category)
}

// Filter returns the presets that match both the text and the category, in
// their original order. The input slice is never modified.
func Filter(presets []catalog.Preset, text, category string) []catalog.Preset {
	needle := strings.ToLower(text)
	out := make([]catalog.Preset, 0, len(presets))
	for _, p := range presets {
		if matchesCategory(p, category) && matchesText(p, needle) {
			out = append(out, p)
		}
	}
	return out
}

func matchesText(p catalog.Preset, needle string) bool {
	if needle == "" {
		return true
	}
	if strings.Contains(strings.ToLower(p.Title), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Author), needle) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	return false
}

func matchesCategory(p catalog.Preset, category string) bool {
	return category == "" || category == All || p.Category == category
}

// CategorySet returns the category selector members: All, then the configured
// categories, then any present category the configuration did not name.
func CategorySet(configured, present []string) []string {
	seen := map[string]struct{}{All: {}}
	out := []string{All}
	for _, group := range [][]string{configured, present} {
		for _, c := range group {
			c = strings.TrimSpace(c)
			if c == "" {
				continue
			}
			if _, ok := seen[c]; ok {
				continue
			}
			seen[c] = struct{}{}
			out = append(out, c)
		}
	}
	return out
}
