package query

import (
	"strings"

	"github.com/sahilm/fuzzy"
	"go.seanlatimer.dev/amhub/internal/catalog"
)

// Suggest offers up to n catalog terms (tags, then titles) that loosely
// resemble text. It backs the "no results" hint and never affects Filter.
func Suggest(presets []catalog.Preset, text string, n int) []string {
	if n <= 0 {
		return nil
	}
	vocab := vocabulary(presets)
	text = strings.TrimSpace(strings.ToLower(text))
	if text == "" {
		if len(vocab) > n {
			return vocab[:n]
		}
		return vocab
	}

	matches := fuzzy.FindFrom(text, stringSource(vocab))
	out := make([]string, 0, n)
	for _, match := range matches {
		if len(out) == n {
			break
		}
		out = append(out, vocab[match.Index])
	}
	return out
}

func vocabulary(presets []catalog.Preset) []string {
	seen := map[string]struct{}{}
	var terms []string
	add := func(term string) {
		term = strings.ToLower(strings.TrimSpace(term))
		if term == "" {
			return
		}
		if _, ok := seen[term]; ok {
			return
		}
		seen[term] = struct{}{}
		terms = append(terms, term)
	}
	for _, p := range presets {
		for _, tag := range p.Tags {
			add(tag)
		}
	}
	for _, p := range presets {
		add(p.Title)
	}
	return terms
}

type stringSource []string

func (s stringSource) Len() int {
	return len(s)
}

func (s stringSource) String(i int) string {
	return s[i]
}
