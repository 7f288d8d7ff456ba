package query

import "go.seanlatimer.dev/amhub/internal/catalog"

// Memo caches Filter results over one fixed preset slice, keyed on the query.
// Results are shared between calls and must be treated as read-only.
type Memo struct {
	presets []catalog.Preset
	results map[Query][]catalog.Preset
	limit   int
}

const defaultMemoLimit = 64

func NewMemo(presets []catalog.Preset) *Memo {
	return &Memo{
		presets: presets,
		results: make(map[Query][]catalog.Preset),
		limit:   defaultMemoLimit,
	}
}

func (m *Memo) Filter(q Query) []catalog.Preset {
	if q.Category == "" {
		q.Category = All
	}
	if cached, ok := m.results[q]; ok {
		return cached
	}
	if len(m.results) >= m.limit {
		m.results = make(map[Query][]catalog.Preset)
	}
	result := q.Apply(m.presets)
	m.results[q] = result
	return result
}

func (m *Memo) Len() int {
	return len(m.presets)
}
