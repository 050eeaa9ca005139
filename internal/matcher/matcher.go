// Package matcher resolves free-text geocoded addresses to campus buildings.
package matcher

import (
	"campus-compliments/internal/models"
)

// Candidate is a building together with the points it accumulated for a query.
type Candidate struct {
	Building  models.Building `json:"building"`
	Score     int             `json:"score"`
	Breakdown map[string]int  `json:"breakdown,omitempty"`
}

// Matcher scores buildings against addresses with an ordered strategy list.
// The zero value is not usable; use New or Default.
type Matcher struct {
	strategies []Strategy
	threshold  int
}

// New creates a matcher from the given strategies and acceptance threshold.
func New(strategies []Strategy, threshold int) *Matcher {
	return &Matcher{strategies: strategies, threshold: threshold}
}

// Default is the matcher with the standard scoring table.
var Default = New(DefaultStrategies, AcceptanceThreshold)

// Threshold returns the minimum accepted score.
func (m *Matcher) Threshold() int {
	return m.threshold
}

// Score sums every strategy for one entry.
func (m *Matcher) Score(e Entry, q Query) int {
	total := 0
	for _, s := range m.strategies {
		total += s.Score(e, q)
	}
	return total
}

// Explain scores one entry and records each non-zero strategy contribution.
func (m *Matcher) Explain(e Entry, q Query) Candidate {
	c := Candidate{Building: e.Building, Breakdown: make(map[string]int)}
	for _, s := range m.strategies {
		if pts := s.Score(e, q); pts > 0 {
			c.Breakdown[s.Name] = pts
			c.Score += pts
		}
	}
	return c
}

// Best returns the highest scoring entry, or false if none reaches the
// threshold. Ties go to the entry that comes first.
func (m *Matcher) Best(address string, entries []Entry) (models.Building, bool) {
	q := NewQuery(address)
	if q.Text == "" || len(entries) == 0 {
		return models.Building{}, false
	}

	best := -1
	bestScore := 0
	for i := range entries {
		score := m.Score(entries[i], q)
		if score > bestScore {
			best, bestScore = i, score
		}
	}

	if best < 0 || bestScore < m.threshold {
		return models.Building{}, false
	}
	return entries[best].Building, true
}

// FindMatch returns the building the address most likely refers to using the
// default scoring table. It never fails; no match is reported as false.
func FindMatch(address string, buildings []models.Building) (models.Building, bool) {
	if len(buildings) == 0 {
		return models.Building{}, false
	}
	entries := make([]Entry, len(buildings))
	for i, b := range buildings {
		entries[i] = NewEntry(b)
	}
	return Default.Best(address, entries)
}
