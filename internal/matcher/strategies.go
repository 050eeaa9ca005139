package matcher

import (
	"strings"

	"campus-compliments/internal/models"
)

// Point values awarded by the default strategies. They are empirically tuned
// and changing any of them silently changes which building a pin resolves to.
const (
	StreetPoints      = 30
	NamePoints        = 25
	FullAddressPoints = 20
	TokenPoints       = 5
	VariationPoints   = 15
	CodePoints        = 10

	// AcceptanceThreshold is the minimum score a building needs to be returned.
	AcceptanceThreshold = 10

	minTokenLength = 3
)

// Entry is a catalog building with its comparison fields pre-normalized.
type Entry struct {
	Building    models.Building
	Street      string
	Name        string
	FullAddress string
	Tokens      []string
}

// NewEntry normalizes every field of b that the strategies compare against.
func NewEntry(b models.Building) Entry {
	e := Entry{
		Building:    b,
		Street:      Normalize(b.Address),
		Name:        Normalize(b.BuildingName),
		FullAddress: Normalize(strings.Join([]string{b.Address, b.City, b.State, b.ZipCode}, " ")),
	}

	seen := make(map[string]struct{})
	for _, tok := range strings.Fields(e.Street + " " + e.Name) {
		if _, ok := seen[tok]; ok {
			continue
		}
		seen[tok] = struct{}{}
		e.Tokens = append(e.Tokens, tok)
	}

	return e
}

// Query is a normalized search address.
type Query struct {
	Text   string
	tokens map[string]struct{}
}

// NewQuery normalizes a raw address for scoring.
func NewQuery(address string) Query {
	text := Normalize(address)
	return Query{Text: text, tokens: tokenSet(text)}
}

// HasToken reports whether tok is one of the query's words.
func (q Query) HasToken(tok string) bool {
	_, ok := q.tokens[tok]
	return ok
}

// Strategy awards points for one kind of evidence that a query refers to a building.
type Strategy struct {
	Name  string
	Score func(e Entry, q Query) int
}

// DefaultStrategies is the ordered scoring table. A building's score is the sum
// over all of them; none short-circuits another.
var DefaultStrategies = []Strategy{
	{Name: "street", Score: StreetContainment},
	{Name: "name", Score: NameContainment},
	{Name: "full_address", Score: FullAddressContainment},
	{Name: "token_overlap", Score: TokenOverlap},
	{Name: "variation", Score: VariationMatch},
	{Name: "code", Score: CodeContainment},
}

func containment(field string, q Query, points int) int {
	if field != "" && strings.Contains(q.Text, field) {
		return points
	}
	return 0
}

// StreetContainment scores a query that contains the building's street address.
func StreetContainment(e Entry, q Query) int {
	return containment(e.Street, q, StreetPoints)
}

// NameContainment scores a query that contains the building's name.
func NameContainment(e Entry, q Query) int {
	return containment(e.Name, q, NamePoints)
}

// FullAddressContainment scores a query that contains street, city, state and zip in order.
func FullAddressContainment(e Entry, q Query) int {
	return containment(e.FullAddress, q, FullAddressPoints)
}

// TokenOverlap scores every distinct street or name word longer than two runes
// that also appears as a word of the query.
func TokenOverlap(e Entry, q Query) int {
	matches := 0
	for _, tok := range e.Tokens {
		if len([]rune(tok)) >= minTokenLength && q.HasToken(tok) {
			matches++
		}
	}
	return matches * TokenPoints
}

// VariationMatch scores a query that contains the street with its first
// abbreviation expanded, or the name without generic building words.
func VariationMatch(e Entry, q Query) int {
	if HasCommonVariation(e, q) {
		return VariationPoints
	}
	return 0
}

// CodeContainment scores a query that contains the raw building code.
func CodeContainment(e Entry, q Query) int {
	code := e.Building.BuildingCode
	if code != "" && strings.Contains(q.Text, code) {
		return CodePoints
	}
	return 0
}

type abbreviation struct {
	short, long string
}

// streetAbbreviations is scanned in order; only the first entry found in the
// street is expanded.
var streetAbbreviations = []abbreviation{
	{"n ", "north "},
	{"s ", "south "},
	{"e ", "east "},
	{"w ", "west "},
	{"st ", "street "},
	{"ave ", "avenue "},
	{"av ", "avenue "},
	{"blvd ", "boulevard "},
	{"dr ", "drive "},
	{"ln ", "lane "},
	{"rd ", "road "},
}

var genericNameWords = map[string]struct{}{
	"hall":       {},
	"building":   {},
	"center":     {},
	"centre":     {},
	"lab":        {},
	"laboratory": {},
	"annex":      {},
}

// HasCommonVariation implements the abbreviation and generic-word checks.
func HasCommonVariation(e Entry, q Query) bool {
	if expanded, ok := ExpandStreet(e.Street); ok && strings.Contains(q.Text, expanded) {
		return true
	}

	core := StripGenericWords(e.Name)
	return core != "" && strings.Contains(q.Text, core)
}

// ExpandStreet replaces the first occurrence of the first abbreviation found in
// a normalized street. It reports false when no abbreviation occurs.
func ExpandStreet(street string) (string, bool) {
	for _, a := range streetAbbreviations {
		if strings.Contains(street, a.short) {
			return strings.Replace(street, a.short, a.long, 1), true
		}
	}
	return street, false
}

// StripGenericWords drops whole words such as "hall" or "annex" from a normalized name.
func StripGenericWords(name string) string {
	words := strings.Fields(name)
	kept := make([]string, 0, len(words))
	for _, w := range words {
		if _, generic := genericNameWords[w]; !generic {
			kept = append(kept, w)
		}
	}
	return strings.Join(kept, " ")
}
