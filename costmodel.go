package wordseg

import (
	"fmt"
	"math"
	"sort"
	"unicode/utf8"
)

// CostModel assigns segmentation costs. WordCost prices a dictionary word
// (lower is better); UnknownUnitCost is charged per input rune that no
// dictionary word covers.
//
// The totality guarantee hinges on UnknownUnitCost strictly exceeding every
// word's per-rune cost: covering a span with a real word is then always at
// least as cheap as spelling it out as unknowns, and the all-unknown
// segmentation bounds the search from above. Constructors enforce this and
// fail with InvalidCostModelError otherwise.
type CostModel interface {
	WordCost(word string) float64
	UnknownUnitCost() float64
}

func validateUnknownCost(unknown, maxPerRune float64) error {
	if math.IsNaN(unknown) || math.IsInf(unknown, 0) {
		return &InvalidCostModelError{Reason: "unknown unit cost must be finite"}
	}
	if unknown <= maxPerRune {
		return &InvalidCostModelError{
			Reason: fmt.Sprintf("unknown unit cost %g must exceed maximum per-rune word cost %g",
				unknown, maxPerRune),
		}
	}
	return nil
}

// --- Uniform ---------------------------------------------------------------

// UniformModel charges the same cost for every dictionary word, so the
// cheapest segmentation is the one with the fewest tokens.
type UniformModel struct {
	word    float64
	unknown float64
}

// NewUniformModel returns a uniform cost model. unknownUnitCost must be
// strictly greater than wordCost (a one-rune word is the per-rune worst
// case).
func NewUniformModel(wordCost, unknownUnitCost float64) (*UniformModel, error) {
	if wordCost < 0 || math.IsNaN(wordCost) {
		return nil, &InvalidCostModelError{Reason: fmt.Sprintf("negative word cost %g", wordCost)}
	}
	if err := validateUnknownCost(unknownUnitCost, wordCost); err != nil {
		return nil, err
	}
	return &UniformModel{word: wordCost, unknown: unknownUnitCost}, nil
}

func (m *UniformModel) WordCost(string) float64  { return m.word }
func (m *UniformModel) UnknownUnitCost() float64 { return m.unknown }

// --- Zipf rank -------------------------------------------------------------

// ZipfModel derives word costs from rank in a frequency-ordered word list:
//
//	cost(word at rank i) = ln((i+1) · ln(N))    (clamped at 0)
//
// with N the list length. Earlier words are cheaper. The unknown unit cost
// is the maximum per-rune word cost plus ln(N+1).
type ZipfModel struct {
	costs   map[string]float64
	ranked  []string
	unknown float64
}

// NewZipfModel builds a Zipf rank model from a word list ordered most
// frequent first. At least two words are required. A repeated word keeps its
// best (earliest) rank.
func NewZipfModel(rankedWords []string) (*ZipfModel, error) {
	n := len(rankedWords)
	if n < 2 {
		return nil, &InvalidCostModelError{Reason: "zipf model needs at least two ranked words"}
	}
	logN := math.Log(float64(n))
	costs := make(map[string]float64, n)
	ranked := make([]string, 0, n)
	maxPerRune := 0.0
	for i, word := range rankedWords {
		if word == "" {
			return nil, &InvalidCostModelError{Reason: fmt.Sprintf("empty word at rank %d", i)}
		}
		if _, seen := costs[word]; seen {
			continue
		}
		cost := math.Log(float64(i+1) * logN)
		if cost < 0 {
			cost = 0
		}
		costs[word] = cost
		ranked = append(ranked, word)
		if perRune := cost / float64(utf8.RuneCountInString(word)); perRune > maxPerRune {
			maxPerRune = perRune
		}
	}
	m := &ZipfModel{
		costs:   costs,
		ranked:  ranked,
		unknown: maxPerRune + math.Log(float64(n+1)),
	}
	if err := validateUnknownCost(m.unknown, maxPerRune); err != nil {
		return nil, err
	}
	return m, nil
}

// WordCost returns the rank cost, or the unknown unit cost for a word that
// was not in the ranked list.
func (m *ZipfModel) WordCost(word string) float64 {
	if cost, ok := m.costs[word]; ok {
		return cost
	}
	return m.unknown
}

func (m *ZipfModel) UnknownUnitCost() float64 { return m.unknown }

// Entries returns the model's words as vocabulary entries, in rank order.
func (m *ZipfModel) Entries() []Entry {
	entries := make([]Entry, 0, len(m.ranked))
	for _, word := range m.ranked {
		entries = append(entries, Entry{Word: word, Cost: m.costs[word]})
	}
	return entries
}

// --- Frequency -------------------------------------------------------------

// FrequencyModel prices a word by its negative log probability,
// cost = -ln(count/total), from observed corpus counts.
type FrequencyModel struct {
	costs   map[string]float64
	unknown float64
}

// NewFrequencyModel builds a frequency model from per-word counts. All
// counts must be positive.
func NewFrequencyModel(counts map[string]float64) (*FrequencyModel, error) {
	if len(counts) == 0 {
		return nil, &InvalidCostModelError{Reason: "frequency model needs at least one count"}
	}
	total := 0.0
	for word, count := range counts {
		if word == "" {
			return nil, &InvalidCostModelError{Reason: "empty word in counts"}
		}
		if count <= 0 || math.IsNaN(count) || math.IsInf(count, 0) {
			return nil, &InvalidCostModelError{Reason: fmt.Sprintf("non-positive count %g for %q", count, word)}
		}
		total += count
	}
	costs := make(map[string]float64, len(counts))
	maxPerRune := 0.0
	for word, count := range counts {
		cost := math.Log(total / count)
		costs[word] = cost
		if perRune := cost / float64(utf8.RuneCountInString(word)); perRune > maxPerRune {
			maxPerRune = perRune
		}
	}
	m := &FrequencyModel{
		costs:   costs,
		unknown: maxPerRune + math.Log(total+1),
	}
	if err := validateUnknownCost(m.unknown, maxPerRune); err != nil {
		return nil, err
	}
	return m, nil
}

// WordCost returns -ln(p(word)), or the unknown unit cost for an unseen word.
func (m *FrequencyModel) WordCost(word string) float64 {
	if cost, ok := m.costs[word]; ok {
		return cost
	}
	return m.unknown
}

func (m *FrequencyModel) UnknownUnitCost() float64 { return m.unknown }

// Entries returns the model's words as vocabulary entries, sorted by word
// for deterministic construction.
func (m *FrequencyModel) Entries() []Entry {
	words := make([]string, 0, len(m.costs))
	for word := range m.costs {
		words = append(words, word)
	}
	sort.Strings(words)
	entries := make([]Entry, 0, len(words))
	for _, word := range words {
		entries = append(entries, Entry{Word: word, Cost: m.costs[word]})
	}
	return entries
}

// --- Length ----------------------------------------------------------------

// LengthModel charges base/len(word), rewarding longer matches.
type LengthModel struct {
	base    float64
	unknown float64
}

// NewLengthModel returns a length-weighted model. unknownUnitCost must
// strictly exceed base (the per-rune cost of a one-rune word).
func NewLengthModel(base, unknownUnitCost float64) (*LengthModel, error) {
	if base <= 0 || math.IsNaN(base) {
		return nil, &InvalidCostModelError{Reason: fmt.Sprintf("non-positive base cost %g", base)}
	}
	if err := validateUnknownCost(unknownUnitCost, base); err != nil {
		return nil, err
	}
	return &LengthModel{base: base, unknown: unknownUnitCost}, nil
}

func (m *LengthModel) WordCost(word string) float64 {
	n := utf8.RuneCountInString(word)
	if n == 0 {
		return m.base
	}
	return m.base / float64(n)
}

func (m *LengthModel) UnknownUnitCost() float64 { return m.unknown }

// Entries prices a word list with model m, ready for Build.
func Entries(words []string, m CostModel) []Entry {
	entries := make([]Entry, 0, len(words))
	for _, word := range words {
		entries = append(entries, Entry{Word: word, Cost: m.WordCost(word)})
	}
	return entries
}
