package wordseg

import (
	"fmt"
	"io"
	"math"
)

// Entry is one vocabulary word with its segmentation cost. Lower costs make
// a word more attractive to the engine. Costs must be non-negative.
type Entry struct {
	Word string
	Cost float64
}

// EntryReader yields vocabulary entries one-by-one.
// It should return io.EOF when the stream is exhausted.
type EntryReader interface {
	Next() (Entry, error)
}

// Vocabulary is an immutable, build-once word index.
//
// After Build returns, a Vocabulary never changes and may be shared
// read-only across any number of concurrent goroutines without locking.
type Vocabulary struct {
	index      vocabIndex
	size       int
	maxWordLen int // in runes
	Identifier string
}

type buildConfig struct {
	name         string
	pathIndex    bool
	fold         bool
	fallbackOnly bool
}

// Option configures vocabulary construction.
type Option func(*buildConfig)

// WithName attaches an identifier to the vocabulary, for tracing.
func WithName(name string) Option {
	return func(cfg *buildConfig) { cfg.name = name }
}

// WithPathIndex selects the pointer-trie backend (github.com/derekparker/trie)
// instead of the frozen double-array trie. Use it for vocabularies containing
// runes outside the Basic Multilingual Plane, which the default backend
// rejects.
func WithPathIndex() Option {
	return func(cfg *buildConfig) { cfg.pathIndex = true }
}

// WithCaseFolding makes matching case-insensitive: words are stored
// lowercase and input runes are lowercased during lookup. Tokens still
// reference the original input spans, casing intact.
func WithCaseFolding() Option {
	return func(cfg *buildConfig) { cfg.fold = true }
}

// WithFallbackOnly permits building from zero entries. Segmenting against
// such a vocabulary yields one Unknown token per rune.
func WithFallbackOnly() Option {
	return func(cfg *buildConfig) { cfg.fallbackOnly = true }
}

// Build constructs a Vocabulary from entries.
//
// It fails with a DuplicateWordError when the same word appears twice with
// different costs, and with ErrEmptyVocabulary when entries is empty and
// WithFallbackOnly was not given.
func Build(entries []Entry, opts ...Option) (*Vocabulary, error) {
	return BuildReader(&entryList{entries: entries}, opts...)
}

// BuildReader constructs a Vocabulary from a streaming source.
func BuildReader(reader EntryReader, opts ...Option) (*Vocabulary, error) {
	cfg := buildConfig{name: "inline"}
	for _, opt := range opts {
		opt(&cfg)
	}
	var index vocabIndex
	if cfg.pathIndex {
		index = newPathIndex(cfg.fold)
	} else {
		index = newDATIndex(cfg.fold)
	}
	vocab := &Vocabulary{
		index:      index,
		Identifier: fmt.Sprintf("vocabulary: %s", cfg.name),
	}
	for {
		entry, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if entry.Word == "" {
			return nil, fmt.Errorf("wordseg: empty word in vocabulary %q", cfg.name)
		}
		if entry.Cost < 0 || math.IsNaN(entry.Cost) || math.IsInf(entry.Cost, 0) {
			return nil, fmt.Errorf("wordseg: cost %g for word %q is not a non-negative finite number",
				entry.Cost, entry.Word)
		}
		if err := index.insert(entry.Word, entry.Cost); err != nil {
			return nil, err
		}
	}
	index.freeze()
	stats := index.stats()
	vocab.size = stats.Words
	vocab.maxWordLen = stats.MaxWordRunes
	if vocab.size == 0 && !cfg.fallbackOnly {
		return nil, ErrEmptyVocabulary
	}
	tracer().Infof("vocabulary %q index stats backend=%s words=%d used=%d total=%d fill=%.2f",
		cfg.name, stats.Backend, stats.Words, stats.UsedSlots, stats.TotalSlots, stats.FillRatio())
	return vocab, nil
}

// entryList adapts an in-memory slice to the EntryReader interface.
type entryList struct {
	entries []Entry
	index   int
}

func (r *entryList) Next() (Entry, error) {
	if r.index >= len(r.entries) {
		return Entry{}, io.EOF
	}
	entry := r.entries[r.index]
	r.index++
	return entry, nil
}

// Lookup returns the cost of an exact dictionary word.
func (v *Vocabulary) Lookup(word string) (float64, bool) {
	if v == nil || v.index == nil {
		return 0, false
	}
	return v.index.lookup(word)
}

// Len returns the number of words in the vocabulary.
func (v *Vocabulary) Len() int {
	if v == nil {
		return 0
	}
	return v.size
}

// MaxWordLength returns the length in runes of the longest stored word. It
// bounds the search window of the segmentation engine.
func (v *Vocabulary) MaxWordLength() int {
	if v == nil {
		return 0
	}
	return v.maxWordLen
}

// matchesAt enumerates every dictionary word that starts at byte position
// from in text, visiting (end byte offset, cost) pairs in increasing length
// order. The walk is bounded by MaxWordLength, not by vocabulary size.
func (v *Vocabulary) matchesAt(text string, from int, visit func(end int, cost float64)) {
	if v == nil || v.index == nil || v.size == 0 {
		return
	}
	v.index.matchesAt(text, from, visit)
}
