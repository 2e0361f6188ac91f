package wordseg

// vocabIndex is the internal backend abstraction for prefix-indexed word
// storage. An index is mutable until freeze and read-only afterwards.
type vocabIndex interface {
	// insert stores word with its cost. Must be called before freeze.
	insert(word string, cost float64) error
	// freeze makes the index immutable and ready for matching.
	freeze()
	// matchesAt visits, for every stored word that is a prefix of
	// text[from:], the byte offset just past the word and its cost. The
	// walk is bounded by the longest stored word, never by index size.
	matchesAt(text string, from int, visit func(end int, cost float64))
	// lookup returns the cost of an exact word.
	lookup(word string) (float64, bool)
	stats() vocabIndexStats
}

type vocabIndexStats struct {
	Backend      string
	Words        int
	MaxWordRunes int
	UsedSlots    int
	TotalSlots   int
	MaxStateID   int
}

func (s vocabIndexStats) FillRatio() float64 {
	if s.TotalSlots == 0 {
		return 0
	}
	return float64(s.UsedSlots) / float64(s.TotalSlots)
}
