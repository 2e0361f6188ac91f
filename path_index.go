package wordseg

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/derekparker/trie"
)

// pathIndex is the alternate vocabulary backend on top of
// github.com/derekparker/trie. It is rune-agnostic (no BMP restriction) and
// trades the frozen double arrays for a pointer trie: matching probes each
// prefix length and prunes the walk with HasKeysWithPrefix.
type pathIndex struct {
	frozen       bool
	fold         bool
	t            *trie.Trie
	words        int
	maxWordRunes int
}

func newPathIndex(fold bool) *pathIndex {
	return &pathIndex{
		fold: fold,
		t:    trie.New(),
	}
}

func (idx *pathIndex) key(word string) string {
	if !idx.fold {
		return word
	}
	var b strings.Builder
	b.Grow(len(word))
	for _, r := range word {
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

func (idx *pathIndex) insert(word string, cost float64) error {
	assert(!idx.frozen, "insert into frozen index")
	key := idx.key(word)
	if node, ok := idx.t.Find(key); ok {
		if have := node.Meta().(float64); have != cost {
			return &DuplicateWordError{Word: word, Have: have, New: cost}
		}
		return nil
	}
	idx.t.Add(key, cost)
	idx.words++
	if rc := utf8.RuneCountInString(word); rc > idx.maxWordRunes {
		idx.maxWordRunes = rc
	}
	return nil
}

func (idx *pathIndex) freeze() {
	idx.frozen = true
}

func (idx *pathIndex) matchesAt(text string, from int, visit func(end int, cost float64)) {
	assert(idx.frozen, "match against unfrozen index")
	var prefix strings.Builder
	steps := 0
	for i := from; i < len(text); {
		r, sz := utf8.DecodeRuneInString(text[i:])
		steps++
		if steps > idx.maxWordRunes {
			return
		}
		if idx.fold {
			r = unicode.ToLower(r)
		}
		prefix.WriteRune(r)
		i += sz
		p := prefix.String()
		if !idx.t.HasKeysWithPrefix(p) {
			return
		}
		if node, ok := idx.t.Find(p); ok {
			visit(i, node.Meta().(float64))
		}
	}
}

func (idx *pathIndex) lookup(word string) (float64, bool) {
	node, ok := idx.t.Find(idx.key(word))
	if !ok {
		return 0, false
	}
	return node.Meta().(float64), true
}

func (idx *pathIndex) stats() vocabIndexStats {
	return vocabIndexStats{
		Backend:      "path",
		Words:        idx.words,
		MaxWordRunes: idx.maxWordRunes,
	}
}
