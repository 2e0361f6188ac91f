package wordseg

import (
	"errors"
	"fmt"
	"sort"
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/wordseg/dat"
)

var errNonBMPRune = errors.New("rune outside the Basic Multilingual Plane")

type datBuildNode struct {
	state    uint32
	children map[uint16]*datBuildNode
	word     string // non-empty iff this node ends a vocabulary word
	cost     float64
}

// datIndex is the default vocabulary backend: words are inserted into a
// mutable node tree, then frozen into a double-array trie with word costs
// held in a state-indexed costStore.
type datIndex struct {
	frozen       bool
	fold         bool // lowercase words and probes before encoding
	root         *datBuildNode
	runeToDense  map[rune]uint16
	nextDenseID  uint16
	compiled     *dat.DAT
	store        *costStore
	maxWordRunes int
}

func newDATIndex(fold bool) *datIndex {
	return &datIndex{
		fold:        fold,
		root:        &datBuildNode{children: make(map[uint16]*datBuildNode)},
		runeToDense: make(map[rune]uint16),
		compiled: &dat.DAT{
			Root: 1,
		},
		store: newCostStore(),
	}
}

func (idx *datIndex) encodeRune(r rune) (uint16, error) {
	if idx.fold {
		r = unicode.ToLower(r)
	}
	if r > 0xFFFF {
		return 0, errNonBMPRune
	}
	dense, ok := idx.runeToDense[r]
	if !ok {
		if idx.nextDenseID == ^uint16(0) {
			return 0, errors.New("dense alphabet exhausted")
		}
		idx.nextDenseID++
		dense = idx.nextDenseID
		idx.runeToDense[r] = dense
		idx.compiled.Alpha.Set(uint16(r), dense)
	}
	return dense, nil
}

// denseOf is the frozen-mode rune mapping; unknown runes map to 0.
func (idx *datIndex) denseOf(r rune) uint16 {
	if idx.fold {
		r = unicode.ToLower(r)
	}
	if r > 0xFFFF {
		return 0
	}
	return idx.compiled.Dense(uint16(r))
}

func (idx *datIndex) insert(word string, cost float64) error {
	assert(!idx.frozen, "insert into frozen index")
	n := idx.root
	for _, r := range word {
		c, err := idx.encodeRune(r)
		if err != nil {
			return fmt.Errorf("word %q: %w", word, err)
		}
		child := n.children[c]
		if child == nil {
			child = &datBuildNode{children: make(map[uint16]*datBuildNode)}
			n.children[c] = child
		}
		n = child
	}
	if n.word != "" {
		if n.cost != cost {
			return &DuplicateWordError{Word: word, Have: n.cost, New: cost}
		}
		return nil
	}
	n.word = word
	n.cost = cost
	if rc := utf8.RuneCountInString(word); rc > idx.maxWordRunes {
		idx.maxWordRunes = rc
	}
	return nil
}

// freeze places the build tree into the double arrays (breadth-first, each
// family at the lowest base not colliding with occupied check slots) and
// moves word costs into the state-indexed store.
func (idx *datIndex) freeze() {
	if idx.frozen {
		return
	}
	idx.compiled.Sigma = idx.nextDenseID
	idx.compiled.Base = make([]int32, int(idx.compiled.Root)+1)
	idx.compiled.Check = make([]int32, int(idx.compiled.Root)+1)
	idx.root.state = idx.compiled.Root
	queue := []*datBuildNode{idx.root}
	for q := 0; q < len(queue); q++ {
		n := queue[q]
		if n.word != "" {
			err := idx.store.Put(int(n.state), n.cost)
			assert(err == nil, "cost store rejected a resolved state")
		}
		if len(n.children) == 0 {
			continue
		}
		labels := sortedLabels(n.children)
		base := findDATBase(idx.compiled.Check, labels)
		ensureDATIndex(idx.compiled, base+int(labels[len(labels)-1]))
		idx.compiled.Base[n.state] = int32(base)
		for _, label := range labels {
			t := base + int(label)
			ensureDATIndex(idx.compiled, t)
			child := n.children[label]
			child.state = uint32(t)
			idx.compiled.Check[t] = int32(n.state)
			queue = append(queue, child)
		}
	}
	idx.root = nil
	idx.runeToDense = nil
	idx.frozen = true
}

func (idx *datIndex) matchesAt(text string, from int, visit func(end int, cost float64)) {
	assert(idx.frozen, "match against unfrozen index")
	state := idx.compiled.Root
	steps := 0
	for i := from; i < len(text); {
		r, sz := utf8.DecodeRuneInString(text[i:])
		steps++
		if steps > idx.maxWordRunes {
			return
		}
		c := idx.denseOf(r)
		if c == 0 {
			return
		}
		next, ok := idx.compiled.Transition(state, c)
		if !ok {
			return
		}
		state = next
		i += sz
		if cost, terminal := idx.store.At(int(state)); terminal {
			visit(i, cost)
		}
	}
}

func (idx *datIndex) lookup(word string) (float64, bool) {
	assert(idx.frozen, "lookup against unfrozen index")
	state := idx.compiled.Root
	for _, r := range word {
		c := idx.denseOf(r)
		if c == 0 {
			return 0, false
		}
		next, ok := idx.compiled.Transition(state, c)
		if !ok {
			return 0, false
		}
		state = next
	}
	return idx.store.At(int(state))
}

func (idx *datIndex) stats() vocabIndexStats {
	stats := vocabIndexStats{
		Backend:      "dat",
		Words:        idx.store.Len(),
		MaxWordRunes: idx.maxWordRunes,
		TotalSlots:   idx.compiled.NStates(),
		MaxStateID:   int(idx.compiled.Root),
	}
	if stats.TotalSlots == 0 {
		return stats
	}
	used := 0
	maxID := int(idx.compiled.Root)
	for i := range idx.compiled.Check {
		if i == int(idx.compiled.Root) || idx.compiled.Check[i] != 0 {
			used++
			if i > maxID {
				maxID = i
			}
		}
	}
	stats.UsedSlots = used
	stats.MaxStateID = maxID
	return stats
}

func (idx *datIndex) String() string {
	return fmt.Sprintf("DAT(states=%d,sigma=%d,frozen=%v)",
		idx.compiled.NStates(), idx.compiled.Sigma, idx.frozen)
}

func sortedLabels(children map[uint16]*datBuildNode) []uint16 {
	labels := make([]uint16, 0, len(children))
	for label := range children {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool {
		return labels[i] < labels[j]
	})
	return labels
}

func findDATBase(check []int32, labels []uint16) int {
	for base := 1; ; base++ {
		ok := true
		for _, label := range labels {
			t := base + int(label)
			if t < len(check) && check[t] != 0 {
				ok = false
				break
			}
		}
		if ok {
			return base
		}
	}
}

func ensureDATIndex(d *dat.DAT, idx int) {
	if idx < len(d.Base) {
		return
	}
	grow := idx + 1 - len(d.Base)
	d.Base = append(d.Base, make([]int32, grow)...)
	d.Check = append(d.Check, make([]int32, grow)...)
}
