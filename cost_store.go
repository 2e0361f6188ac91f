package wordseg

import (
	"fmt"
	"math"
)

const initialCostStoreSlots = 2 // include slot 0 + root slot

// costStore keeps word costs directly indexed by trie state ID. States that
// do not end a word have no entry; absence is encoded as NaN so the store
// stays a single flat float64 slice.
type costStore struct {
	slots []float64 // will grow with demand
	words int
}

func newCostStore() *costStore {
	s := &costStore{
		slots: make([]float64, initialCostStoreSlots),
	}
	for i := range s.slots {
		s.slots[i] = math.NaN()
	}
	return s
}

func (s *costStore) ensure(pos int) {
	if pos < len(s.slots) {
		return
	}
	grow := pos + 1 - len(s.slots)
	old := len(s.slots)
	s.slots = append(s.slots, make([]float64, grow)...)
	for i := old; i < len(s.slots); i++ {
		s.slots[i] = math.NaN()
	}
}

// Put stores a word cost at trie state pos. Overwriting is allowed; the
// vocabulary layer resolves duplicate words before costs reach the store.
func (s *costStore) Put(pos int, cost float64) error {
	if pos <= 0 {
		return fmt.Errorf("non-positive trie state: %d", pos)
	}
	if math.IsNaN(cost) {
		return fmt.Errorf("NaN cost for trie state %d", pos)
	}
	s.ensure(pos)
	if math.IsNaN(s.slots[pos]) {
		s.words++
	}
	s.slots[pos] = cost
	return nil
}

// At returns the cost stored for a trie state, if any.
func (s *costStore) At(pos int) (float64, bool) {
	if pos <= 0 || pos >= len(s.slots) {
		return 0, false
	}
	c := s.slots[pos]
	if math.IsNaN(c) {
		return 0, false
	}
	return c, true
}

// Len returns the number of states carrying a cost.
func (s *costStore) Len() int { return s.words }
