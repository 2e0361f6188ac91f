package wordseg

import (
	"errors"
	"fmt"
)

// ErrEmptyVocabulary is returned by Build when no entries were supplied and
// fallback-only mode was not requested.
var ErrEmptyVocabulary = errors.New("wordseg: empty vocabulary")

// DuplicateWordError is returned by Build when the same word is supplied
// twice with conflicting costs. Supplying a word twice with the identical
// cost is tolerated.
type DuplicateWordError struct {
	Word string
	Have float64 // cost already stored
	New  float64 // conflicting cost
}

func (e *DuplicateWordError) Error() string {
	return fmt.Sprintf("wordseg: duplicate word %q with conflicting costs %g and %g",
		e.Word, e.Have, e.New)
}

// InvalidCostModelError is returned by cost model constructors when the
// model configuration would break the totality guarantee, i.e. the unknown
// unit cost does not strictly exceed every word's per-rune cost.
type InvalidCostModelError struct {
	Reason string
}

func (e *InvalidCostModelError) Error() string {
	return "wordseg: invalid cost model: " + e.Reason
}
