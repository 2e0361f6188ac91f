package wordseg

import (
	"math"
	"strings"
	"unicode/utf8"
)

// TokenStatus tells whether a token matched the vocabulary.
type TokenStatus uint8

const (
	// Known marks a token that matched a vocabulary word.
	Known TokenStatus = iota
	// Unknown marks a single-rune fallback token.
	Unknown
)

func (s TokenStatus) String() string {
	if s == Known {
		return "known"
	}
	return "unknown"
}

// Token is one contiguous span [Start,End) of the segmented input.
type Token struct {
	Text   string
	Start  int // byte offset into the input
	End    int
	Status TokenStatus
}

// Segmentation is the ordered token sequence covering one input string.
// Tokens tile the input exactly: concatenating their texts in order
// reproduces the input character for character.
type Segmentation struct {
	Tokens    []Token
	TotalCost float64
}

// Strings returns the token texts in order.
func (s Segmentation) Strings() []string {
	texts := make([]string, len(s.Tokens))
	for i, tok := range s.Tokens {
		texts[i] = tok.Text
	}
	return texts
}

// CollapseUnknown merges runs of adjacent Unknown tokens into single wider
// spans. The engine itself never merges them, so that per-rune unknown
// accounting stays exact; collapsing is a presentation concern. The total
// cost is unchanged.
func (s Segmentation) CollapseUnknown() Segmentation {
	if len(s.Tokens) == 0 {
		return s
	}
	tokens := make([]Token, 0, len(s.Tokens))
	for _, tok := range s.Tokens {
		if tok.Status == Unknown && len(tokens) > 0 {
			last := &tokens[len(tokens)-1]
			if last.Status == Unknown && last.End == tok.Start {
				last.End = tok.End
				last.Text += tok.Text
				continue
			}
		}
		tokens = append(tokens, tok)
	}
	return Segmentation{Tokens: tokens, TotalCost: s.TotalCost}
}

// Segment computes the minimum-total-cost partition of input into
// vocabulary words and single-rune Unknown fallbacks.
//
// The search is a dynamic program over byte positions: best[i] is the
// cheapest segmentation of input[:i]; every vocabulary match starting at a
// finalized position proposes an extension, and the per-rune unknown
// fallback keeps every rune boundary reachable. Segmentation is therefore
// total: it never fails, for any input. Time is O(n·L) with L the longest
// vocabulary word, space O(n).
//
// Equal-cost candidates are resolved deterministically: fewer tokens win,
// and on a full tie the later predecessor wins, so earlier matches are as
// long as possible ("catsanddog" yields "cats and dog", not "cat sand dog").
//
// Segment holds no state between calls; concurrent calls sharing one
// Vocabulary need no locking.
func Segment(input string, vocab *Vocabulary, model CostModel) Segmentation {
	n := len(input)
	if n == 0 {
		return Segmentation{}
	}
	unknown := model.UnknownUnitCost()
	best := make([]float64, n+1) // cost and backpointers, parallel by position
	toks := make([]int32, n+1)
	pred := make([]int32, n+1)
	matched := make([]bool, n+1)
	for i := 1; i <= n; i++ {
		best[i] = math.Inf(1)
	}
	relax := func(end, from int, cost float64, known bool) {
		if cost > best[end] {
			return
		}
		if cost == best[end] && toks[from]+1 > toks[end] {
			return
		}
		best[end] = cost
		toks[end] = toks[from] + 1
		pred[end] = int32(from)
		matched[end] = known
	}
	for i := 0; i < n; i++ {
		if math.IsInf(best[i], 1) {
			continue // not a reachable rune boundary
		}
		_, sz := utf8.DecodeRuneInString(input[i:])
		relax(i+sz, i, best[i]+unknown, false)
		vocab.matchesAt(input, i, func(end int, cost float64) {
			relax(end, i, best[i]+cost, true)
		})
	}
	tokens := make([]Token, toks[n])
	for end, k := n, len(tokens)-1; end > 0; k-- {
		start := int(pred[end])
		status := Unknown
		if matched[end] {
			status = Known
		}
		tokens[k] = Token{Text: input[start:end], Start: start, End: end, Status: status}
		end = start
	}
	return Segmentation{Tokens: tokens, TotalCost: best[n]}
}

// SegmentString segments input and joins the token texts with spaces.
// Example:
//
//	"rustisgreat" => "rust is great".
func SegmentString(input string, vocab *Vocabulary, model CostModel) string {
	return strings.Join(Segment(input, vocab, model).Strings(), " ")
}
