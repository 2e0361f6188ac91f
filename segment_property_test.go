package wordseg

import (
	"reflect"
	"strings"
	"testing"
	"unicode/utf8"

	"pgregory.net/rapid"
)

func drawVocabEntries(rt *rapid.T) []Entry {
	words := rapid.SliceOfN(rapid.StringMatching(`[a-e]{1,6}`), 1, 12).Draw(rt, "words")
	// uniform cost keeps repeated draws of the same word consistent
	return unit(words...)
}

func TestSegmentPropertyLosslessReconstruction(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		vocab, err := Build(drawVocabEntries(rt))
		if err != nil {
			rt.Fatalf("Build failed: %v", err)
		}
		model, err := NewUniformModel(1, 2)
		if err != nil {
			rt.Fatalf("NewUniformModel failed: %v", err)
		}
		input := rapid.StringMatching(`[a-gßü→]{0,24}`).Draw(rt, "input")
		seg := Segment(input, vocab, model)
		if joined := strings.Join(seg.Strings(), ""); joined != input {
			rt.Fatalf("tokens do not reproduce input: %q vs %q", joined, input)
		}
		prev := 0
		for _, tok := range seg.Tokens {
			if tok.Start != prev || tok.End <= tok.Start {
				rt.Fatalf("spans do not tile: %+v at %d", tok, prev)
			}
			prev = tok.End
		}
		if prev != len(input) {
			rt.Fatalf("spans end at %d of %d", prev, len(input))
		}
	})
}

func TestSegmentPropertyTotalityAndOptimality(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		vocab, err := Build(drawVocabEntries(rt))
		if err != nil {
			rt.Fatalf("Build failed: %v", err)
		}
		model, err := NewUniformModel(1, 2)
		if err != nil {
			rt.Fatalf("NewUniformModel failed: %v", err)
		}
		input := rapid.StringMatching(`[a-g]{0,24}`).Draw(rt, "input")
		seg := Segment(input, vocab, model)
		allUnknown := float64(utf8.RuneCountInString(input)) * model.UnknownUnitCost()
		if seg.TotalCost > allUnknown {
			rt.Fatalf("cost %g exceeds the all-unknown bound %g", seg.TotalCost, allUnknown)
		}
		for _, tok := range seg.Tokens {
			if tok.Status == Unknown && utf8.RuneCountInString(tok.Text) != 1 {
				rt.Fatalf("unknown token %q spans more than one rune", tok.Text)
			}
			if tok.Status == Known {
				if _, ok := vocab.Lookup(tok.Text); !ok {
					rt.Fatalf("known token %q is not a vocabulary word", tok.Text)
				}
			}
		}
	})
}

func TestSegmentPropertyDeterminism(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		vocab, err := Build(drawVocabEntries(rt))
		if err != nil {
			rt.Fatalf("Build failed: %v", err)
		}
		model, err := NewUniformModel(1, 2)
		if err != nil {
			rt.Fatalf("NewUniformModel failed: %v", err)
		}
		input := rapid.StringMatching(`[a-f]{0,20}`).Draw(rt, "input")
		first := Segment(input, vocab, model)
		again := Segment(input, vocab, model)
		if !reflect.DeepEqual(first, again) {
			rt.Fatalf("segmentation not deterministic: %v vs %v", first, again)
		}
	})
}

func TestSegmentPropertyBackendParity(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		entries := drawVocabEntries(rt)
		datVocab, err := Build(entries)
		if err != nil {
			rt.Fatalf("Build(dat) failed: %v", err)
		}
		pathVocab, err := Build(entries, WithPathIndex())
		if err != nil {
			rt.Fatalf("Build(path) failed: %v", err)
		}
		model, err := NewUniformModel(1, 2)
		if err != nil {
			rt.Fatalf("NewUniformModel failed: %v", err)
		}
		input := rapid.StringMatching(`[a-f]{0,20}`).Draw(rt, "input")
		a := Segment(input, datVocab, model)
		b := Segment(input, pathVocab, model)
		if !reflect.DeepEqual(a, b) {
			rt.Fatalf("backends disagree on %q: %v vs %v", input, a, b)
		}
	})
}
