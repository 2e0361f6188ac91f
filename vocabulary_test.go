package wordseg

import (
	"errors"
	"io"
	"math"
	"reflect"
	"testing"
)

type sliceEntryReader struct {
	entries []Entry
	index   int
}

func (r *sliceEntryReader) Next() (Entry, error) {
	if r.index >= len(r.entries) {
		return Entry{}, io.EOF
	}
	entry := r.entries[r.index]
	r.index++
	return entry, nil
}

func TestBuildAndLookup(t *testing.T) {
	vocab := mustVocab(t, []Entry{
		{Word: "go", Cost: 1},
		{Word: "golang", Cost: 2.5},
	})
	if vocab.Len() != 2 {
		t.Fatalf("want 2 words, got %d", vocab.Len())
	}
	if vocab.MaxWordLength() != 6 {
		t.Fatalf("want max word length 6, got %d", vocab.MaxWordLength())
	}
	if cost, ok := vocab.Lookup("golang"); !ok || cost != 2.5 {
		t.Fatalf("Lookup(golang) = %g, %v", cost, ok)
	}
	if _, ok := vocab.Lookup("gol"); ok {
		t.Fatal("Lookup(gol) should miss: prefix, not a word")
	}
	if _, ok := vocab.Lookup("rust"); ok {
		t.Fatal("Lookup(rust) should miss")
	}
}

func TestBuildReaderAPI(t *testing.T) {
	vocab, err := BuildReader(&sliceEntryReader{
		entries: []Entry{{Word: "stream", Cost: 1}},
	}, WithName("stream-words"))
	if err != nil {
		t.Fatalf("BuildReader failed: %v", err)
	}
	if cost, ok := vocab.Lookup("stream"); !ok || cost != 1 {
		t.Fatalf("Lookup(stream) = %g, %v", cost, ok)
	}
	if vocab.Identifier != "vocabulary: stream-words" {
		t.Fatalf("unexpected identifier %q", vocab.Identifier)
	}
}

func TestBuildDuplicateConflict(t *testing.T) {
	_, err := Build([]Entry{
		{Word: "go", Cost: 1},
		{Word: "go", Cost: 2},
	})
	var dup *DuplicateWordError
	if !errors.As(err, &dup) {
		t.Fatalf("want DuplicateWordError, got %v", err)
	}
	if dup.Word != "go" || dup.Have != 1 || dup.New != 2 {
		t.Fatalf("unexpected error payload %+v", dup)
	}
}

func TestBuildDuplicateSameCost(t *testing.T) {
	vocab, err := Build([]Entry{
		{Word: "go", Cost: 1},
		{Word: "go", Cost: 1},
	})
	if err != nil {
		t.Fatalf("identical duplicate should be tolerated: %v", err)
	}
	if vocab.Len() != 1 {
		t.Fatalf("want 1 word, got %d", vocab.Len())
	}
}

func TestBuildEmpty(t *testing.T) {
	_, err := Build(nil)
	if !errors.Is(err, ErrEmptyVocabulary) {
		t.Fatalf("want ErrEmptyVocabulary, got %v", err)
	}
}

func TestBuildFallbackOnly(t *testing.T) {
	vocab, err := Build(nil, WithFallbackOnly())
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if vocab.Len() != 0 || vocab.MaxWordLength() != 0 {
		t.Fatalf("fallback-only vocabulary should be empty, got %d/%d",
			vocab.Len(), vocab.MaxWordLength())
	}
}

func TestBuildRejectsEmptyWord(t *testing.T) {
	if _, err := Build([]Entry{{Word: "", Cost: 1}}); err == nil {
		t.Fatal("empty word should be rejected")
	}
}

func TestBuildRejectsNegativeCost(t *testing.T) {
	if _, err := Build([]Entry{{Word: "go", Cost: -1}}); err == nil {
		t.Fatal("negative cost should be rejected")
	}
}

func TestBuildRejectsNonFiniteCost(t *testing.T) {
	for _, cost := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		vocab, err := Build([]Entry{{Word: "go", Cost: cost}})
		if err == nil {
			t.Fatalf("cost %v should be rejected, got vocabulary %v", cost, vocab)
		}
	}
	// the path backend must refuse the same input, not store it silently
	if _, err := Build([]Entry{{Word: "go", Cost: math.NaN()}}, WithPathIndex()); err == nil {
		t.Fatal("NaN cost should be rejected by the path index build too")
	}
}

func TestMatchesAtEnumeratesPrefixWords(t *testing.T) {
	vocab := mustVocab(t, []Entry{
		{Word: "cat", Cost: 1},
		{Word: "cats", Cost: 2},
		{Word: "category", Cost: 3},
		{Word: "dog", Cost: 1},
	})
	type match struct {
		end  int
		cost float64
	}
	var got []match
	vocab.matchesAt("catsup", 0, func(end int, cost float64) {
		got = append(got, match{end, cost})
	})
	want := []match{{3, 1}, {4, 2}} // "cat", "cats"; never "category"
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("matchesAt(catsup, 0) = %v, want %v", got, want)
	}
	got = nil
	vocab.matchesAt("xcat", 1, func(end int, cost float64) {
		got = append(got, match{end, cost})
	})
	want = []match{{4, 1}} // "cat" ending at byte 4
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("matchesAt(xcat, 1) = %v, want %v", got, want)
	}
}

func TestCaseFoldingLookup(t *testing.T) {
	vocab := mustVocab(t, unit("straße", "hello"), WithCaseFolding())
	if _, ok := vocab.Lookup("HELLO"); !ok {
		t.Fatal("folded vocabulary should match HELLO")
	}
	if _, ok := vocab.Lookup("Straße"); !ok {
		t.Fatal("folded vocabulary should match Straße")
	}
	unfolded := mustVocab(t, unit("hello"))
	if _, ok := unfolded.Lookup("HELLO"); ok {
		t.Fatal("unfolded vocabulary should not match HELLO")
	}
}

func TestNonBMPWordsNeedPathIndex(t *testing.T) {
	entries := unit("ok", "🜁water")
	if _, err := Build(entries); err == nil {
		t.Fatal("DAT index should reject words outside the BMP")
	}
	vocab, err := Build(entries, WithPathIndex())
	if err != nil {
		t.Fatalf("path index should accept non-BMP words: %v", err)
	}
	if _, ok := vocab.Lookup("🜁water"); !ok {
		t.Fatal("Lookup(🜁water) should hit")
	}
}

func TestPathIndexLookupParity(t *testing.T) {
	entries := []Entry{
		{Word: "go", Cost: 1},
		{Word: "golang", Cost: 2.5},
		{Word: "für", Cost: 3},
	}
	a := mustVocab(t, entries)
	b := mustVocab(t, entries, WithPathIndex())
	for _, word := range []string{"go", "golang", "für", "gol", "nope"} {
		costA, okA := a.Lookup(word)
		costB, okB := b.Lookup(word)
		if costA != costB || okA != okB {
			t.Fatalf("backends disagree on %q: (%g,%v) vs (%g,%v)", word, costA, okA, costB, okB)
		}
	}
}
