/*
Package corpus parses plain-text word lists into wordseg vocabularies.

Two formats are supported:

  - ranked lists: one word per line, most frequent first; the line number
    defines the word's rank and thereby its Zipf cost,
  - frequency tables: "word count" per line, whitespace separated (the
    format of the usual unigram count corpora).

Blank lines and lines starting with '#' are skipped in both formats. The
segmentation core itself never touches files or formats; this package is the
producer handing it a finished, in-memory vocabulary.
*/
package corpus

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/npillmayer/wordseg"
)

// ReadRanked reads a ranked word list: one word per line, most frequent
// first.
func ReadRanked(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	var words []string
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return words, nil
}

// ReadCounts reads a frequency table of "word count" lines.
func ReadCounts(r io.Reader) (map[string]float64, error) {
	scanner := bufio.NewScanner(r)
	counts := make(map[string]float64)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("corpus: line %d: want \"word count\", got %q", lineno, line)
		}
		count, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("corpus: line %d: bad count %q: %w", lineno, fields[1], err)
		}
		counts[fields[0]] += count
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return counts, nil
}

// LoadRanked reads a ranked word list and returns a ready-to-use vocabulary
// together with the Zipf cost model that priced it.
//
// Example usage:
//
//	f, _ := os.Open("path/to/corpus.txt")
//	defer f.Close()
//
//	vocab, model, err := corpus.LoadRanked("en", f)
//	seg := wordseg.Segment("rustisgreat", vocab, model)
func LoadRanked(name string, r io.Reader, opts ...wordseg.Option) (*wordseg.Vocabulary, wordseg.CostModel, error) {
	words, err := ReadRanked(r)
	if err != nil {
		return nil, nil, err
	}
	model, err := wordseg.NewZipfModel(words)
	if err != nil {
		return nil, nil, err
	}
	opts = append([]wordseg.Option{wordseg.WithName(name)}, opts...)
	vocab, err := wordseg.Build(model.Entries(), opts...)
	if err != nil {
		return nil, nil, err
	}
	return vocab, model, nil
}

// LoadFrequencies reads a frequency table and returns a ready-to-use
// vocabulary together with the -log-probability cost model that priced it.
func LoadFrequencies(name string, r io.Reader, opts ...wordseg.Option) (*wordseg.Vocabulary, wordseg.CostModel, error) {
	counts, err := ReadCounts(r)
	if err != nil {
		return nil, nil, err
	}
	model, err := wordseg.NewFrequencyModel(counts)
	if err != nil {
		return nil, nil, err
	}
	opts = append([]wordseg.Option{wordseg.WithName(name)}, opts...)
	vocab, err := wordseg.Build(model.Entries(), opts...)
	if err != nil {
		return nil, nil, err
	}
	return vocab, model, nil
}
