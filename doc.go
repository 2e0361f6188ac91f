/*
Package wordseg splits an unbroken run of characters into an ordered list of
words drawn from a known vocabulary, e.g.

	"rustisgreat"  =>  [ "rust", "is", "great" ]

It recovers word boundaries lost in concatenation: decompounding identifiers
and log keys, tokenizing delimiter-free text, decomposing URL slugs.

A Vocabulary is built once from (word, cost) pairs and is immutable and
sharable afterwards. The default index is a frozen double-array trie (DAT)
keyed by a dense alphabet of BMP code units; an alternate backend on top of
github.com/derekparker/trie handles vocabularies with runes outside the BMP.

Segmentation is a dynamic program over the input positions: best[i] is the
minimum cost of segmenting the first i bytes, every dictionary word starting
at i proposes an extension, and a single-rune "unknown" fallback keeps every
position reachable. Segmentation is therefore total: any input yields a token
sequence, at worst one Unknown token per rune. Cost semantics are pluggable
through a CostModel (uniform, Zipf rank, frequency, length-weighted).

Further Reading

	https://en.wikipedia.org/wiki/Word_segmentation
	https://norvig.com/ngrams/  (statistical word segmentation)

----------------------------------------------------------------------

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer@com>

All rights reserved.

License information is available in the LICENSE file.
*/
package wordseg

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'wordseg'
func tracer() tracing.Trace {
	return tracing.Select("wordseg")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
