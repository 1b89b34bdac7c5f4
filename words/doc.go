/*
Package words provides simple text statistics: a ranking of the most frequent
words of a text and a count of its sentences.

Words are maximal runs of letters, compared case-insensitively. Text is
segmented at line-break opportunities (UAX #14) first, then words are taken
from the segments. Word frequencies are collected in a treap.Map, with the
frequency of a word serving as its priority. Frequent words therefore gather
near the root of the tree.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package words

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'treap'
func tracer() tracing.Trace {
	return tracing.Select("treap")
}
