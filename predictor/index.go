package predictor

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/powellquiring/wordlesolver/letterset"
	"github.com/powellquiring/wordlesolver/lexicon"
)

const alphabet = 26

/*
index of the vocabulary, a word is represented by its position in the vocabulary.

letters[0]['a'-'a'] all words whose first letter is an a, [1] second letter is an a, ...
*/
type index struct {
	size     uint
	letters  [lexicon.WordLength][alphabet]*bitset.BitSet
	contains [alphabet]*bitset.BitSet // contains['a'-'a'] words with 1 or more a
	repeats  *bitset.BitSet           // words with some letter more than once
}

func newIndex(words []string) *index {
	size := uint(len(words))
	ret := &index{size: size, repeats: bitset.New(size)}
	for l := range ret.contains {
		ret.contains[l] = bitset.New(size)
		for p := range ret.letters {
			ret.letters[p][l] = bitset.New(size)
		}
	}
	for w, word := range words {
		for p := range lexicon.WordLength {
			l := word[p] - 'a'
			ret.letters[p][l].Set(uint(w))
			ret.contains[l].Set(uint(w))
		}
		if letterset.HasRepeats(word) {
			ret.repeats.Set(uint(w))
		}
	}
	return ret
}

// match narrows alive to the words c allows
func (x *index) match(alive *bitset.BitSet, c *Constraints) {
	if c.repeats {
		alive.InPlaceIntersection(x.repeats)
	}
	for letter := range c.Absent().Range {
		alive.InPlaceDifference(x.contains[letter-'a'])
	}
	for letter := range c.Present().Range {
		alive.InPlaceIntersection(x.contains[letter-'a'])
	}
	for p, letter := range c.Mask() {
		if letter != 0 {
			alive.InPlaceIntersection(x.letters[p][letter-'a'])
		}
	}
	for p, excluded := range c.Excluded() {
		for letter := range excluded.Range {
			alive.InPlaceDifference(x.letters[p][letter-'a'])
		}
	}
}
