package letterset

import (
	"math/bits"
)

// Letters has a bit for each letter 'a' through 'z'
type Letters uint32

const alphabet = 26

// allLetters has every letter bit set
const allLetters Letters = 1<<alphabet - 1

// index of the letter's bit, ok is false for anything outside a-z
func index(letter byte) (uint, bool) {
	if letter < 'a' || letter > 'z' {
		return 0, false
	}
	return uint(letter - 'a'), true
}

// Of returns the set of distinct letters in word. Characters outside a-z are ignored.
func Of(word string) Letters {
	var ret Letters
	for i := 0; i < len(word); i++ {
		ret = ret.Add(word[i])
	}
	return ret
}

// HasRepeats reports whether some letter occurs more than once in word.
func HasRepeats(word string) bool {
	var seen Letters
	for i := 0; i < len(word); i++ {
		if seen.Has(word[i]) {
			return true
		}
		seen = seen.Add(word[i])
	}
	return false
}

func (l Letters) Add(letter byte) Letters {
	i, ok := index(letter)
	if !ok {
		return l
	}
	return l | 1<<i
}

func (l Letters) Remove(letter byte) Letters {
	i, ok := index(letter)
	if !ok {
		return l
	}
	return l &^ (1 << i)
}

func (l Letters) Has(letter byte) bool {
	i, ok := index(letter)
	return ok && l&(1<<i) != 0
}

// Count (number of letters set).
func (l Letters) Count() int {
	return bits.OnesCount32(uint32(l & allLetters))
}

// Intersection of base set and other set
func (l Letters) Intersection(other Letters) Letters {
	return l & other
}

// Union of base set and other set
func (l Letters) Union(other Letters) Letters {
	return l | other
}

// Range yields the letters in alphabetical order
//
//	for letter := range set.Range { ... }
func (l Letters) Range(yield func(letter byte) bool) {
	rest := uint32(l & allLetters)
	for rest != 0 {
		i := bits.TrailingZeros32(rest)
		if !yield(byte('a' + i)) {
			return
		}
		rest &^= 1 << i
	}
}

func (l Letters) String() string {
	ret := make([]byte, 0, l.Count())
	for letter := range l.Range {
		ret = append(ret, letter)
	}
	return string(ret)
}
