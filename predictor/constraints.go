package predictor

import (
	"slices"

	mapset "github.com/deckarep/golang-set"

	"github.com/powellquiring/wordlesolver/feedback"
	"github.com/powellquiring/wordlesolver/letterset"
	"github.com/powellquiring/wordlesolver/lexicon"
)

// Constraints is the accumulated knowledge about the target word.
// Each map takes a letter to the set of positions (int) it was reported at.
type Constraints struct {
	correct   map[byte]mapset.Set
	misplaced map[byte]mapset.Set
	wrong     map[byte]mapset.Set
	repeats   bool
}

func NewConstraints() *Constraints {
	return &Constraints{
		correct:   map[byte]mapset.Set{},
		misplaced: map[byte]mapset.Set{},
		wrong:     map[byte]mapset.Set{},
	}
}

func add(m map[byte]mapset.Set, letter byte, position int) {
	set, ok := m[letter]
	if !ok {
		set = mapset.NewThreadUnsafeSet()
		m[letter] = set
	}
	set.Add(position)
}

func positions(set mapset.Set) []int {
	ret := []int{}
	if set == nil {
		return ret
	}
	set.Each(func(p interface{}) bool {
		ret = append(ret, p.(int))
		return false
	})
	slices.Sort(ret)
	return ret
}

// Absorb records the feedback for guess. Correct codes are applied first, then misplaced, then wrong,
// so a wrong code never hides a letter the same guess proved present.
func (c *Constraints) Absorb(guess string, fb feedback.Feedback) {
	if len(guess) != lexicon.WordLength {
		panic("guess length " + guess)
	}
	present := map[byte]int{}
	for i, code := range fb {
		if code == feedback.Correct {
			c.markCorrect(guess[i], i)
			present[guess[i]]++
		}
	}
	for i, code := range fb {
		if code == feedback.Misplaced {
			add(c.misplaced, guess[i], i)
			present[guess[i]]++
		}
	}
	for i, code := range fb {
		if code != feedback.Wrong {
			continue
		}
		letter := guess[i]
		if set, ok := c.correct[letter]; ok && set.Contains(i) {
			continue
		}
		add(c.wrong, letter, i)
	}
	for _, n := range present {
		if n > 1 {
			c.repeats = true
		}
	}
	for _, set := range c.correct {
		if set.Cardinality() > 1 {
			c.repeats = true
		}
	}
}

// markCorrect pins letter at position. Earlier misplaced reports of the letter become positional exclusions.
func (c *Constraints) markCorrect(letter byte, position int) {
	add(c.correct, letter, position)
	if set, ok := c.misplaced[letter]; ok {
		set.Each(func(p interface{}) bool {
			if p.(int) != position {
				add(c.wrong, letter, p.(int))
			}
			return false
		})
		delete(c.misplaced, letter)
	}
	if set, ok := c.wrong[letter]; ok {
		set.Remove(position)
		if set.Cardinality() == 0 {
			delete(c.wrong, letter)
		}
	}
}

// Repeats is true once the target is known to hold some letter more than once.
func (c *Constraints) Repeats() bool {
	return c.repeats
}

// Empty is true before any feedback was absorbed.
func (c *Constraints) Empty() bool {
	return len(c.correct) == 0 && len(c.misplaced) == 0 && len(c.wrong) == 0
}

func (c *Constraints) Correct(letter byte) []int   { return positions(c.correct[letter]) }
func (c *Constraints) Misplaced(letter byte) []int { return positions(c.misplaced[letter]) }
func (c *Constraints) Wrong(letter byte) []int     { return positions(c.wrong[letter]) }

func letters(m map[byte]mapset.Set) letterset.Letters {
	var ret letterset.Letters
	for letter := range m {
		ret = ret.Add(letter)
	}
	return ret
}

// CorrectLetters are the letters confirmed at some position.
func (c *Constraints) CorrectLetters() letterset.Letters { return letters(c.correct) }

// MisplacedLetters are present letters whose position is not yet known.
func (c *Constraints) MisplacedLetters() letterset.Letters { return letters(c.misplaced) }

// Present is every letter the target is known to contain.
func (c *Constraints) Present() letterset.Letters {
	return c.CorrectLetters().Union(c.MisplacedLetters())
}

// Absent are the globally wrong letters: reported wrong and never reported correct or misplaced.
func (c *Constraints) Absent() letterset.Letters {
	ret := letters(c.wrong)
	for letter := range c.Present().Range {
		ret = ret.Remove(letter)
	}
	return ret
}

// Mask has the confirmed letter for each position, 0 where unknown.
func (c *Constraints) Mask() [lexicon.WordLength]byte {
	var ret [lexicon.WordLength]byte
	for letter, set := range c.correct {
		for _, p := range positions(set) {
			ret[p] = letter
		}
	}
	return ret
}

// Excluded has, per position, the letters that may not appear there: misplaced reports
// and wrong reports of letters known to be present elsewhere.
func (c *Constraints) Excluded() [lexicon.WordLength]letterset.Letters {
	var ret [lexicon.WordLength]letterset.Letters
	present := c.Present()
	for letter, set := range c.misplaced {
		for _, p := range positions(set) {
			ret[p] = ret[p].Add(letter)
		}
	}
	for letter, set := range c.wrong {
		if !present.Has(letter) {
			continue
		}
		for _, p := range positions(set) {
			ret[p] = ret[p].Add(letter)
		}
	}
	return ret
}

// Allows reports whether word is consistent with everything absorbed so far.
func (c *Constraints) Allows(word string) bool {
	if !lexicon.Valid(word) {
		return false
	}
	have := letterset.Of(word)
	if have.Intersection(c.Absent()) != 0 {
		return false
	}
	present := c.Present()
	if have.Intersection(present) != present {
		return false
	}
	if c.repeats && !letterset.HasRepeats(word) {
		return false
	}
	mask := c.Mask()
	excluded := c.Excluded()
	for i := range lexicon.WordLength {
		if mask[i] != 0 && word[i] != mask[i] {
			return false
		}
		if excluded[i].Has(word[i]) {
			return false
		}
	}
	return true
}

// Clone returns an independent copy.
func (c *Constraints) Clone() *Constraints {
	ret := NewConstraints()
	for _, pair := range []struct{ from, to map[byte]mapset.Set }{
		{c.correct, ret.correct},
		{c.misplaced, ret.misplaced},
		{c.wrong, ret.wrong},
	} {
		for letter, set := range pair.from {
			pair.to[letter] = set.Clone()
		}
	}
	ret.repeats = c.repeats
	return ret
}

// ByPosition lists, for each position, the letters reported with code there.
func (c *Constraints) ByPosition(code feedback.Code) [lexicon.WordLength]letterset.Letters {
	var m map[byte]mapset.Set
	switch code {
	case feedback.Correct:
		m = c.correct
	case feedback.Misplaced:
		m = c.misplaced
	default:
		m = c.wrong
	}
	var ret [lexicon.WordLength]letterset.Letters
	for letter, set := range m {
		for _, p := range positions(set) {
			ret[p] = ret[p].Add(letter)
		}
	}
	return ret
}
