package predictor

import (
	"math"

	"github.com/powellquiring/wordlesolver/letterset"
)

// promote lifts the rank of candidates sharing confirmed letters above the current best.
// A word with a repeated letter and no misplaced letter is pushed below the best instead
// while the target is not known to repeat a letter. Halves round to even.
func (p *Predictor) promote() {
	highest := p.store.highest()
	mask := p.constraints.Mask()
	misplaced := p.constraints.MisplacedLetters()
	repeats := p.constraints.Repeats()
	for i := range p.store.candidates {
		c := &p.store.candidates[i]
		matched := 0
		for pos, letter := range mask {
			if letter != 0 && c.word[pos] == letter {
				matched++
			}
		}
		misplacedIn := letterset.Of(c.word).Intersection(misplaced).Count()
		bonus := matched + misplacedIn
		if bonus == 0 {
			continue
		}
		boost := float64(bonus*c.rank) / 10
		rank := c.rank
		if letterset.HasRepeats(c.word) && misplacedIn == 0 && !repeats {
			c.rank = int(math.RoundToEven(float64(highest) - boost))
		} else {
			c.rank = int(math.RoundToEven(float64(highest) + boost))
		}
		p.log.Debug("promoted", "word", c.word, "from", rank, "to", c.rank)
	}
}
