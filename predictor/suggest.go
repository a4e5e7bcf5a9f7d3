package predictor

import (
	"github.com/charmbracelet/log"

	"github.com/powellquiring/wordlesolver/letterset"
)

// openerPoolSize bounds the words shuffled for an opening suggestion.
const openerPoolSize = 50

// Predict returns up to the configured number of suggestions for the next guess.
// The first round and the round after an all wrong response draw at random from the
// best ranked words without repeated letters, otherwise the best ranked candidates are returned.
func (p *Predictor) Predict() []string {
	if p.round == 1 || p.lastBusted() {
		pool := p.Openers()
		if len(pool) == 0 {
			return p.store.words(p.outputSize)
		}
		p.rand.Shuffle(len(pool), func(i, j int) {
			pool[i], pool[j] = pool[j], pool[i]
		})
		p.log.Info("openers", "round", p.round, "pool", len(pool), "candidates", p.store.len())
		return pool[:min(p.outputSize, len(pool))]
	}
	if p.log.GetLevel() <= log.InfoLevel {
		p.log.Info("top", "round", p.round, "words", p.store.words(openerPoolSize))
	}
	return p.store.words(p.outputSize)
}

func (p *Predictor) lastBusted() bool {
	return len(p.history) > 0 && p.history[len(p.history)-1].Feedback.Busted()
}

// Openers returns, in rank order, the candidates without repeated letters ranked at or above the mean.
func (p *Predictor) Openers() []string {
	cutoff := p.store.mean()
	ret := []string{}
	for _, c := range p.store.candidates {
		if len(ret) == openerPoolSize {
			break
		}
		if c.rank >= cutoff && !letterset.HasRepeats(c.word) {
			ret = append(ret, c.word)
		}
	}
	return ret
}
