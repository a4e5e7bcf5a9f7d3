package predictor

import (
	"math/rand/v2"

	"github.com/charmbracelet/log"
)

// DefaultOutputSize is the number of suggestions returned by Predict.
const DefaultOutputSize = 3

type Option func(*Predictor)

// WithOutputSize sets the number of suggestions, values below 1 are ignored.
func WithOutputSize(n int) Option {
	return func(p *Predictor) {
		if n > 0 {
			p.outputSize = n
		}
	}
}

// WithRand sets the source used to shuffle the opening suggestions.
func WithRand(r *rand.Rand) Option {
	return func(p *Predictor) {
		if r != nil {
			p.rand = r
		}
	}
}

// WithRanker replaces the letter frequency ranking of the vocabulary.
func WithRanker(rank func(word string) int) Option {
	return func(p *Predictor) {
		if rank != nil {
			p.rank = rank
		}
	}
}

func WithLogger(logger *log.Logger) Option {
	return func(p *Predictor) {
		if logger != nil {
			p.log = logger
		}
	}
}
