// Package predictor narrows a vocabulary down to the hidden word of a wordle game.
//
// Each round the caller asks for suggestions with Predict, plays one of them and reports the
// game's response with Calibrate. The predictor drops every word inconsistent with the responses
// seen so far and re-ranks the survivors.
package predictor

import (
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"

	"github.com/powellquiring/wordlesolver/feedback"
	"github.com/powellquiring/wordlesolver/lexicon"
)

// MaxRounds is the number of guesses allowed in a game.
const MaxRounds = 6

// Outcome of a calibration, also the state of the game.
type Outcome uint8

const (
	Continue Outcome = iota
	Victory
	Loss
)

func (o Outcome) String() string {
	switch o {
	case Continue:
		return "continue"
	case Victory:
		return "victory"
	case Loss:
		return "loss"
	}
	return fmt.Sprintf("Outcome(%d)", o)
}

// Turn is a calibrated guess.
type Turn struct {
	Guess    string
	Feedback feedback.Feedback
}

type Predictor struct {
	words        []string        // vocabulary, indexed by candidate.index
	stringToWord map[string]uint // vocabulary membership
	index        *index
	store        *store
	constraints  *Constraints
	round        int
	state        Outcome
	history      []Turn

	outputSize int
	rand       *rand.Rand
	rank       func(string) int
	log        *log.Logger
}

// New returns a predictor over words. Invalid and duplicate words are skipped.
// Words are ranked by their letter frequency in freq unless WithRanker is given.
func New(words []string, freq *lexicon.Frequency, opts ...Option) *Predictor {
	ret := &Predictor{
		stringToWord: make(map[string]uint, len(words)),
		constraints:  NewConstraints(),
		round:        1,
		state:        Continue,
		outputSize:   DefaultOutputSize,
		rand:         rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0)),
		rank:         func(word string) int { return lexicon.Rank(word, freq) },
		log:          log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(ret)
	}
	for _, word := range words {
		if !lexicon.Valid(word) {
			ret.log.Warn("skipping word", "word", word)
			continue
		}
		if _, ok := ret.stringToWord[word]; ok {
			continue
		}
		ret.stringToWord[word] = uint(len(ret.words))
		ret.words = append(ret.words, word)
	}
	ret.index = newIndex(ret.words)
	ret.store = newStore(ret.words, ret.rank)
	ret.log.Debug("vocabulary", "words", len(ret.words))
	return ret
}

// Calibrate applies the game's response fb to guess. fb holds one code per letter:
// c correct, m misplaced, w wrong. Rejected calls leave the predictor unchanged.
func (p *Predictor) Calibrate(guess, fb string) (Outcome, error) {
	if p.state != Continue {
		return p.state, fmt.Errorf("%w: %s", ErrGameOver, p.state)
	}
	response, err := feedback.Parse(fb)
	if err != nil {
		return Continue, fmt.Errorf("%w: %w", ErrInvalidFeedback, err)
	}
	if response.Solved() {
		p.state = Victory
		p.history = append(p.history, Turn{Guess: guess, Feedback: response})
		p.log.Info("solved", "word", guess, "round", p.round)
		return Victory, nil
	}
	if p.round > MaxRounds {
		p.state = Loss
		p.log.Info("out of rounds", "round", p.round)
		return Loss, nil
	}
	if _, ok := p.stringToWord[guess]; !ok {
		return Continue, fmt.Errorf("%w: %q", ErrUnknownGuess, guess)
	}
	p.constraints.Absorb(guess, response)
	p.eliminate(guess)
	p.promote()
	p.store.sort()
	p.history = append(p.history, Turn{Guess: guess, Feedback: response})
	p.round++
	p.log.Debug("calibrated", "guess", guess, "feedback", response, "round", p.round, "candidates", p.store.len())
	return Continue, nil
}

func (p *Predictor) eliminate(guess string) {
	alive := p.store.members(p.index.size)
	alive.Clear(p.stringToWord[guess])
	p.index.match(alive, p.constraints)
	for _, word := range p.store.retain(alive) {
		p.log.Debug("dropped", "word", word)
	}
}

// Round is the number of the next guess, starting at 1.
func (p *Predictor) Round() int {
	return p.round
}

// Len is the number of remaining candidates.
func (p *Predictor) Len() int {
	return p.store.len()
}

// State is Continue until the game is won or lost.
func (p *Predictor) State() Outcome {
	return p.state
}

// Candidates returns the remaining words with their ranks, best first.
func (p *Predictor) Candidates() []WordScore {
	return p.store.top(p.store.len())
}

// Top returns the n best ranked candidates.
func (p *Predictor) Top(n int) []WordScore {
	return p.store.top(n)
}

// Contains reports whether word is still a candidate.
func (p *Predictor) Contains(word string) bool {
	return p.store.contains(word)
}

// Constraints returns a copy of the knowledge absorbed so far.
func (p *Predictor) Constraints() *Constraints {
	return p.constraints.Clone()
}

func (p *Predictor) History() []Turn {
	return append([]Turn(nil), p.history...)
}
