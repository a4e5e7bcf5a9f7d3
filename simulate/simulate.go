// Package simulate plays the predictor against known targets to measure how often, and how fast, it wins.
package simulate

import (
	"context"
	"fmt"
	"math/rand/v2"
	"runtime"

	"github.com/charmbracelet/log"
	mapset "github.com/deckarep/golang-set"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/sync/errgroup"

	"github.com/powellquiring/wordlesolver/feedback"
	"github.com/powellquiring/wordlesolver/lexicon"
	"github.com/powellquiring/wordlesolver/logger"
	"github.com/powellquiring/wordlesolver/predictor"
)

// Game is one simulated session.
type Game struct {
	Target  string
	Guesses []string
	Outcome predictor.Outcome
}

// Rounds is the number of guesses played.
func (g Game) Rounds() int {
	return len(g.Guesses)
}

func (g Game) Won() bool {
	return g.Outcome == predictor.Victory
}

// OpenerRegistry hands out distinct opening words across concurrent sessions.
type OpenerRegistry struct {
	claimed mapset.Set
}

func NewOpenerRegistry() *OpenerRegistry {
	return &OpenerRegistry{claimed: mapset.NewSet()}
}

// Claim returns the first of candidates no other session claimed yet.
func (r *OpenerRegistry) Claim(candidates []string) (string, bool) {
	for _, word := range candidates {
		if r.claimed.Add(word) {
			return word, true
		}
	}
	return "", false
}

func (r *OpenerRegistry) Len() int {
	return r.claimed.Cardinality()
}

// Session configures a single game.
type Session struct {
	// First are played as the opening guesses before following the suggestions.
	First   []string
	Openers *OpenerRegistry
	Options []predictor.Option
}

// Play runs one game against target, always playing the first suggestion.
// A game that runs out of candidates is lost.
func Play(lex *lexicon.Lexicon, target string, s Session) (Game, error) {
	p := predictor.New(lex.Words, lex.Frequency, s.Options...)
	game := Game{Target: target, Outcome: predictor.Continue}
	for game.Outcome == predictor.Continue {
		guess, ok := next(p, len(game.Guesses), s)
		if !ok {
			game.Outcome = predictor.Loss
			break
		}
		outcome, err := p.Calibrate(guess, feedback.Respond(target, guess).String())
		if err != nil {
			return game, fmt.Errorf("target %s guess %s: %w", target, guess, err)
		}
		if outcome != predictor.Loss {
			game.Guesses = append(game.Guesses, guess)
		}
		game.Outcome = outcome
	}
	return game, nil
}

func next(p *predictor.Predictor, played int, s Session) (string, bool) {
	if played < len(s.First) {
		return s.First[played], true
	}
	if played == 0 && s.Openers != nil {
		if word, ok := s.Openers.Claim(p.Openers()); ok {
			return word, true
		}
	}
	suggestions := p.Predict()
	if len(suggestions) == 0 {
		return "", false
	}
	return suggestions[0], true
}

// Config of a simulation run.
type Config struct {
	// Trials is the number of games per target, values below 1 play one game.
	Trials int
	// Workers bounds the concurrent games, 0 is the number of CPUs.
	Workers      int
	Suggestions  int
	First        []string
	DedupOpeners bool
	Seed         uint64
	Progress     bool
	Logger       *log.Logger
}

// Run plays every target Trials times. Each game gets its own predictor seeded from Seed and its
// position in the run, so a run is reproducible whatever the number of workers.
func Run(ctx context.Context, lex *lexicon.Lexicon, targets []string, cfg Config) (*Report, error) {
	trials := max(cfg.Trials, 1)
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	l := cfg.Logger
	if l == nil {
		l = logger.Discard()
	}
	var openers *OpenerRegistry
	if cfg.DedupOpeners {
		openers = NewOpenerRegistry()
	}

	total := len(targets) * trials
	var bar *progressbar.ProgressBar
	if cfg.Progress {
		bar = progressbar.Default(int64(total), "simulating")
	} else {
		bar = progressbar.DefaultSilent(int64(total))
	}

	games := make([]Game, total)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range total {
		if gctx.Err() != nil {
			break
		}
		target := targets[i/trials]
		g.Go(func() error {
			session := Session{
				First:   cfg.First,
				Openers: openers,
				Options: []predictor.Option{
					predictor.WithOutputSize(cfg.Suggestions),
					predictor.WithRand(rand.New(rand.NewPCG(cfg.Seed, uint64(i)))),
					predictor.WithLogger(l.With("game", i)),
				},
			}
			game, err := Play(lex, target, session)
			if err != nil {
				return err
			}
			games[i] = game
			l.Debug("game", "target", target, "outcome", game.Outcome, "guesses", game.Guesses)
			return bar.Add(1)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	bar.Finish()
	return NewReport(games), nil
}
