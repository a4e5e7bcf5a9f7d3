package simulate

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"
)

// Report summarizes the games of a run.
type Report struct {
	Games  []Game
	Wins   int
	Losses int
	// Rounds counts the won games by number of guesses.
	Rounds map[int]int
}

func NewReport(games []Game) *Report {
	ret := &Report{Games: games, Rounds: map[int]int{}}
	for _, game := range games {
		if game.Won() {
			ret.Wins++
			ret.Rounds[game.Rounds()]++
		} else {
			ret.Losses++
		}
	}
	return ret
}

// FailureRate is the share of games lost, 0 for an empty report.
func (r *Report) FailureRate() float64 {
	if len(r.Games) == 0 {
		return 0
	}
	return float64(r.Losses) / float64(len(r.Games))
}

// AverageRounds is the mean number of guesses of the won games.
func (r *Report) AverageRounds() float64 {
	if r.Wins == 0 {
		return 0
	}
	sum := 0
	for rounds, n := range r.Rounds {
		sum += rounds * n
	}
	return float64(sum) / float64(r.Wins)
}

func (r *Report) Failed() []Game {
	ret := []Game{}
	for _, game := range r.Games {
		if !game.Won() {
			ret = append(ret, game)
		}
	}
	return ret
}

// Write prints the summary, the rounds distribution and the lost games.
func (r *Report) Write(w io.Writer) error {
	var b strings.Builder
	fmt.Fprintf(&b, "games: %d pass: %d fail: %d failure rate: %.2f%% average rounds: %.2f\n",
		len(r.Games), r.Wins, r.Losses, 100*r.FailureRate(), r.AverageRounds())
	for _, rounds := range slices.Sorted(maps.Keys(r.Rounds)) {
		fmt.Fprintf(&b, "%d %d\n", rounds, r.Rounds[rounds])
	}
	fmt.Fprintf(&b, "DNF %d\n", r.Losses)
	for _, game := range r.Failed() {
		fmt.Fprintf(&b, "%s: %s\n", game.Target, strings.Join(game.Guesses, " "))
	}
	_, err := io.WriteString(w, b.String())
	return err
}
