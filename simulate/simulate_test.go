package simulate

import (
	"bytes"
	"context"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/powellquiring/wordlesolver/lexicon"
	"github.com/powellquiring/wordlesolver/predictor"
)

func seeded(seed uint64) []predictor.Option {
	return []predictor.Option{predictor.WithRand(rand.New(rand.NewPCG(seed, 0)))}
}

func TestPlay(t *testing.T) {
	lex := lexicon.New([]string{"hares", "cares", "sades", "harpy"})
	game, err := Play(lex, "hares", Session{First: []string{"harpy"}, Options: seeded(1)})
	require.NoError(t, err)
	assert.Equal(t, predictor.Victory, game.Outcome)
	assert.Equal(t, []string{"harpy", "hares"}, game.Guesses)
	assert.Equal(t, 2, game.Rounds())
	assert.True(t, game.Won())
}

func TestPlayFirstGuessWins(t *testing.T) {
	lex := lexicon.New([]string{"hares", "cares"})
	game, err := Play(lex, "cares", Session{First: []string{"cares"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"cares"}, game.Guesses)
	assert.True(t, game.Won())
}

func TestPlayUnknownFirst(t *testing.T) {
	lex := lexicon.New([]string{"hares", "cares"})
	_, err := Play(lex, "hares", Session{First: []string{"proxy"}})
	assert.ErrorIs(t, err, predictor.ErrUnknownGuess)
}

func TestPlayTargetOutsideVocabulary(t *testing.T) {
	lex := lexicon.New([]string{"hares", "cares", "sades"})
	game, err := Play(lex, "proxy", Session{Options: seeded(1)})
	require.NoError(t, err)
	assert.Equal(t, predictor.Loss, game.Outcome)
	assert.LessOrEqual(t, game.Rounds(), predictor.MaxRounds)
}

func TestOpenerRegistry(t *testing.T) {
	r := NewOpenerRegistry()
	word, ok := r.Claim([]string{"crane", "slate"})
	assert.True(t, ok)
	assert.Equal(t, "crane", word)
	word, ok = r.Claim([]string{"crane", "slate"})
	assert.True(t, ok)
	assert.Equal(t, "slate", word)
	_, ok = r.Claim([]string{"crane", "slate"})
	assert.False(t, ok)
	assert.Equal(t, 2, r.Len())
}

func targets(n int) []string {
	all := lexicon.Default()
	r := rand.New(rand.NewPCG(3, 3))
	ret := make([]string, n)
	for i := range ret {
		ret[i] = all[r.IntN(len(all))]
	}
	return ret
}

func TestRun(t *testing.T) {
	n := 200
	if testing.Short() {
		n = 100
	}
	lex := lexicon.New(lexicon.Default())
	report, err := Run(context.Background(), lex, targets(n), Config{Workers: 4, Seed: 11})
	require.NoError(t, err)
	require.Len(t, report.Games, n)
	assert.Equal(t, n, report.Wins+report.Losses)
	assert.LessOrEqual(t, report.FailureRate(), 0.01)
	for _, game := range report.Games {
		assert.LessOrEqual(t, game.Rounds(), predictor.MaxRounds+1, game.Target)
		if game.Won() {
			assert.Equal(t, game.Target, game.Guesses[len(game.Guesses)-1])
		}
	}
	assert.Greater(t, report.AverageRounds(), 1.0)
	assert.Less(t, report.AverageRounds(), 6.0)
}

// repeated games against one target with a different opener shuffle each time
func TestStability(t *testing.T) {
	if testing.Short() {
		t.Skip("100 games")
	}
	lex := lexicon.New(lexicon.Default())
	report, err := Run(context.Background(), lex, []string{"proxy"}, Config{Trials: 100, Workers: 4, Seed: 17})
	require.NoError(t, err)
	require.Len(t, report.Games, 100)
	assert.Zero(t, report.Losses, "%v", report.Failed())
	for _, game := range report.Games {
		assert.LessOrEqual(t, game.Rounds(), predictor.MaxRounds, game.Guesses)
	}
}

func TestRunReproducible(t *testing.T) {
	lex := lexicon.New(lexicon.Default())
	tg := targets(10)
	one, err := Run(context.Background(), lex, tg, Config{Workers: 1, Seed: 5})
	require.NoError(t, err)
	many, err := Run(context.Background(), lex, tg, Config{Workers: 8, Seed: 5})
	require.NoError(t, err)
	assert.Equal(t, one.Games, many.Games)
}

func TestRunTrials(t *testing.T) {
	lex := lexicon.New(lexicon.Default())
	report, err := Run(context.Background(), lex, []string{"crane", "oxbow"}, Config{Trials: 3, Workers: 2})
	require.NoError(t, err)
	require.Len(t, report.Games, 6)
	for i, game := range report.Games {
		assert.Equal(t, []string{"crane", "oxbow"}[i/3], game.Target)
	}
}

func TestRunDedupOpeners(t *testing.T) {
	lex := lexicon.New(lexicon.Default())
	tg := targets(20)
	report, err := Run(context.Background(), lex, tg, Config{Workers: 4, DedupOpeners: true})
	require.NoError(t, err)
	firsts := map[string]bool{}
	for _, game := range report.Games {
		require.NotEmpty(t, game.Guesses)
		assert.False(t, firsts[game.Guesses[0]], game.Guesses[0])
		firsts[game.Guesses[0]] = true
	}
}

func TestRunForcedFirst(t *testing.T) {
	lex := lexicon.New(lexicon.Default())
	report, err := Run(context.Background(), lex, targets(5), Config{First: []string{"crane"}})
	require.NoError(t, err)
	for _, game := range report.Games {
		assert.Equal(t, "crane", game.Guesses[0])
	}
}

func TestRunUnknownFirst(t *testing.T) {
	lex := lexicon.New(lexicon.Default())
	_, err := Run(context.Background(), lex, targets(5), Config{First: []string{"zzzzz"}})
	assert.ErrorIs(t, err, predictor.ErrUnknownGuess)
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Run(ctx, lexicon.New(lexicon.Default()), targets(5), Config{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestReport(t *testing.T) {
	report := NewReport([]Game{
		{Target: "crane", Guesses: []string{"slate", "crane"}, Outcome: predictor.Victory},
		{Target: "oxbow", Guesses: []string{"slate", "crane", "moist", "lobby", "robot", "toxic"}, Outcome: predictor.Loss},
		{Target: "slate", Guesses: []string{"slate"}, Outcome: predictor.Victory},
		{Target: "moist", Guesses: []string{"slate", "crane", "moist"}, Outcome: predictor.Victory},
	})
	assert.Equal(t, 3, report.Wins)
	assert.Equal(t, 1, report.Losses)
	assert.Equal(t, 0.25, report.FailureRate())
	assert.Equal(t, 2.0, report.AverageRounds())
	assert.Equal(t, map[int]int{1: 1, 2: 1, 3: 1}, report.Rounds)
	require.Len(t, report.Failed(), 1)
	assert.Equal(t, "oxbow", report.Failed()[0].Target)

	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf))
	assert.Equal(t, `games: 4 pass: 3 fail: 1 failure rate: 25.00% average rounds: 2.00
1 1
2 1
3 1
DNF 1
oxbow: slate crane moist lobby robot toxic
`, buf.String())
}

func TestEmptyReport(t *testing.T) {
	report := NewReport(nil)
	assert.Zero(t, report.FailureRate())
	assert.Zero(t, report.AverageRounds())
	assert.Empty(t, report.Failed())
}

func BenchmarkSimulate(b *testing.B) {
	lex := lexicon.New(lexicon.Default())
	tg := targets(20)
	for b.Loop() {
		Run(context.Background(), lex, tg, Config{Seed: 1})
	}
}
