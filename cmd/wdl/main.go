package main

import (
	"context"
	"fmt"
	"math/rand/v2"
	"os"
	"runtime/pprof"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3" // imports as package "cli"

	"github.com/powellquiring/wordlesolver/config"
	"github.com/powellquiring/wordlesolver/feedback"
	"github.com/powellquiring/wordlesolver/lexicon"
	"github.com/powellquiring/wordlesolver/logger"
	"github.com/powellquiring/wordlesolver/predictor"
	"github.com/powellquiring/wordlesolver/simulate"
)

// playWordle with guess/answer pairs provided
func playWordle(globalConfig *GlobalConfiguration, cmd *cli.Command, pairs []string) error {
	w := cmd.Root().Writer
	p := globalConfig.newPredictor()
	outcome := predictor.Continue
	for i := 0; i < len(pairs); i += 2 {
		guess, answer := strings.ToLower(pairs[i]), pairs[i+1]
		fb, err := feedback.ParseAny(strings.ToLower(answer))
		if err != nil {
			return cli.Exit(fmt.Sprintf("answer %s: %v", answer, err), 1)
		}
		outcome, err = p.Calibrate(guess, fb.String())
		if err != nil {
			return cli.Exit(err.Error(), 1)
		}
	}
	switch outcome {
	case predictor.Victory:
		fmt.Fprintln(w, "solved in", len(p.History()))
		return nil
	case predictor.Loss:
		return cli.Exit("out of rounds", 1)
	}
	fmt.Fprint(w, strings.Join(p.Predict(), " "), ":")
	for _, ws := range p.Candidates() {
		fmt.Fprint(w, " ", ws.Word)
	}
	fmt.Fprintln(w)
	return nil
}

func simulateGames(ctx context.Context, globalConfig *GlobalConfiguration, cmd *cli.Command) error {
	cfg := globalConfig.config.Sim
	if cmd.IsSet("trials") {
		cfg.Trials = cmd.Int("trials")
	}
	if cmd.IsSet("workers") {
		cfg.Workers = cmd.Int("workers")
	}
	if cmd.IsSet("dedup-openers") {
		cfg.DedupOpeners = cmd.Bool("dedup-openers")
	}
	targets := cmd.Args().Slice()
	switch {
	case len(targets) > 0:
	case cfg.Target != "":
		targets = []string{cfg.Target}
	default:
		targets = globalConfig.lexicon.Words
	}
	for _, target := range targets {
		if !lexicon.Valid(target) {
			return cli.Exit("target is not a word: "+target, 1)
		}
	}
	report, err := simulate.Run(ctx, globalConfig.lexicon, targets, simulate.Config{
		Trials:       cfg.Trials,
		Workers:      cfg.Workers,
		Suggestions:  globalConfig.suggestions,
		First:        cmd.StringSlice("first"),
		DedupOpeners: cfg.DedupOpeners,
		Seed:         globalConfig.seed,
		Progress:     globalConfig.progress,
		Logger:       globalConfig.log,
	})
	if err != nil {
		return err
	}
	return report.Write(cmd.Root().Writer)
}

func first(globalConfig *GlobalConfiguration, cmd *cli.Command) {
	p := globalConfig.newPredictor()
	openers := map[string]bool{}
	for _, word := range p.Openers() {
		openers[word] = true
	}
	for _, ws := range p.Top(p.Len()) {
		if openers[ws.Word] {
			fmt.Fprintln(cmd.Root().Writer, ws.Word, ws.Score)
		}
	}
}

func cpuProfile() func() {
	f, err := os.Create("cpu.prof")
	if err != nil {
		panic(err)
	}
	pprof.StartCPUProfile(f)
	return pprof.StopCPUProfile
}

// showConfig prints the settings in effect after flags and environment are applied
func showConfig(globalConfig *GlobalConfiguration, cmd *cli.Command) error {
	cfg := *globalConfig.config
	cfg.Predictor.Suggestions = globalConfig.suggestions
	return cfg.Write(cmd.Root().Writer)
}

type GlobalConfiguration struct {
	config      *config.Config
	lexicon     *lexicon.Lexicon
	log         *log.Logger
	suggestions int
	seed        uint64
	progress    bool
	verbose     int
}

func (g *GlobalConfiguration) newPredictor() *predictor.Predictor {
	return predictor.New(g.lexicon.Words, g.lexicon.Frequency,
		predictor.WithOutputSize(g.suggestions),
		predictor.WithRand(rand.New(rand.NewPCG(g.seed, 0))),
		predictor.WithLogger(g.log),
	)
}

// flags shared by every command, filled in by the cli
type globalFlags struct {
	count       int
	progress    bool
	profile     bool
	dict        string
	configPath  string
	suggestions int
	seed        uint64
	verbose     int
	logLevel    string
}

// globalConfiguration resolves every setting: flag, then environment, then config file, then default
func globalConfiguration(cmd *cli.Command, flags *globalFlags) (*GlobalConfiguration, error) {
	path := flags.configPath
	if path == "" {
		path = config.DefaultPath
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, cli.Exit(err.Error(), 1)
	}
	if cmd.IsSet("dict") {
		cfg.Lexicon.Path = flags.dict
	}
	if cmd.IsSet("count") {
		cfg.Lexicon.Count = flags.count
	}
	if cmd.IsSet("suggestions") {
		cfg.Predictor.Suggestions = flags.suggestions
	}
	if cmd.IsSet("seed") {
		cfg.Predictor.Seed = flags.seed
	}
	levelName := cfg.Log.Level
	if cmd.IsSet("log-level") {
		levelName = flags.logLevel
	} else if flags.verbose > 0 {
		levelName = ""
	}
	level, err := logger.Level(levelName, flags.verbose)
	if err != nil {
		return nil, cli.Exit(err.Error(), 1)
	}
	l := logger.New(cmd.Root().ErrWriter, "wdl", level)

	lex, source, err := lexicon.Open(cfg.Lexicon.Path, cfg.Lexicon.Count)
	if err != nil {
		return nil, cli.Exit(err.Error(), 1)
	}
	l.Info("lexicon", "source", source, "words", len(lex.Words))

	seed := cfg.Predictor.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	l.Debug("seed", "seed", seed)
	return &GlobalConfiguration{
		config:      cfg,
		lexicon:     lex,
		log:         l,
		suggestions: cfg.Predictor.Suggestions,
		seed:        seed,
		progress:    flags.progress,
		verbose:     flags.verbose,
	}, nil
}

func newCommand() *cli.Command {
	flags := &globalFlags{}
	var globalConfig *GlobalConfiguration
	// loads the configuration and starts the profiler for every command
	setup := func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
		var err error
		globalConfig, err = globalConfiguration(cmd, flags)
		return ctx, err
	}
	profiled := func(action cli.ActionFunc) cli.ActionFunc {
		return func(ctx context.Context, cmd *cli.Command) error {
			if flags.profile {
				def := cpuProfile()
				defer def()
			}
			return action(ctx, cmd)
		}
	}
	return &cli.Command{
		Name:                   "wdl",
		Usage:                  "wordle solver",
		UseShortOptionHandling: true,
		Before:                 setup,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:        "count",
				Value:       0,
				Aliases:     []string{"c"},
				Usage:       "number of words, 0 is all words",
				Destination: &flags.count,
			},
			&cli.BoolFlag{
				Name:        "progress",
				Value:       false,
				Aliases:     []string{"p"},
				Usage:       "show progress bar",
				Destination: &flags.progress,
			},
			&cli.BoolFlag{
				Name:        "profile",
				Value:       false,
				Usage:       "store profile data to analyze",
				Destination: &flags.profile,
			},
			&cli.StringFlag{
				Name:        "dict",
				Usage:       "word list, one word per line, default " + lexicon.DefaultPath + " or the built in list",
				Sources:     cli.EnvVars("WDL_DICT"),
				Destination: &flags.dict,
			},
			&cli.StringFlag{
				Name:        "config",
				Usage:       "TOML configuration file",
				Value:       config.DefaultPath,
				Sources:     cli.EnvVars("WDL_CONFIG"),
				Destination: &flags.configPath,
			},
			&cli.IntFlag{
				Name:        "suggestions",
				Aliases:     []string{"n"},
				Value:       predictor.DefaultOutputSize,
				Usage:       "number of suggestions to present",
				Sources:     cli.EnvVars("WDL_SUGGESTIONS"),
				Destination: &flags.suggestions,
			},
			&cli.Uint64Flag{
				Name:        "seed",
				Usage:       "seed for the opening suggestions, 0 is random",
				Destination: &flags.seed,
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "increase logging verbosity, can be repeated",
				Config:  cli.BoolConfig{Count: &flags.verbose},
			},
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "debug, info, warn or error, overrides -v",
				Sources:     cli.EnvVars("WDL_LOG_LEVEL"),
				Destination: &flags.logLevel,
			},
		},
		Commands: []*cli.Command{
			{
				Name: "play",
				Usage: `play a game of wordle by entering pairs of [guess answer]...
				answers use c correct, m misplaced, w wrong or the tile colors g, y, r
				`,
				ArgsUsage: "guess answer [guess answer]...",
				Action: profiled(func(ctx context.Context, cmd *cli.Command) error {
					if cmd.NArg()%2 != 0 {
						return cli.Exit("must have pairs of guess answer", 1)
					} else if cmd.NArg() < 2 {
						return cli.Exit("must have at least one guess answer", 2)
					}
					return playWordle(globalConfig, cmd, cmd.Args().Slice())
				}),
			},
			{
				Name: "session",
				Usage: `session
				interactive game, suggests words and asks for the guess played and the game's answer each round
				`,
				Action: profiled(func(ctx context.Context, cmd *cli.Command) error {
					root := cmd.Root()
					code := session(ctx, root.Reader, root.Writer, root.ErrWriter, globalConfig.newPredictor(), globalConfig.log, globalConfig.verbose > 0)
					if code != 0 {
						return cli.Exit("", code)
					}
					return nil
				}),
			},
			{
				Name: "sim",
				Usage: `sim [solution] ...
				Simulate games against each solution, playing the first suggestion every round.  If no solutions are
				provided simulate all words.  All words can be cut back by using the -count global flag for testing.
				`,
				ArgsUsage: "[solution]...",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "trials",
						Value: 1,
						Usage: "games per solution",
					},
					&cli.IntFlag{
						Name:  "workers",
						Usage: "concurrent games, 0 is the number of CPUs",
					},
					&cli.StringSliceFlag{
						Usage:   "--first first1 --first first2 ...",
						Name:    "first",
						Aliases: []string{"f"},
					},
					&cli.BoolFlag{
						Name:  "dedup-openers",
						Usage: "every game opens with a different word",
					},
				},
				Action: profiled(func(ctx context.Context, cmd *cli.Command) error {
					return simulateGames(ctx, globalConfig, cmd)
				}),
			},
			{
				Name: "first",
				Usage: `first
				List the opening words with their rank
				`,
				Action: profiled(func(ctx context.Context, cmd *cli.Command) error {
					first(globalConfig, cmd)
					return nil
				}),
			},
			{
				Name: "config",
				Usage: `config
				Print the configuration in effect as TOML, save it as wdl.toml to start a config file
				`,
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return showConfig(globalConfig, cmd)
				},
			},
		},
	}
}

func main() {
	_ = godotenv.Load()
	if err := newCommand().Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
