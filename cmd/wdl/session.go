package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/powellquiring/wordlesolver/feedback"
	"github.com/powellquiring/wordlesolver/predictor"
)

// normalize accepts wmc or ryg responses, anything unparsable is passed on for the predictor to reject
func normalize(response string) string {
	response = strings.ToLower(strings.TrimSpace(response))
	if fb, err := feedback.ParseAny(response); err == nil {
		return fb.String()
	}
	return response
}

type prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func (p prompter) ask(question string) (string, bool) {
	fmt.Fprint(p.out, question)
	if !p.scanner.Scan() {
		return "", false
	}
	return strings.ToLower(strings.TrimSpace(p.scanner.Text())), true
}

// session plays an interactive game and returns the exit code: 0 won or quit, 1 lost or out of words
func session(ctx context.Context, in io.Reader, out, errOut io.Writer, p *predictor.Predictor, l *log.Logger, verbose bool) int {
	ask := prompter{scanner: bufio.NewScanner(in), out: out}
	for ctx.Err() == nil {
		fmt.Fprintln(out, renderTitle(p.Round()))
		if history := p.History(); len(history) > 0 {
			fmt.Fprintln(out, renderBoard(history))
		}
		suggestions := p.Predict()
		if len(suggestions) == 0 {
			fmt.Fprintln(errOut, "I ran out of words. Either your game has no solution or the word is not in my vocabulary.")
			return 1
		}
		l.Info("candidates", "words", p.Len())
		if verbose {
			fmt.Fprintln(out, renderLetters(p.Constraints()))
		}
		fmt.Fprintln(out, "Here are my suggestions:")
		fmt.Fprintln(out, renderSuggestions(suggestions))
		fmt.Fprintln(out)

		guess, response := "", ""
		for {
			var ok bool
			if guess == "" {
				if guess, ok = ask.ask("What was your guess? "); !ok {
					fmt.Fprintln(out, "Bye!")
					return 0
				}
			}
			if response == "" {
				if response, ok = ask.ask("What was the result? "); !ok {
					fmt.Fprintln(out, "Bye!")
					return 0
				}
			}
			outcome, err := p.Calibrate(guess, normalize(response))
			switch {
			case errors.Is(err, predictor.ErrInvalidFeedback):
				fmt.Fprintln(errOut, warnStyle.Render(err.Error()))
				response = ""
				continue
			case errors.Is(err, predictor.ErrUnknownGuess):
				fmt.Fprintln(errOut, warnStyle.Render(err.Error()))
				guess = ""
				continue
			case err != nil:
				fmt.Fprintln(errOut, err)
				return 1
			}
			switch outcome {
			case predictor.Victory:
				fmt.Fprintln(out, renderBoard(p.History()))
				fmt.Fprintln(out, "You won!")
				return 0
			case predictor.Loss:
				fmt.Fprintln(errOut, "You lost. The game has already ended.")
				return 1
			}
			break
		}
	}
	return 0
}
