// Package feedback holds the per-letter game response for a guess.
package feedback

import (
	"errors"
	"fmt"

	"github.com/powellquiring/wordlesolver/lexicon"
)

// Code is the game's verdict for one letter of a guess
type Code uint8

const (
	Wrong Code = iota
	Misplaced
	Correct
)

var (
	ErrLength = errors.New("feedback length")
	ErrCode   = errors.New("feedback code")
)

// Feedback has one Code for each letter of the guess
type Feedback [lexicon.WordLength]Code

// codes accepted by Parse: w wrong, m misplaced, c correct
const codes = "wmc"

// colors accepted by ParseColors: r red, y yellow, g green
const colors = "ryg"

func parse(s string, alphabet string) (Feedback, error) {
	var ret Feedback
	if len(s) != lexicon.WordLength {
		return ret, fmt.Errorf("%w: %q must be %d characters long", ErrLength, s, lexicon.WordLength)
	}
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case alphabet[Wrong]:
			ret[i] = Wrong
		case alphabet[Misplaced]:
			ret[i] = Misplaced
		case alphabet[Correct]:
			ret[i] = Correct
		default:
			return Feedback{}, fmt.Errorf("%w: %q must only contain %q, %q or %q", ErrCode, s, alphabet[Correct], alphabet[Misplaced], alphabet[Wrong])
		}
	}
	return ret, nil
}

// Parse reads a response like "cmwwc".
func Parse(s string) (Feedback, error) {
	return parse(s, codes)
}

// ParseColors reads a response written with tile colors like "gyrrg".
func ParseColors(s string) (Feedback, error) {
	return parse(s, colors)
}

// ParseAny accepts either alphabet.
func ParseAny(s string) (Feedback, error) {
	ret, err := Parse(s)
	if err == nil || errors.Is(err, ErrLength) {
		return ret, err
	}
	if colored, colorErr := ParseColors(s); colorErr == nil {
		return colored, nil
	}
	return ret, err
}

// Solved is true when every letter is Correct.
func (f Feedback) Solved() bool {
	for _, code := range f {
		if code != Correct {
			return false
		}
	}
	return true
}

// Busted is true when every letter is Wrong.
func (f Feedback) Busted() bool {
	for _, code := range f {
		if code != Wrong {
			return false
		}
	}
	return true
}

func (f Feedback) String() string {
	ret := make([]byte, len(f))
	for i, code := range f {
		ret[i] = code.Byte()
	}
	return string(ret)
}

// Colors writes the feedback with the r/y/g tile colors.
func (f Feedback) Colors() string {
	ret := make([]byte, len(f))
	for i, code := range f {
		ret[i] = colors[code]
	}
	return string(ret)
}

func (c Code) Byte() byte {
	if int(c) >= len(codes) {
		panic(fmt.Sprintf("can not format Code: %d", c))
	}
	return codes[c]
}

func (c Code) String() string {
	switch c {
	case Wrong:
		return "wrong"
	case Misplaced:
		return "misplaced"
	case Correct:
		return "correct"
	}
	return fmt.Sprintf("Code(%d)", c)
}
