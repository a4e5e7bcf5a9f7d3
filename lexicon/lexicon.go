// Package lexicon supplies the vocabulary of fixed-length words and the letter
// frequency table the predictor ranks them with.
package lexicon

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"
)

// WordLength is the number of letters in every word of the game.
const WordLength = 5

// DefaultPath is the system word list read when no other path is configured.
const DefaultPath = "/usr/share/dict/words"

//go:embed words.txt
var embeddedWords string

// Valid reports whether word can be played: WordLength lowercase letters a-z.
func Valid(word string) bool {
	if len(word) != WordLength {
		return false
	}
	for i := 0; i < len(word); i++ {
		if word[i] < 'a' || word[i] > 'z' {
			return false
		}
	}
	return true
}

// Read returns the playable words of r, one candidate per line, in input order.
// Names, plurals with apostrophes, accented and wrong-length words are dropped, duplicates keep the first occurrence.
func Read(r io.Reader) ([]string, error) {
	words := make([]string, 0, 4096)
	seen := make(map[string]struct{}, 4096)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if !Valid(word) {
			continue
		}
		if _, ok := seen[word]; ok {
			continue
		}
		seen[word] = struct{}{}
		words = append(words, word)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read word list: %w", err)
	}
	return words, nil
}

// Load reads the word list stored at path.
func Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open word list: %w", err)
	}
	defer f.Close()
	words, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return words, nil
}

// Default returns the word list compiled into the binary.
func Default() []string {
	words, err := Read(strings.NewReader(embeddedWords))
	if err != nil {
		panic("embedded word list: " + err.Error())
	}
	return words
}

// Lexicon is a vocabulary together with its letter frequency table.
type Lexicon struct {
	Words     []string
	Frequency *Frequency
}

// New computes the frequency table of words.
func New(words []string) *Lexicon {
	return &Lexicon{Words: words, Frequency: Distribution(words)}
}

// Open loads the word list at path; an empty path tries DefaultPath and then falls back to the
// embedded list. count > 0 keeps only the first count words.
func Open(path string, count int) (*Lexicon, string, error) {
	var words []string
	source := path
	switch {
	case path != "":
		var err error
		words, err = Load(path)
		if err != nil {
			return nil, "", err
		}
	default:
		var err error
		source = DefaultPath
		words, err = Load(DefaultPath)
		if err != nil || len(words) == 0 {
			source = "embedded"
			words = Default()
		}
	}
	if count > 0 && count < len(words) {
		words = words[:count]
	}
	return New(words), source, nil
}
