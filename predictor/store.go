package predictor

import (
	"slices"

	"github.com/bits-and-blooms/bitset"
)

// WordScore is a candidate word and its rank, higher is better.
type WordScore struct {
	Word  string
	Score int
}

type candidate struct {
	word  string
	rank  int
	index uint // position of word in the vocabulary
}

// store holds the candidates sorted by rank, highest first
type store struct {
	candidates []candidate
}

func newStore(words []string, rank func(string) int) *store {
	ret := &store{candidates: make([]candidate, len(words))}
	for i, word := range words {
		ret.candidates[i] = candidate{word: word, rank: rank(word), index: uint(i)}
	}
	ret.sort()
	return ret
}

// sort by rank descending, equal ranks keep their order
func (s *store) sort() {
	slices.SortStableFunc(s.candidates, func(a, b candidate) int {
		return b.rank - a.rank
	})
}

func (s *store) len() int {
	return len(s.candidates)
}

func (s *store) highest() int {
	ret := 0
	for i, c := range s.candidates {
		if i == 0 || c.rank > ret {
			ret = c.rank
		}
	}
	return ret
}

// mean rank truncated to an integer, 0 for an empty store
func (s *store) mean() int {
	if len(s.candidates) == 0 {
		return 0
	}
	sum := 0
	for _, c := range s.candidates {
		sum += c.rank
	}
	return sum / len(s.candidates)
}

// members returns the vocabulary indices of the candidates
func (s *store) members(size uint) *bitset.BitSet {
	ret := bitset.New(size)
	for _, c := range s.candidates {
		ret.Set(c.index)
	}
	return ret
}

// retain keeps the candidates whose index is in alive and returns the words dropped
func (s *store) retain(alive *bitset.BitSet) []string {
	dropped := []string{}
	kept := s.candidates[:0]
	for _, c := range s.candidates {
		if alive.Test(c.index) {
			kept = append(kept, c)
		} else {
			dropped = append(dropped, c.word)
		}
	}
	clear(s.candidates[len(kept):])
	s.candidates = kept
	return dropped
}

func (s *store) top(n int) []WordScore {
	n = min(max(n, 0), len(s.candidates))
	ret := make([]WordScore, n)
	for i := range ret {
		ret[i] = WordScore{Word: s.candidates[i].word, Score: s.candidates[i].rank}
	}
	return ret
}

func (s *store) words(n int) []string {
	n = min(max(n, 0), len(s.candidates))
	ret := make([]string, n)
	for i := range ret {
		ret[i] = s.candidates[i].word
	}
	return ret
}

func (s *store) contains(word string) bool {
	return slices.ContainsFunc(s.candidates, func(c candidate) bool { return c.word == word })
}
