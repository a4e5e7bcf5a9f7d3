package lexicon

// Frequency counts how often each letter appears at each position.
//
//	freq['s'-'a'][4] is the number of words whose last letter is 's'
type Frequency [26][WordLength]int

// Distribution calculates the letter frequency table of words. Words that are not Valid are skipped.
func Distribution(words []string) *Frequency {
	ret := &Frequency{}
	for _, word := range words {
		if !Valid(word) {
			continue
		}
		for position := 0; position < WordLength; position++ {
			ret[word[position]-'a'][position]++
		}
	}
	return ret
}

// Count returns how often letter appears at position, 0 for anything out of range.
func (f *Frequency) Count(letter byte, position int) int {
	if f == nil || letter < 'a' || letter > 'z' || position < 0 || position >= WordLength {
		return 0
	}
	return f[letter-'a'][position]
}

// Rank scores how much a word is made of frequently appearing letters in their usual positions.
// Every letter adds at least 1 so rare letters never zero out a word.
func Rank(word string, freq *Frequency) int {
	score := 0
	for position := 0; position < len(word); position++ {
		score += max(1, freq.Count(word[position], position))
	}
	return score
}
