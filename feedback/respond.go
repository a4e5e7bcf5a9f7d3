package feedback

// Respond returns the game's feedback for guess when the hidden word is solution.
//
// Exact matches are Correct first. The solution letters left over are then handed out left to
// right as Misplaced, so a guess letter repeated more often than the solution holds it comes
// back Wrong for the extra copies.
func Respond(solution, guess string) Feedback {
	var ret Feedback
	solutionNotCorrect := [26]int{}
	for i := range ret {
		if solution[i] == guess[i] {
			ret[i] = Correct
		} else {
			solutionNotCorrect[solution[i]-'a']++
		}
	}
	// turn the wrong to misplaced if in the word but not correct
	for i := range ret {
		if ret[i] == Correct {
			continue
		}
		letter := guess[i] - 'a'
		if solutionNotCorrect[letter] > 0 {
			ret[i] = Misplaced
			solutionNotCorrect[letter]--
		}
	}
	return ret
}
