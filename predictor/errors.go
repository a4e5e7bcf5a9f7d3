package predictor

import "errors"

var (
	// ErrInvalidFeedback is returned for a response of the wrong length or with codes other than c, m and w.
	ErrInvalidFeedback = errors.New("invalid feedback")
	// ErrUnknownGuess is returned for a guess that is not in the vocabulary.
	ErrUnknownGuess = errors.New("unknown guess")
	// ErrGameOver is returned by Calibrate once the game was won or lost.
	ErrGameOver = errors.New("game over")
)
