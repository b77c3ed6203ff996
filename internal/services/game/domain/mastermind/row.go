package mastermind

import (
	apperrors "github.com/fridge-dev/frj-game-ngn-sub000/internal/platform/errors"
)

// Color is a peg color. ColorNone marks an empty slot.
type Color int

const (
	ColorNone   Color = 0
	ColorRed    Color = 1
	ColorGreen  Color = 2
	ColorBlue   Color = 3
	ColorYellow Color = 4
	ColorOrange Color = 5
	ColorPurple Color = 6
)

// NumColors is the number of placeable colors.
const NumColors = 6

// RowLength is the number of pegs in a password or guess.
const RowLength = 4

// Valid reports whether c is a placeable color.
func (c Color) Valid() bool {
	return c >= ColorRed && c <= ColorPurple
}

// Row is an ordered set of pegs.
type Row []Color

// NewRow returns an empty row.
func NewRow() Row {
	return make(Row, RowLength)
}

// Complete reports whether every slot holds a color.
func (r Row) Complete() bool {
	if len(r) == 0 {
		return false
	}
	for _, c := range r {
		if c == ColorNone {
			return false
		}
	}
	return true
}

// Score is the feedback for one guess.
type Score struct {
	// Correct counts pegs with the right color in the right slot.
	Correct int
	// WrongSlot counts remaining pegs whose color appears elsewhere in the
	// password, each password peg matched at most once.
	WrongSlot int
}

// Solved reports whether the score is a full match for a row of length n.
func (s Score) Solved(n int) bool {
	return s.Correct == n
}

// Compare scores guess against password in one pass.
func Compare(guess, password Row) (Score, error) {
	if len(guess) != len(password) {
		return Score{}, apperrors.Newf(apperrors.CodeRowLengthMismatch, "guess has %d pegs, password has %d", len(guess), len(password))
	}
	var score Score
	unmatchedGuess := map[Color]int{}
	unmatchedPassword := map[Color]int{}
	for i := range guess {
		if guess[i] == password[i] {
			score.Correct++
			continue
		}
		unmatchedGuess[guess[i]]++
		unmatchedPassword[password[i]]++
	}
	for c, n := range unmatchedGuess {
		score.WrongSlot += min(n, unmatchedPassword[c])
	}
	return score, nil
}
