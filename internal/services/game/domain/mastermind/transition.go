package mastermind

import (
	apperrors "github.com/fridge-dev/frj-game-ngn-sub000/internal/platform/errors"
)

// SetPeg places color at index of the caller's editable row: the password
// while preparing, the draft guess while active. ColorNone clears the slot.
func SetPeg(s State, playerID string, index int, color Color) (State, error) {
	next := s.clone()
	mine, _, err := next.sides(playerID)
	if err != nil {
		return s, err
	}
	if index < 0 || index >= RowLength {
		return s, apperrors.Newf(apperrors.CodeInvalidPegIndex, "peg index %d out of range", index)
	}
	if color != ColorNone && !color.Valid() {
		return s, apperrors.Newf(apperrors.CodeInvalidColor, "unknown color %d", int(color))
	}

	switch mine.Phase {
	case SidePreparing:
		if mine.PasswordLocked {
			return s, apperrors.New(apperrors.CodePasswordLocked, "password already locked")
		}
		mine.Password[index] = color
	case SideActive:
		mine.Draft[index] = color
	default:
		return s, apperrors.New(apperrors.CodeSideDone, "side already completed")
	}
	return next, nil
}

// CommitRow locks the caller's password or submits the draft as a guess.
//
// When the second password is locked both sides become active. A guess is
// scored against the opponent's password; an exact match completes the side.
func CommitRow(s State, playerID string) (State, error) {
	next := s.clone()
	mine, theirs, err := next.sides(playerID)
	if err != nil {
		return s, err
	}

	switch mine.Phase {
	case SidePreparing:
		if mine.PasswordLocked {
			return s, apperrors.New(apperrors.CodePasswordLocked, "password already locked")
		}
		if !mine.Password.Complete() {
			return s, apperrors.New(apperrors.CodeRowIncomplete, "password has empty pegs")
		}
		mine.PasswordLocked = true
		if theirs.PasswordLocked {
			mine.Phase = SideActive
			theirs.Phase = SideActive
		}
	case SideActive:
		if !mine.Draft.Complete() {
			return s, apperrors.New(apperrors.CodeRowIncomplete, "guess has empty pegs")
		}
		score, err := Compare(mine.Draft, theirs.Password)
		if err != nil {
			return s, err
		}
		mine.Guesses = append(mine.Guesses, Guess{Row: mine.Draft, Score: score})
		mine.Draft = NewRow()
		if score.Solved(RowLength) {
			mine.Phase = SideCompleted
		}
	default:
		return s, apperrors.New(apperrors.CodeSideDone, "side already completed")
	}
	return next, nil
}
