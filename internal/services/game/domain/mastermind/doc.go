// Package mastermind implements the two-sided code-breaking board game.
//
// Each side first composes a secret password of colored pegs and locks it in.
// Once both passwords are locked, each side guesses the opponent's password
// row by row and is told how many pegs are exactly right and how many have
// the right color in the wrong slot. A side is done when a guess matches
// exactly; the game is done when both sides are.
//
// Like the card game, transitions are pure functions over State values.
package mastermind
