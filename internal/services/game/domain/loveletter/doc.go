// Package loveletter implements the turn state machine for the card game.
//
// The deck holds sixteen cards across eight ranks. Each round one card is set
// aside face down and every player is dealt one card. On their turn a player
// holds two cards, the one in hand and the top of the draw pile, and plays
// one of them in two steps: Stage names the card, optional selections name a
// target player and guessed card, and Commit applies the card's effect.
//
// All transitions are pure: they take a State by value and return a new one,
// never mutating the input. A rejected transition returns the input state
// unchanged together with a domain error, so the caller can keep the old
// value without copying.
//
// A session has no terminal state. When a round ends the winners are credited
// and a fresh round is dealt with the same turn order.
package loveletter
