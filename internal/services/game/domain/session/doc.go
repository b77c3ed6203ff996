// Package session defines how game sessions are identified.
//
// Every lobby and every in-progress game is keyed by an Identifier: the
// client-chosen session id paired with the game type. Two games of different
// types may share a session id without colliding.
//
// The package holds:
//   - the closed GameType enumeration and its player-count bounds,
//   - Identifier construction and validation for inbound requests.
package session
