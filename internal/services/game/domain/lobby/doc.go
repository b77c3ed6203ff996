// Package lobby models the pre-game phase shared by every game type.
//
// A lobby collects players until its leader starts the game. The first
// player to join is the leader for the lobby's whole lifetime; nobody else
// can start it. Joining again with the same player id is a reconnect: the
// new push channel replaces the old one and the player gets a fresh JoinAck.
//
// Lobbies are owned by the registry actor and are not safe for concurrent use.
package lobby
