// Package game exposes game.v1.GameService over the session registry.
//
// Lobby RPCs stream roster updates until the game starts. The data stream
// carries player actions in and personalised state snapshots out, driven by
// two loops that share one push channel.
package game
