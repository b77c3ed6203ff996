// Package server composes the game session server.
//
// It wires the registry actor, its sweeper, the gRPC front door with health
// reporting and an optional admin HTTP listener into one run group. Any
// member stopping unexpectedly brings the whole server down.
package server
