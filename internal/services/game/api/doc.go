// Package api contains the game session server's transport surfaces.
//
// Subpackages:
//   - grpc/game: lobby streams, game start and the bidirectional game data stream
//   - grpc/metadata: request ID and locale resolution
//   - grpc/interceptors: access logging
package api
