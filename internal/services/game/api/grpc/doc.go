// Package grpc groups the gRPC front door of the game session server.
package grpc
