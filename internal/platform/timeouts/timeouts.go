// Package timeouts defines shared timeout constants used by the game server
// and its clients.
package timeouts

import "time"

// GRPCDial caps the wait time when dialing a gRPC peer and waiting for health.
const GRPCDial = 2 * time.Second

// ReadHeader limits how long the metrics HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long servers wait for in-flight work during graceful
// shutdown before forcing a stop.
const Shutdown = 5 * time.Second

