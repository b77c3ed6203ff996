// Package registry owns every lobby and in-progress game in the process.
//
// A single actor goroutine (Run) holds all session state and processes events
// from a bounded mailbox one at a time, so no session state is ever shared
// between goroutines. Callers enqueue events through context-aware methods;
// producers block while the mailbox is full. Results come back either through
// a single-use reply channel (StartLobby) or as pushes on the caller's
// outbound channel (everything else).
//
// If the actor stops, pending and future calls fail with an Internal error
// instead of hanging. A Sweeper periodically asks the actor to evict sessions
// that have seen no events within the expiry window.
package registry
