// Package push provides the outbound channel a stream driver hands to the
// registry so the actor can deliver messages to one connected player.
//
// Sends never block the actor. A full buffer or a channel whose consumer has
// gone away fails immediately; the registry logs the failure and moves on.
// That failure is the only disconnect signal the actor ever sees.
package push

import (
	"errors"
	"sync"
)

var (
	// ErrClosed reports a send to a channel whose consumer has left.
	ErrClosed = errors.New("push channel closed")
	// ErrFull reports a send that would have blocked.
	ErrFull = errors.New("push channel full")
)

// Channel is a buffered single-consumer outbound queue.
//
// Producers call Send. The consumer reads C until it calls Close or Done
// fires. The underlying buffer is never closed, so Send cannot panic after
// the consumer leaves.
type Channel[T any] struct {
	id        string
	buf       chan T
	done      chan struct{}
	closeOnce sync.Once
}

// NewChannel creates a channel with the given buffer size. id names the
// connection in logs.
func NewChannel[T any](id string, size int) *Channel[T] {
	if size < 1 {
		size = 1
	}
	return &Channel[T]{
		id:   id,
		buf:  make(chan T, size),
		done: make(chan struct{}),
	}
}

// ID returns the connection id given at construction.
func (c *Channel[T]) ID() string {
	return c.id
}

// Send enqueues v without blocking.
func (c *Channel[T]) Send(v T) error {
	select {
	case <-c.done:
		return ErrClosed
	default:
	}
	select {
	case c.buf <- v:
		return nil
	case <-c.done:
		return ErrClosed
	default:
		return ErrFull
	}
}

// C is the consumer's receive side.
func (c *Channel[T]) C() <-chan T {
	return c.buf
}

// Done is closed once the consumer calls Close.
func (c *Channel[T]) Done() <-chan struct{} {
	return c.done
}

// Close marks the consumer as gone. It is safe to call more than once.
func (c *Channel[T]) Close() {
	c.closeOnce.Do(func() {
		close(c.done)
	})
}

// Closed reports whether Close has been called.
func (c *Channel[T]) Closed() bool {
	select {
	case <-c.done:
		return true
	default:
		return false
	}
}
