package push

import (
	"errors"
	"sync"
	"testing"
)

func TestSendAndReceive(t *testing.T) {
	ch := NewChannel[int]("conn-1", 2)
	if err := ch.Send(1); err != nil {
		t.Fatalf("send: %v", err)
	}
	if err := ch.Send(2); err != nil {
		t.Fatalf("send: %v", err)
	}
	if got := <-ch.C(); got != 1 {
		t.Fatalf("got %d, want 1", got)
	}
	if got := <-ch.C(); got != 2 {
		t.Fatalf("got %d, want 2", got)
	}
	if ch.ID() != "conn-1" {
		t.Fatalf("id = %q", ch.ID())
	}
}

func TestSendFullDoesNotBlock(t *testing.T) {
	ch := NewChannel[string]("c", 1)
	if err := ch.Send("a"); err != nil {
		t.Fatalf("send: %v", err)
	}
	if err := ch.Send("b"); !errors.Is(err, ErrFull) {
		t.Fatalf("expected ErrFull, got %v", err)
	}
}

func TestSendAfterClose(t *testing.T) {
	ch := NewChannel[string]("c", 4)
	ch.Close()
	ch.Close()
	if !ch.Closed() {
		t.Fatal("expected closed")
	}
	if err := ch.Send("a"); !errors.Is(err, ErrClosed) {
		t.Fatalf("expected ErrClosed, got %v", err)
	}
	select {
	case <-ch.Done():
	default:
		t.Fatal("expected done to be closed")
	}
}

func TestConcurrentSendAndClose(t *testing.T) {
	ch := NewChannel[int]("c", 8)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(v int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = ch.Send(v)
			}
		}(i)
	}
	ch.Close()
	wg.Wait()
	if err := ch.Send(1); !errors.Is(err, ErrClosed) {
		t.Fatalf("expected ErrClosed, got %v", err)
	}
}

func TestNewChannelMinimumBuffer(t *testing.T) {
	ch := NewChannel[int]("c", 0)
	if err := ch.Send(1); err != nil {
		t.Fatalf("expected zero size to be raised to one: %v", err)
	}
}
