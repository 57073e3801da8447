package cli

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
)

// Shutdown is a context cancelled by the first SIGINT or SIGTERM the process receives.
// Unlike signal.NotifyContext it remembers which signal arrived, so callers can log it.
type Shutdown struct {
	context.Context
	cancel context.CancelFunc
	sigCh  chan os.Signal
	once   sync.Once

	mu     sync.Mutex
	caught os.Signal
}

// OnShutdown starts listening for termination signals until Stop is called
// or parent is done.
func OnShutdown(parent context.Context) *Shutdown {
	ctx, cancel := context.WithCancel(parent)
	s := &Shutdown{
		Context: ctx,
		cancel:  cancel,
		sigCh:   make(chan os.Signal, 1),
	}
	signal.Notify(s.sigCh, os.Interrupt, syscall.SIGTERM)

	go func() {
		select {
		case sig := <-s.sigCh:
			s.mu.Lock()
			s.caught = sig
			s.mu.Unlock()
		case <-ctx.Done():
		}
		s.Stop()
	}()
	return s
}

// Stop releases the signal handler and cancels the context. It is safe to call repeatedly.
func (s *Shutdown) Stop() {
	s.once.Do(func() {
		signal.Stop(s.sigCh)
		s.cancel()
	})
}

// Caught returns the signal that ended the context, or nil.
func (s *Shutdown) Caught() os.Signal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.caught
}
