package detach

import (
	"context"
	"log"
	"time"
)

// Timeout bounds a detached task so a hung storage call cannot leak a
// goroutine forever. It does NOT bound the caller, who never waits.
const Timeout = 30 * time.Second

// Go starts fn on its own goroutine and returns immediately. This is the
// explicit shape of every fire-and-forget call in the promoter path: the
// caller must never be blocked or cancelled by it, and a failure is logged
// under label, not surfaced. The context handed to fn is detached from the
// request context for the same reason: the visitor navigating away must
// not cancel the write.
func Go(label string, fn func(ctx context.Context) error) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("detached %s: panic: %v", label, r)
			}
		}()

		ctx, cancel := context.WithTimeout(context.Background(), Timeout)
		defer cancel()

		if err := fn(ctx); err != nil {
			log.Printf("detached %s: %v", label, err)
		}
	}()
}
