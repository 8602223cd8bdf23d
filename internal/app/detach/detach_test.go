package detach

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGo_RunsFunctionOnItsOwnGoroutine(t *testing.T) {
	done := make(chan struct{})

	Go("test", func(ctx context.Context) error {
		close(done)
		return nil
	})

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("detached function never ran")
	}
}

func TestGo_ContextIsDetachedButBounded(t *testing.T) {
	type observed struct {
		deadline    time.Time
		hasDeadline bool
		err         error
	}
	got := make(chan observed, 1)

	// inspect the context while fn is still running; once fn returns the
	// helper cancels it
	Go("test", func(ctx context.Context) error {
		deadline, ok := ctx.Deadline()
		got <- observed{deadline: deadline, hasDeadline: ok, err: ctx.Err()}
		return nil
	})

	select {
	case o := <-got:
		require.True(t, o.hasDeadline, "detached context must carry a deadline")
		assert.WithinDuration(t, time.Now().Add(Timeout), o.deadline, 5*time.Second)
		assert.NoError(t, o.err)
	case <-time.After(2 * time.Second):
		t.Fatal("detached function never ran")
	}
}

func TestGo_ErrorsAndPanicsAreSwallowed(t *testing.T) {
	ran := make(chan struct{})

	// neither may crash the process or reach the caller
	Go("failing", func(ctx context.Context) error {
		return errors.New("storage down")
	})
	Go("panicking", func(ctx context.Context) error {
		defer close(ran)
		panic("boom")
	})

	select {
	case <-ran:
	case <-time.After(2 * time.Second):
		t.Fatal("panicking function never ran")
	}
	// give the recover deferred in Go a moment to complete
	time.Sleep(50 * time.Millisecond)
}
