//go:build linux

package ioservice_test

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/faizol/ioservice"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T, opts ...ioservice.Option) *ioservice.Service {
	t.Helper()
	svc, err := ioservice.New(opts...)
	if err != nil {
		t.Skipf("io_uring unavailable in this environment: %v", err)
	}
	t.Cleanup(func() { _ = svc.Close() })
	return svc
}

func TestNop(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	var res int
	var resErr error
	root := ioservice.Go(func() (int, error) {
		res, resErr = svc.Nop(0).Await(ctx)
		return res, resErr
	})

	_, err := svc.Run(ctx, root)
	require.NoError(t, err)
	require.NoError(t, resErr)
	require.Equal(t, 0, res)
}

func TestWriteThenRead(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer r.Close()
	defer w.Close()

	payload := []byte("hello io_uring")
	out := make([]byte, len(payload))

	root := ioservice.Go(func() (int, error) {
		n, wErr := svc.Write(int(w.Fd()), payload, ^uint64(0), 0).Await(ctx)
		if wErr != nil {
			return n, wErr
		}
		return svc.Read(int(r.Fd()), out, ^uint64(0), 0).Await(ctx)
	})

	n, err := svc.Run(ctx, root)
	require.NoError(t, err)
	require.Equal(t, len(payload), n)
	require.Equal(t, payload, out)
}

func TestTimeoutExpires(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	var resErr error
	root := ioservice.Go(func() (int, error) {
		_, resErr = svc.Timeout(20*time.Millisecond, 0, 0).Await(ctx)
		return 0, resErr
	})

	start := time.Now()
	_, err := svc.Run(ctx, root)
	elapsed := time.Since(start)

	require.NoError(t, err)
	require.ErrorIs(t, resErr, ioservice.ErrTimerExpired)
	require.GreaterOrEqual(t, elapsed, 15*time.Millisecond)
}

// TestLinkTimeoutCancelsLinkedPoll drives a Poll against the read end of a
// pipe with no writer (never becomes readable) linked to a short timeout.
// The timeout fires first, the kernel cancels the linked poll, and its
// Awaiter surfaces ErrCanceled while the timeout's own Awaiter surfaces
// ErrTimerExpired.
func TestLinkTimeoutCancelsLinkedPoll(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer r.Close()
	defer w.Close()

	var pollErr, timeoutErr error
	root := ioservice.Go(func() (int, error) {
		pollAwaiter := svc.Poll(int(r.Fd()), 0x1, ioservice.FlagIOLink)
		timeoutAwaiter := svc.LinkTimeout(20*time.Millisecond, 0)

		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, pollErr = pollAwaiter.Await(ctx)
		}()
		go func() {
			defer wg.Done()
			_, timeoutErr = timeoutAwaiter.Await(ctx)
		}()
		wg.Wait()
		return 0, nil
	})

	_, err = svc.Run(ctx, root)
	require.NoError(t, err)
	require.ErrorIs(t, pollErr, ioservice.ErrCanceled)
	require.ErrorIs(t, timeoutErr, ioservice.ErrTimerExpired)
}

// neverDoneTask is a RootTask that never reports completion, used to
// exercise Run's own context-cancellation branch in isolation.
type neverDoneTask struct{}

func (neverDoneTask) Done() bool           { return false }
func (neverDoneTask) Result() (int, error) { return 0, nil }

func TestContextCancelStopsRun(t *testing.T) {
	svc := newTestService(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Run(ctx, neverDoneTask{})
	require.ErrorIs(t, err, context.Canceled)
}

// TestSubmissionQueuePressureFlush drives more concurrent Nops than the
// ring has room for (depth 4, 10 operations) so that at least one of them
// must hit acquireSQE's flush-and-retry path rather than a plain GetSQE hit.
func TestSubmissionQueuePressureFlush(t *testing.T) {
	svc := newTestService(t, ioservice.WithEntries(4))
	ctx := context.Background()

	const n = 10
	root := ioservice.Go(func() (int, error) {
		var wg sync.WaitGroup
		errs := make(chan error, n)
		for i := 0; i < n; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := svc.Nop(0).Await(ctx)
				errs <- err
			}()
		}
		wg.Wait()
		close(errs)
		for err := range errs {
			if err != nil {
				return 0, err
			}
		}
		return n, nil
	})

	result, err := svc.Run(ctx, root)
	require.NoError(t, err)
	require.Equal(t, n, result)
}
