package reaper

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omegaupload/omegaupload/internal/logger"
	"github.com/omegaupload/omegaupload/internal/paste"
	"github.com/omegaupload/omegaupload/internal/store"
)

func mustEncode(t *testing.T, p paste.Policy, ciphertext []byte) []byte {
	t.Helper()
	return paste.Encode(paste.Record{Policy: p, Ciphertext: ciphertext})
}

func TestSweep_DeletesExpiredUnixTimeRecord(t *testing.T) {
	s, err := store.New(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	ctx := context.Background()

	expired := paste.Policy{Tag: paste.UnixTime, Deadline: time.Now().Add(-time.Hour)}
	require.NoError(t, s.PutIfAbsent(ctx, "gone", mustEncode(t, expired, []byte("ciphertext"))))

	live := paste.Policy{Tag: paste.UnixTime, Deadline: time.Now().Add(time.Hour)}
	require.NoError(t, s.PutIfAbsent(ctx, "alive", mustEncode(t, live, []byte("ciphertext"))))

	r := New(s, time.Hour, logger.Nop())
	r.sweep(ctx)

	_, err = s.Get(ctx, "gone")
	assert.ErrorIs(t, err, store.ErrNotFound)

	_, err = s.Get(ctx, "alive")
	assert.NoError(t, err)
}

func TestSweep_LeavesBurnAfterReadingAlone(t *testing.T) {
	s, err := store.New(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	ctx := context.Background()

	burn := paste.Policy{Tag: paste.BurnAfterReading}
	require.NoError(t, s.PutIfAbsent(ctx, "burn", mustEncode(t, burn, []byte("ciphertext"))))

	r := New(s, time.Hour, logger.Nop())
	r.sweep(ctx)

	_, err = s.Get(ctx, "burn")
	assert.NoError(t, err)
}

func TestSweep_DeletesCorruptRecord(t *testing.T) {
	s, err := store.New(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	ctx := context.Background()

	require.NoError(t, s.PutIfAbsent(ctx, "bad", []byte("short")))

	r := New(s, time.Hour, logger.Nop())
	r.sweep(ctx)

	_, err = s.Get(ctx, "bad")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestRunServer_ShutdownStopsLoop(t *testing.T) {
	s, err := store.New(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	r := New(s, time.Millisecond, logger.Nop())

	runDone := make(chan struct{})
	go func() {
		r.RunServer()
		close(runDone)
	}()

	// Give the loop a moment to actually start ticking before shutting down.
	time.Sleep(5 * time.Millisecond)
	r.Shutdown()

	select {
	case <-runDone:
	case <-time.After(time.Second):
		t.Fatal("RunServer did not return after Shutdown")
	}
}
