package allocator

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omegaupload/omegaupload/internal/store"
)

// fakeStore is a minimal in-memory implementation of store.Store, used so
// allocator tests do not need to stand up Badger.
type fakeStore struct {
	data map[string][]byte
}

func newFakeStore() *fakeStore {
	return &fakeStore{data: make(map[string][]byte)}
}

func (f *fakeStore) PutIfAbsent(_ context.Context, id string, data []byte) error {
	if _, exists := f.data[id]; exists {
		return store.ErrCollision
	}
	f.data[id] = data
	return nil
}

func (f *fakeStore) Get(_ context.Context, id string) ([]byte, error) {
	data, ok := f.data[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return data, nil
}

func (f *fakeStore) Take(_ context.Context, id string) ([]byte, error) {
	data, ok := f.data[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	delete(f.data, id)
	return data, nil
}

func (f *fakeStore) Delete(_ context.Context, id string) error {
	delete(f.data, id)
	return nil
}

func (f *fakeStore) Scan(_ context.Context, fn func(id string, data []byte) error) error {
	for id, data := range f.data {
		if err := fn(id, data); err != nil {
			return err
		}
	}
	return nil
}

func (f *fakeStore) Flush() error { return nil }
func (f *fakeStore) Close() error { return nil }

// repeatingReader yields the same byte sequence forever, used to make
// generateID deterministic in tests.
type repeatingReader struct {
	pattern []byte
	pos     int
}

func (r *repeatingReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = r.pattern[r.pos%len(r.pattern)]
		r.pos++
	}
	return len(p), nil
}

func TestAllocate_ReturnsIDOfCorrectLength(t *testing.T) {
	a := New(newFakeStore())

	id, err := a.Allocate(context.Background(), []byte("payload"))
	require.NoError(t, err)
	assert.Len(t, id, idLength)
}

func TestAllocate_IDUsesOnlyAlphabetCharacters(t *testing.T) {
	a := New(newFakeStore())

	id, err := a.Allocate(context.Background(), []byte("payload"))
	require.NoError(t, err)
	for _, c := range id {
		assert.Contains(t, alphabet, string(c))
	}
}

func TestAllocate_StoresDataUnderReturnedID(t *testing.T) {
	s := newFakeStore()
	a := New(s)

	id, err := a.Allocate(context.Background(), []byte("hello"))
	require.NoError(t, err)

	data, err := s.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), data)
}

func TestAllocate_RetriesOnCollision(t *testing.T) {
	s := newFakeStore()

	// A deterministic random source means generateID always produces the
	// same id, so a second Allocate call against the same store can never
	// succeed and must exhaust all retries.
	deterministic := &repeatingReader{pattern: []byte{0}}
	a := NewWithRandom(s, deterministic)

	id, err := a.Allocate(context.Background(), []byte("first"))
	require.NoError(t, err)

	_, err = a.Allocate(context.Background(), []byte("second"))
	assert.ErrorIs(t, err, ErrAllocationFailed)

	// The id from the first call is still the only one present.
	data, err := s.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, []byte("first"), data)
}

func TestAllocate_SucceedsAfterTransientCollision(t *testing.T) {
	s := newFakeStore()

	// First idLength bytes produce one id; pre-occupy it so the first
	// attempt collides, then the random source shifts to a different
	// pattern on the retry.
	var shiftingPattern []byte
	shiftingPattern = append(shiftingPattern, bytes.Repeat([]byte{0}, idLength)...)
	shiftingPattern = append(shiftingPattern, bytes.Repeat([]byte{1}, idLength)...)
	reader := &repeatingReader{pattern: shiftingPattern}

	a := NewWithRandom(s, reader)
	firstID, err := a.generateID()
	require.NoError(t, err)
	require.NoError(t, s.PutIfAbsent(context.Background(), firstID, []byte("occupied")))

	// Reset the reader so Allocate replays: collides against firstID, then
	// advances to the second pattern and succeeds.
	reader.pos = 0
	id, err := a.Allocate(context.Background(), []byte("payload"))
	require.NoError(t, err)
	assert.NotEqual(t, firstID, id)
}

func TestGenerateID_ReadErrorPropagates(t *testing.T) {
	a := NewWithRandom(newFakeStore(), errReader{})
	_, err := a.generateID()
	assert.Error(t, err)
}

// errReader always fails.
type errReader struct{}

func (errReader) Read([]byte) (int, error) { return 0, io.ErrClosedPipe }
