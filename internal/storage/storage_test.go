package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAbsentKey(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	defer s.Close()

	payload, err := s.Load(context.Background(), "inventory")
	require.NoError(t, err)
	assert.Nil(t, payload)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	defer s.Close()

	ctx := context.Background()
	blob := []byte(`[{"id":"a","name":"Amoxicillin 500mg","quantity":100}]`)
	require.NoError(t, s.Save(ctx, "inventory", blob))

	got, err := s.Load(ctx, "inventory")
	require.NoError(t, err)
	assert.Equal(t, blob, got)

	// Empty blob round-trips too.
	require.NoError(t, s.Save(ctx, "inventory", []byte("[]")))
	got, err = s.Load(ctx, "inventory")
	require.NoError(t, err)
	assert.Equal(t, []byte("[]"), got)
}

func TestSaveReplacesPriorValue(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	defer s.Close()

	ctx := context.Background()
	require.NoError(t, s.Save(ctx, "inventory", []byte("first")))
	require.NoError(t, s.Save(ctx, "inventory", []byte("second")))

	got, err := s.Load(ctx, "inventory")
	require.NoError(t, err)
	assert.Equal(t, []byte("second"), got)
}

func TestBlobSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	ctx := context.Background()

	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Save(ctx, "inventory", []byte("durable")))
	require.NoError(t, s.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.Load(ctx, "inventory")
	require.NoError(t, err)
	assert.Equal(t, []byte("durable"), got)
}

func TestMemoryGatewayMatchesContract(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	payload, err := m.Load(ctx, "inventory")
	require.NoError(t, err)
	assert.Nil(t, payload)

	require.NoError(t, m.Save(ctx, "inventory", []byte("blob")))
	got, err := m.Load(ctx, "inventory")
	require.NoError(t, err)
	assert.Equal(t, []byte("blob"), got)

	// Returned slice is a copy, not the stored one.
	got[0] = 'x'
	again, err := m.Load(ctx, "inventory")
	require.NoError(t, err)
	assert.Equal(t, []byte("blob"), again)
}
