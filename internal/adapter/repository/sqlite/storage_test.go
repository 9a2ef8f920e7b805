package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wealthflow/wealthflow/internal/domain"
)

func newTestStorage(t *testing.T) (*Storage, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "wealthflow.db")
	db, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewStorage(db), path
}

func TestStorage_SetGetRemove(t *testing.T) {
	storage, _ := newTestStorage(t)
	ctx := context.Background()

	_, err := storage.Get(ctx, "wf_accounts")
	assert.True(t, errors.Is(err, domain.ErrBlobNotFound))

	require.NoError(t, storage.Set(ctx, "wf_accounts", []byte(`[{"id":"acc_1"}]`)))
	require.NoError(t, storage.Set(ctx, "wf_accounts", []byte(`[]`)))

	val, err := storage.Get(ctx, "wf_accounts")
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(val), "second write replaces the first")

	require.NoError(t, storage.Remove(ctx, "wf_accounts"))
	_, err = storage.Get(ctx, "wf_accounts")
	assert.ErrorIs(t, err, domain.ErrBlobNotFound)

	assert.NoError(t, storage.Remove(ctx, "wf_accounts"), "absent key")
}

func TestStorage_SurvivesReopen(t *testing.T) {
	storage, path := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, storage.Set(ctx, "wf_user", []byte(`{"id":"u1","name":"Ann","email":"a@x"}`)))

	db, err := Open(path)
	require.NoError(t, err)
	defer db.Close()

	val, err := NewStorage(db).Get(ctx, "wf_user")
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"u1","name":"Ann","email":"a@x"}`, string(val))
}
