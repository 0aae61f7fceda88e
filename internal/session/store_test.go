package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kisanconnect/kisanconnect/internal/intent"
	"github.com/kisanconnect/kisanconnect/internal/lang"
)

func newTestStore(t *testing.T) (*Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewStore(client, time.Hour), mr
}

func TestStoreSaveGet(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	sess := New(lang.Marathi, "user-7")
	sess = sess.WithMessage(RoleUser, "kanda bhav", intent.MarketSellAdvice, nil, 0)
	sess = sess.WithFarm(FarmContext{State: "maharashtra"})

	require.NoError(t, store.Save(ctx, sess))

	got, err := store.Get(ctx, sess.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, sess.ID, got.ID)
	assert.Equal(t, lang.Marathi, got.Language)
	assert.Equal(t, "maharashtra", got.Farm.State)
	require.Len(t, got.Messages, 1)
	assert.Equal(t, "kanda bhav", got.Messages[0].Content)
}

func TestStoreGetMissing(t *testing.T) {
	store, _ := newTestStore(t)

	got, err := store.Get(context.Background(), "kc_0_nosuchsess")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStoreExpiry(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	sess := New(lang.English, "")
	require.NoError(t, store.Save(ctx, sess))

	mr.FastForward(2 * time.Hour)

	got, err := store.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStoreDelete(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	sess := New(lang.English, "")
	require.NoError(t, store.Save(ctx, sess))
	require.NoError(t, store.Delete(ctx, sess.ID))

	got, err := store.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}
