package chat

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kisanconnect/kisanconnect/internal/config"
	"github.com/kisanconnect/kisanconnect/internal/external"
	"github.com/kisanconnect/kisanconnect/internal/intent"
	"github.com/kisanconnect/kisanconnect/internal/knowledge"
	"github.com/kisanconnect/kisanconnect/internal/lang"
	"github.com/kisanconnect/kisanconnect/internal/respond"
	"github.com/kisanconnect/kisanconnect/internal/session"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	classifier, responder, store, ext := newTestDeps(t)
	return NewManager(testChatConfig(), classifier, responder, store, ext, nil)
}

// newBrokenStoreManager builds a manager whose session store points at a
// Redis that has already gone away, so every store call fails.
func newBrokenStoreManager(t *testing.T) *Manager {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	mr.Close()

	kb, err := knowledge.Load()
	require.NoError(t, err)
	responder, err := respond.New(kb)
	require.NoError(t, err)

	classifier := intent.NewClassifier(5)
	store := session.NewStore(client, 24*time.Hour)
	ext := external.NewClient(config.ExternalConfig{OfflineMode: true})
	return NewManager(testChatConfig(), classifier, responder, store, ext, nil)
}

func TestManagerResolveCreatesSession(t *testing.T) {
	m := newTestManager(t)

	svc, err := m.Resolve(context.Background(), "", lang.Hindi, "farmer-1")
	require.NoError(t, err)

	sess := svc.Session()
	assert.True(t, strings.HasPrefix(sess.ID, "kc_"))
	assert.Equal(t, lang.Hindi, sess.Language)
	assert.Equal(t, "farmer-1", sess.UserID)
}

func TestManagerResolveReturnsSameService(t *testing.T) {
	m := newTestManager(t)
	ctx := context.Background()

	first, err := m.Resolve(ctx, "", lang.English, "")
	require.NoError(t, err)

	second, err := m.Resolve(ctx, first.Session().ID, lang.English, "")
	require.NoError(t, err)

	assert.Same(t, first, second)
}

func TestManagerResolveUnknownIDStartsFresh(t *testing.T) {
	m := newTestManager(t)

	svc, err := m.Resolve(context.Background(), "kc_0_notfound", lang.English, "")
	require.NoError(t, err)

	assert.NotEqual(t, "kc_0_notfound", svc.Session().ID)
}

func TestManagerResolveSurvivesStoreFailure(t *testing.T) {
	m := newBrokenStoreManager(t)
	ctx := context.Background()

	// A dead store must not block the conversation; the caller gets a
	// fresh session and the turn still produces a response.
	svc, err := m.Resolve(ctx, "kc_0_lostredis", lang.English, "")
	require.NoError(t, err)
	assert.NotEqual(t, "kc_0_lostredis", svc.Session().ID)

	res, err := svc.ProcessMessage(ctx, "hello")
	require.NoError(t, err)
	assert.NotEmpty(t, res.Response)
}

func TestSetLanguageSurvivesStoreFailure(t *testing.T) {
	m := newBrokenStoreManager(t)
	ctx := context.Background()

	svc, err := m.Resolve(ctx, "", lang.English, "")
	require.NoError(t, err)

	require.NoError(t, svc.SetLanguage(ctx, lang.Marathi))
	assert.Equal(t, lang.Marathi, svc.Session().Language)

	require.NoError(t, svc.Reset(ctx))
}

func TestManagerLoadUnknownID(t *testing.T) {
	m := newTestManager(t)

	_, ok, err := m.Load(context.Background(), "kc_0_notfound")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestManagerLoadReloadsFromStore(t *testing.T) {
	m := newTestManager(t)
	ctx := context.Background()

	svc, err := m.Resolve(ctx, "", lang.English, "")
	require.NoError(t, err)
	_, err = svc.ProcessMessage(ctx, "hello")
	require.NoError(t, err)
	id := svc.Session().ID

	// A second manager sharing the same store sees the persisted turn.
	fresh := NewManager(testChatConfig(), m.classifier, m.responder, m.store, m.ext, nil)
	loaded, ok, err := fresh.Load(ctx, id)
	require.NoError(t, err)
	require.True(t, ok)

	sess := loaded.Session()
	assert.Equal(t, id, sess.ID)
	require.Len(t, sess.Messages, 2)
	assert.Equal(t, "hello", sess.Messages[0].Content)
}

func TestManagerRemove(t *testing.T) {
	m := newTestManager(t)
	ctx := context.Background()

	svc, err := m.Resolve(ctx, "", lang.English, "")
	require.NoError(t, err)
	_, err = svc.ProcessMessage(ctx, "hello")
	require.NoError(t, err)
	id := svc.Session().ID

	require.NoError(t, m.Remove(ctx, id))

	_, ok, err := m.Load(ctx, id)
	require.NoError(t, err)
	assert.False(t, ok)
}
