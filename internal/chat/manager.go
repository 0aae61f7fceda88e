package chat

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/kisanconnect/kisanconnect/internal/config"
	"github.com/kisanconnect/kisanconnect/internal/events"
	"github.com/kisanconnect/kisanconnect/internal/external"
	"github.com/kisanconnect/kisanconnect/internal/intent"
	"github.com/kisanconnect/kisanconnect/internal/lang"
	"github.com/kisanconnect/kisanconnect/internal/respond"
	"github.com/kisanconnect/kisanconnect/internal/session"
)

// Manager hands out one Service per session id. Unknown ids are looked up
// in the store; missing or expired sessions get a fresh one.
type Manager struct {
	mu       sync.Mutex
	services map[string]*Service

	cfg        config.ChatConfig
	classifier *intent.Classifier
	responder  *respond.Generator
	store      *session.Store
	ext        *external.Client
	publisher  *events.Publisher
}

// NewManager creates a session manager. The publisher may be nil.
func NewManager(cfg config.ChatConfig, classifier *intent.Classifier, responder *respond.Generator, store *session.Store, ext *external.Client, publisher *events.Publisher) *Manager {
	return &Manager{
		services:   make(map[string]*Service),
		cfg:        cfg,
		classifier: classifier,
		responder:  responder,
		store:      store,
		ext:        ext,
		publisher:  publisher,
	}
}

// Resolve returns the service for sessionID, reloading it from the store if
// this process has not seen it yet. An empty or unknown id starts a fresh
// session in the given language.
func (m *Manager) Resolve(ctx context.Context, sessionID string, language lang.Language, userID string) (*Service, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.pruneLocked()

	if sessionID != "" {
		if svc, ok := m.services[sessionID]; ok {
			return svc, nil
		}
		sess, err := m.store.Get(ctx, sessionID)
		if err != nil {
			// Storage trouble never blocks a chat turn; continue with a
			// fresh in-memory session.
			slog.Warn("session load failed, starting fresh", "session_id", sessionID, "error", err)
		}
		if sess != nil {
			svc := m.newService(*sess)
			m.services[sess.ID] = svc
			return svc, nil
		}
	}

	if !language.Valid() {
		language = lang.English
	}
	sess := session.New(language, userID)
	svc := m.newService(sess)
	m.services[sess.ID] = svc
	return svc, nil
}

// Lookup returns the in-memory service for sessionID, if any.
func (m *Manager) Lookup(sessionID string) (*Service, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	svc, ok := m.services[sessionID]
	return svc, ok
}

// Load returns the service for an existing session, consulting the store
// when the session is not in memory. ok is false when no such session
// exists; nothing new is created.
func (m *Manager) Load(ctx context.Context, sessionID string) (*Service, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if svc, ok := m.services[sessionID]; ok {
		return svc, true, nil
	}

	sess, err := m.store.Get(ctx, sessionID)
	if err != nil {
		return nil, false, err
	}
	if sess == nil {
		return nil, false, nil
	}

	svc := m.newService(*sess)
	m.services[sess.ID] = svc
	return svc, true, nil
}

// Remove drops sessionID from memory and deletes its stored record.
func (m *Manager) Remove(ctx context.Context, sessionID string) error {
	m.mu.Lock()
	delete(m.services, sessionID)
	m.mu.Unlock()
	return m.store.Delete(ctx, sessionID)
}

func (m *Manager) newService(sess session.Session) *Service {
	return NewService(sess, m.cfg, m.classifier, m.responder, m.store, m.ext, m.publisher)
}

// pruneLocked drops services whose sessions idled past the TTL. The stored
// records expire on their own.
func (m *Manager) pruneLocked() {
	ttl := m.cfg.SessionTTL
	if ttl <= 0 {
		ttl = session.DefaultTTL
	}
	for id, svc := range m.services {
		if svc.Busy() {
			continue
		}
		if time.Since(svc.Session().LastActivity) > ttl {
			delete(m.services, id)
		}
	}
}
