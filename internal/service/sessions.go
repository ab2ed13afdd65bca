package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/weddingcard/weddingcard-back/internal/models"
)

// SessionManager is the dual-tier session cache: a guarded in-memory map
// for the fast path, backed by the durable sessions collection. Lookups
// read through to the durable tier on a miss and repopulate the fast tier;
// the fast tier is cleared on shutdown, the durable tier survives it.
type SessionManager struct {
	mu      sync.RWMutex
	cache   map[string]*models.Session
	durable SessionStore
	users   UserStore
	logger  *zap.SugaredLogger
}

func NewSessionManager(durable SessionStore, users UserStore, logger *zap.SugaredLogger) *SessionManager {
	return &SessionManager{
		cache:   map[string]*models.Session{},
		durable: durable,
		users:   users,
		logger:  logger,
	}
}

// Create issues a session token for a user. The durable write is
// best-effort: an unreachable store only costs restart recovery.
func (m *SessionManager) Create(ctx context.Context, userID string) string {
	session := &models.Session{
		SessionID: uuid.New().String(),
		UserID:    userID,
		CreatedAt: time.Now().UTC(),
	}

	m.mu.Lock()
	m.cache[session.SessionID] = session
	m.mu.Unlock()

	if err := m.durable.Insert(ctx, session); err != nil {
		m.logger.Warnw("failed to persist session", "error", err)
	}

	return session.SessionID
}

// Validate resolves a token to its user account. ErrUnauthorized if the
// session is unknown to both tiers or the account no longer exists.
func (m *SessionManager) Validate(ctx context.Context, token string) (*models.User, error) {
	if token == "" {
		return nil, errors.Wrap(ErrUnauthorized, "session id required")
	}

	m.mu.RLock()
	session := m.cache[token]
	m.mu.RUnlock()

	if session == nil {
		restored, err := m.durable.Find(ctx, token)
		if err != nil {
			if !errors.Is(err, mongo.ErrNoDocuments) {
				m.logger.Warnw("failed to restore session", "error", err)
			}
			return nil, errors.Wrap(ErrUnauthorized, "invalid session")
		}
		m.mu.Lock()
		m.cache[token] = restored
		m.mu.Unlock()
		session = restored
	}

	user, err := m.users.FindByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errors.Wrap(ErrUnauthorized, "user not found")
		}
		return nil, errors.Wrap(err, "find session user")
	}

	return user, nil
}

// Invalidate drops a token from the fast tier.
func (m *SessionManager) Invalidate(token string) {
	m.mu.Lock()
	delete(m.cache, token)
	m.mu.Unlock()
}

// Reset clears the fast tier; sessions remain recoverable from the
// durable tier.
func (m *SessionManager) Reset() {
	m.mu.Lock()
	m.cache = map[string]*models.Session{}
	m.mu.Unlock()
}
