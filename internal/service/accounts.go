package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/weddingcard/weddingcard-back/internal/models"
)

type (
	Accounts struct {
		users    UserStore
		weddings WeddingStore
		backup   SecondaryStore
		sessions *SessionManager
		alloc    *Allocator
		logger   *zap.SugaredLogger
	}

	AuthResult struct {
		SessionID string
		UserID    string
		Username  string
	}
)

func NewAccounts(users UserStore, weddings WeddingStore, backup SecondaryStore, sessions *SessionManager, alloc *Allocator, logger *zap.SugaredLogger) *Accounts {
	return &Accounts{
		users:    users,
		weddings: weddings,
		backup:   backup,
		sessions: sessions,
		alloc:    alloc,
		logger:   logger,
	}
}

// Register creates the account, seeds its default wedding card with a
// fresh shareable id, and opens a session.
func (s *Accounts) Register(ctx context.Context, username, password string) (*AuthResult, error) {
	_, err := s.users.FindByUsername(ctx, username)
	if err == nil {
		return nil, errors.Wrap(ErrAlreadyExists, "username already registered")
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, errors.Wrap(err, "find user")
	}

	hash, err := s.bcryptGen(password)
	if err != nil {
		return nil, errors.Wrap(err, "bcryptGen")
	}

	user := &models.User{
		ID:        uuid.New().String(),
		Username:  username,
		Password:  hash,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.users.Insert(ctx, user); err != nil {
		return nil, errors.Wrap(err, "insert user")
	}
	if err := s.backup.PutUser(user.ID, map[string]interface{}{
		"id":         user.ID,
		"username":   user.Username,
		"password":   user.Password,
		"created_at": user.CreatedAt,
	}); err != nil {
		s.logger.Warnw("user backup mirror failed", "user_id", user.ID, "error", err)
	}

	now := time.Now().UTC()
	card := models.DemoWeddingDoc()
	card["id"] = uuid.New().String()
	card["user_id"] = user.ID
	card["shareable_id"] = s.alloc.Allocate(ctx)
	card["created_at"] = now
	card["updated_at"] = now

	if err := s.weddings.Insert(ctx, card); err != nil {
		return nil, errors.Wrap(err, "seed default wedding")
	}
	cardID, _ := card["id"].(string)
	if err := s.backup.PutWedding(cardID, card); err != nil {
		s.logger.Warnw("wedding backup mirror failed", "wedding_id", cardID, "error", err)
	}

	return &AuthResult{
		SessionID: s.sessions.Create(ctx, user.ID),
		UserID:    user.ID,
		Username:  user.Username,
	}, nil
}

// Login checks the credentials and opens a session. Unknown usernames and
// wrong passwords are indistinguishable to the caller.
func (s *Accounts) Login(ctx context.Context, username, password string) (*AuthResult, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errors.Wrap(ErrUnauthorized, "incorrect username or password")
		}
		return nil, errors.Wrap(err, "find user")
	}

	if err := s.bcryptCheck(user.Password, password); err != nil {
		return nil, errors.Wrap(ErrUnauthorized, "incorrect username or password")
	}

	return &AuthResult{
		SessionID: s.sessions.Create(ctx, user.ID),
		UserID:    user.ID,
		Username:  user.Username,
	}, nil
}

func (s *Accounts) bcryptGen(pass string) (string, error) {
	passwordHashB, err := bcrypt.GenerateFromPassword([]byte(pass), 14)
	if err != nil {
		return "", errors.Wrap(err, "generate password hash")
	}
	return string(passwordHashB), nil
}

func (s *Accounts) bcryptCheck(hash, pass string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(pass))
}
