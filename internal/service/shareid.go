package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

const (
	shareableIDLength = 8
	allocateAttempts  = 4
)

// Allocator issues the short public tokens embedded in share links.
// A token is assigned exactly once, at card creation, and never changes.
type Allocator struct {
	weddings WeddingStore
	logger   *zap.SugaredLogger
}

func NewAllocator(weddings WeddingStore, logger *zap.SugaredLogger) *Allocator {
	return &Allocator{
		weddings: weddings,
		logger:   logger,
	}
}

// Allocate returns a fresh shareable id, retrying on the rare collision.
// If the store cannot be consulted the candidate is used unchecked.
func (a *Allocator) Allocate(ctx context.Context) string {
	token := newShareableID()
	for i := 0; i < allocateAttempts; i++ {
		_, err := a.weddings.FindByShareable(ctx, token)
		if errors.Is(err, mongo.ErrNoDocuments) {
			return token
		}
		if err != nil {
			a.logger.Warnw("shareable id uniqueness check failed", "error", err)
			return token
		}
		a.logger.Warnw("shareable id collision", "token", token)
		token = newShareableID()
	}
	return token
}

func newShareableID() string {
	return uuid.New().String()[:shareableIDLength]
}
