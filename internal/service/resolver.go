package service

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Resolver locates the authoritative wedding record for public reads.
// It checks the primary store first and the backup tier second, never
// mutates anything, and sanitizes everything it returns.
type Resolver struct {
	weddings WeddingStore
	backup   SecondaryStore
	logger   *zap.SugaredLogger
}

func NewResolver(weddings WeddingStore, backup SecondaryStore, logger *zap.SugaredLogger) *Resolver {
	return &Resolver{
		weddings: weddings,
		backup:   backup,
		logger:   logger,
	}
}

// ByID serves the legacy public-by-internal-id path. A miss in both tiers
// is NotFound; there is no placeholder on this path.
func (r *Resolver) ByID(ctx context.Context, id string) (bson.M, error) {
	doc, err := r.weddings.FindByID(ctx, id)
	if err == nil {
		return Sanitize(doc), nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		r.logger.Warnw("primary wedding lookup failed", "wedding_id", id, "error", err)
	}

	if fallback, ok := r.backup.FindWeddingByID(id); ok {
		return Sanitize(bson.M(fallback)), nil
	}

	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, errors.Wrap(err, "find wedding by id")
	}
	return nil, errors.Wrap(ErrNotFound, "wedding not found")
}

// ByShareable never fails: a guest following a mistyped or stale link
// still gets a rendered card. Primary first, backup scan second, fixed
// placeholder last. No id is ever allocated for a miss.
func (r *Resolver) ByShareable(ctx context.Context, token string) bson.M {
	doc, err := r.weddings.FindByShareable(ctx, token)
	if err == nil {
		return Sanitize(doc)
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		r.logger.Warnw("primary wedding lookup failed", "shareable_id", token, "error", err)
	}

	if fallback, ok := r.backup.FindWeddingByShareable(token); ok {
		return Sanitize(bson.M(fallback))
	}

	return PlaceholderWedding(token)
}
