package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/weddingcard/weddingcard-back/internal/models"
)

// Store contracts consumed by the services. The primary store reports
// lookup misses as mongo.ErrNoDocuments; the secondary (backup) store is
// advisory and never fails a request.

type (
	WeddingStore interface {
		FindByOwner(ctx context.Context, userID string) (bson.M, error)
		FindByID(ctx context.Context, id string) (bson.M, error)
		FindByShareable(ctx context.Context, token string) (bson.M, error)
		Insert(ctx context.Context, doc bson.M) error
		UpdateByOwner(ctx context.Context, userID string, fields bson.M) error
	}

	SecondaryStore interface {
		PutUser(id string, doc map[string]interface{}) error
		PutWedding(id string, doc map[string]interface{}) error
		FindWeddingByID(id string) (map[string]interface{}, bool)
		FindWeddingByShareable(token string) (map[string]interface{}, bool)
	}

	UserStore interface {
		Insert(ctx context.Context, user *models.User) error
		FindByID(ctx context.Context, id string) (*models.User, error)
		FindByUsername(ctx context.Context, username string) (*models.User, error)
	}

	SessionStore interface {
		Insert(ctx context.Context, session *models.Session) error
		Find(ctx context.Context, token string) (*models.Session, error)
	}

	RSVPStore interface {
		Insert(ctx context.Context, rsvp *models.RSVP) error
		ListByWedding(ctx context.Context, weddingID string) ([]models.RSVP, error)
	}

	GuestbookStore interface {
		Insert(ctx context.Context, msg *models.GuestbookMessage) error
		ListByWedding(ctx context.Context, weddingID string) ([]models.GuestbookMessage, error)
	}
)
