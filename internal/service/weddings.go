package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/weddingcard/weddingcard-back/internal/models"
)

// protectedField reports whether callers may never set or change a key.
// These are restored from the existing record on update and assigned
// server-side on create.
func protectedField(key string) bool {
	switch key {
	case "id", "user_id", "shareable_id", "created_at", "session_id", "_id":
		return true
	}
	return false
}

var partyFields = []string{"bridal_party", "groom_party", "special_roles"}

// Weddings is the mutation pipeline for wedding cards. Writes go to the
// primary store and are mirrored best-effort into the backup tier; a
// failing mirror never fails the request. A per-owner mutex serializes
// create/update for the same account.
type Weddings struct {
	store  WeddingStore
	backup SecondaryStore
	alloc  *Allocator
	logger *zap.SugaredLogger
	locks  sync.Map
}

func NewWeddings(store WeddingStore, backup SecondaryStore, alloc *Allocator, logger *zap.SugaredLogger) *Weddings {
	return &Weddings{
		store:  store,
		backup: backup,
		alloc:  alloc,
		logger: logger,
	}
}

func (s *Weddings) ownerLock(userID string) *sync.Mutex {
	v, _ := s.locks.LoadOrStore(userID, &sync.Mutex{})
	return v.(*sync.Mutex)
}

// Create builds a card for an owner that has none yet. Supplied fields are
// applied over an empty skeleton; protected keys are ignored.
func (s *Weddings) Create(ctx context.Context, userID string, fields map[string]interface{}) (bson.M, error) {
	mu := s.ownerLock(userID)
	mu.Lock()
	defer mu.Unlock()

	_, err := s.store.FindByOwner(ctx, userID)
	if err == nil {
		return nil, errors.Wrap(ErrAlreadyExists, "user already has a wedding card")
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, errors.Wrap(err, "find existing wedding")
	}

	now := time.Now().UTC()
	doc := models.NewWeddingDoc(userID)
	for k, v := range fields {
		if protectedField(k) {
			continue
		}
		doc[k] = v
	}
	doc["id"] = uuid.New().String()
	doc["user_id"] = userID
	doc["shareable_id"] = s.alloc.Allocate(ctx)
	doc["created_at"] = now
	doc["updated_at"] = now

	if err := s.store.Insert(ctx, doc); err != nil {
		return nil, errors.Wrap(err, "insert wedding")
	}
	s.mirror(doc)

	return doc, nil
}

// Update merges the supplied fields over the owner's record. A supplied
// field replaces the stored one wholesale; nested collections are not
// deep-merged. Protected keys always keep their stored values and
// updated_at is always touched.
func (s *Weddings) Update(ctx context.Context, userID string, fields map[string]interface{}) (bson.M, error) {
	mu := s.ownerLock(userID)
	mu.Lock()
	defer mu.Unlock()

	existing, err := s.store.FindByOwner(ctx, userID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errors.Wrap(ErrNotFound, "wedding data not found")
		}
		return nil, errors.Wrap(err, "find existing wedding")
	}

	set := bson.M{}
	for k, v := range fields {
		if protectedField(k) {
			continue
		}
		set[k] = v
	}
	set["updated_at"] = time.Now().UTC()

	if err := s.store.UpdateByOwner(ctx, userID, set); err != nil {
		return nil, errors.Wrap(err, "update wedding")
	}

	merged := bson.M{}
	for k, v := range existing {
		if k == "_id" {
			continue
		}
		merged[k] = v
	}
	for k, v := range set {
		merged[k] = v
	}
	s.mirror(merged)

	return merged, nil
}

// UpdateParty applies the same merge discipline restricted to the three
// party collections; every other field is left untouched.
func (s *Weddings) UpdateParty(ctx context.Context, userID string, fields map[string]interface{}) (bson.M, error) {
	mu := s.ownerLock(userID)
	mu.Lock()
	defer mu.Unlock()

	_, err := s.store.FindByOwner(ctx, userID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errors.Wrap(ErrNotFound, "wedding data not found")
		}
		return nil, errors.Wrap(err, "find existing wedding")
	}

	set := bson.M{}
	for _, key := range partyFields {
		if v, ok := fields[key]; ok {
			set[key] = v
		}
	}
	set["updated_at"] = time.Now().UTC()

	if err := s.store.UpdateByOwner(ctx, userID, set); err != nil {
		return nil, errors.Wrap(err, "update wedding party")
	}

	refreshed, err := s.store.FindByOwner(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "reload wedding")
	}

	merged := bson.M{}
	for k, v := range refreshed {
		if k == "_id" {
			continue
		}
		merged[k] = v
	}
	s.mirror(merged)

	return merged, nil
}

// ByOwner returns the owner's own card for the authenticated dashboard.
func (s *Weddings) ByOwner(ctx context.Context, userID string) (bson.M, error) {
	doc, err := s.store.FindByOwner(ctx, userID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errors.Wrap(ErrNotFound, "wedding data not found")
		}
		return nil, errors.Wrap(err, "find wedding")
	}

	out := bson.M{}
	for k, v := range doc {
		if k == "_id" {
			continue
		}
		out[k] = v
	}
	return out, nil
}

func (s *Weddings) mirror(doc bson.M) {
	id, _ := doc["id"].(string)
	if err := s.backup.PutWedding(id, doc); err != nil {
		s.logger.Warnw("wedding backup mirror failed", "wedding_id", id, "error", err)
	}
}
