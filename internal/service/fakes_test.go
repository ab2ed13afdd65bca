package service

import (
	"context"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/weddingcard/weddingcard-back/internal/models"
)

type fakeWeddingStore struct {
	mu      sync.Mutex
	docs    map[string]bson.M
	findErr error
}

func newFakeWeddingStore() *fakeWeddingStore {
	return &fakeWeddingStore{docs: map[string]bson.M{}}
}

func (f *fakeWeddingStore) find(match func(bson.M) bool) (bson.M, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, doc := range f.docs {
		if match(doc) {
			return copyDoc(doc), nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeWeddingStore) FindByOwner(ctx context.Context, userID string) (bson.M, error) {
	return f.find(func(doc bson.M) bool { return doc["user_id"] == userID })
}

func (f *fakeWeddingStore) FindByID(ctx context.Context, id string) (bson.M, error) {
	return f.find(func(doc bson.M) bool { return doc["id"] == id })
}

func (f *fakeWeddingStore) FindByShareable(ctx context.Context, token string) (bson.M, error) {
	return f.find(func(doc bson.M) bool { return doc["shareable_id"] == token })
}

func (f *fakeWeddingStore) Insert(ctx context.Context, doc bson.M) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	id, _ := doc["id"].(string)
	f.docs[id] = copyDoc(doc)
	return nil
}

func (f *fakeWeddingStore) UpdateByOwner(ctx context.Context, userID string, fields bson.M) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for id, doc := range f.docs {
		if doc["user_id"] == userID {
			updated := copyDoc(doc)
			for k, v := range fields {
				updated[k] = v
			}
			f.docs[id] = updated
			return nil
		}
	}
	return nil
}

func (f *fakeWeddingStore) len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.docs)
}

func copyDoc(doc bson.M) bson.M {
	out := bson.M{}
	for k, v := range doc {
		out[k] = v
	}
	return out
}

type fakeSecondary struct {
	mu       sync.Mutex
	users    map[string]map[string]interface{}
	weddings map[string]map[string]interface{}
	putErr   error
}

func newFakeSecondary() *fakeSecondary {
	return &fakeSecondary{
		users:    map[string]map[string]interface{}{},
		weddings: map[string]map[string]interface{}{},
	}
}

func (f *fakeSecondary) PutUser(id string, doc map[string]interface{}) error {
	if f.putErr != nil {
		return f.putErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.users[id] = doc
	return nil
}

func (f *fakeSecondary) PutWedding(id string, doc map[string]interface{}) error {
	if f.putErr != nil {
		return f.putErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.weddings[id] = doc
	return nil
}

func (f *fakeSecondary) FindWeddingByID(id string) (map[string]interface{}, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	doc, ok := f.weddings[id]
	return doc, ok
}

func (f *fakeSecondary) FindWeddingByShareable(token string) (map[string]interface{}, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, doc := range f.weddings {
		if doc["shareable_id"] == token {
			return doc, true
		}
	}
	return nil, false
}

type fakeUserStore struct {
	mu    sync.Mutex
	users map[string]*models.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[string]*models.User{}}
}

func (f *fakeUserStore) Insert(ctx context.Context, user *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserStore) FindByID(ctx context.Context, id string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if user, ok := f.users[id]; ok {
		return user, nil
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeUserStore) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, user := range f.users {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeUserStore) delete(id string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.users, id)
}

type fakeSessionStore struct {
	mu        sync.Mutex
	sessions  map[string]*models.Session
	insertErr error
	findErr   error
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: map[string]*models.Session{}}
}

func (f *fakeSessionStore) Insert(ctx context.Context, session *models.Session) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sessions[session.SessionID] = session
	return nil
}

func (f *fakeSessionStore) Find(ctx context.Context, token string) (*models.Session, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if session, ok := f.sessions[token]; ok {
		return session, nil
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeSessionStore) delete(token string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.sessions, token)
}

type fakeRSVPStore struct {
	mu    sync.Mutex
	rsvps []models.RSVP
}

func (f *fakeRSVPStore) Insert(ctx context.Context, rsvp *models.RSVP) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rsvps = append(f.rsvps, *rsvp)
	return nil
}

func (f *fakeRSVPStore) ListByWedding(ctx context.Context, weddingID string) ([]models.RSVP, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.RSVP, 0)
	for _, rsvp := range f.rsvps {
		if rsvp.WeddingID == weddingID {
			out = append(out, rsvp)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].SubmittedAt.Equal(out[j].SubmittedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].SubmittedAt.Before(out[j].SubmittedAt)
	})
	return out, nil
}

type fakeGuestbookStore struct {
	mu       sync.Mutex
	messages []models.GuestbookMessage
}

func (f *fakeGuestbookStore) Insert(ctx context.Context, msg *models.GuestbookMessage) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.messages = append(f.messages, *msg)
	return nil
}

func (f *fakeGuestbookStore) ListByWedding(ctx context.Context, weddingID string) ([]models.GuestbookMessage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.GuestbookMessage, 0)
	for _, msg := range f.messages {
		if msg.WeddingID == weddingID {
			out = append(out, msg)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}
