package db

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/weddingcard/weddingcard-back/internal/models"
)

// Thin wrappers over the raw collections. Lookup misses surface as
// mongo.ErrNoDocuments; the service layer owns the error taxonomy.

type (
	Users struct {
		c *mongo.Collection
	}

	Sessions struct {
		c *mongo.Collection
	}

	Weddings struct {
		c *mongo.Collection
	}

	RSVPs struct {
		c *mongo.Collection
	}

	Guestbook struct {
		c *mongo.Collection
	}
)

func NewUsers(database *mongo.Database) *Users {
	return &Users{c: database.Collection("users")}
}

func (u *Users) Insert(ctx context.Context, user *models.User) error {
	_, err := u.c.InsertOne(ctx, user)
	return err
}

func (u *Users) FindByID(ctx context.Context, id string) (*models.User, error) {
	user := models.User{}
	if err := u.c.FindOne(ctx, bson.M{"id": id}).Decode(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (u *Users) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	user := models.User{}
	if err := u.c.FindOne(ctx, bson.M{"username": username}).Decode(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

func NewSessions(database *mongo.Database) *Sessions {
	return &Sessions{c: database.Collection("sessions")}
}

func (s *Sessions) Insert(ctx context.Context, session *models.Session) error {
	_, err := s.c.InsertOne(ctx, session)
	return err
}

func (s *Sessions) Find(ctx context.Context, token string) (*models.Session, error) {
	session := models.Session{}
	if err := s.c.FindOne(ctx, bson.M{"session_id": token}).Decode(&session); err != nil {
		return nil, err
	}
	return &session, nil
}

func NewWeddings(database *mongo.Database) *Weddings {
	return &Weddings{c: database.Collection("weddings")}
}

func (w *Weddings) FindByOwner(ctx context.Context, userID string) (bson.M, error) {
	return w.findOne(ctx, bson.M{"user_id": userID})
}

func (w *Weddings) FindByID(ctx context.Context, id string) (bson.M, error) {
	return w.findOne(ctx, bson.M{"id": id})
}

func (w *Weddings) FindByShareable(ctx context.Context, token string) (bson.M, error) {
	return w.findOne(ctx, bson.M{"shareable_id": token})
}

func (w *Weddings) findOne(ctx context.Context, filter bson.M) (bson.M, error) {
	doc := bson.M{}
	if err := w.c.FindOne(ctx, filter).Decode(&doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (w *Weddings) Insert(ctx context.Context, doc bson.M) error {
	_, err := w.c.InsertOne(ctx, doc)
	return err
}

func (w *Weddings) UpdateByOwner(ctx context.Context, userID string, fields bson.M) error {
	_, err := w.c.UpdateOne(ctx, bson.M{"user_id": userID}, bson.M{"$set": fields})
	return err
}

func NewRSVPs(database *mongo.Database) *RSVPs {
	return &RSVPs{c: database.Collection("rsvps")}
}

func (r *RSVPs) Insert(ctx context.Context, rsvp *models.RSVP) error {
	_, err := r.c.InsertOne(ctx, rsvp)
	return err
}

// ListByWedding returns entries ordered by submission time, oldest first.
// The order is part of the contract: identical inputs must list identically.
func (r *RSVPs) ListByWedding(ctx context.Context, weddingID string) ([]models.RSVP, error) {
	opts := options.Find().SetSort(bson.D{{Key: "submitted_at", Value: 1}, {Key: "id", Value: 1}})
	cur, err := r.c.Find(ctx, bson.M{"wedding_id": weddingID}, opts)
	if err != nil {
		return nil, err
	}
	rsvps := make([]models.RSVP, 0)
	if err := cur.All(ctx, &rsvps); err != nil {
		return nil, err
	}
	return rsvps, nil
}

func NewGuestbook(database *mongo.Database) *Guestbook {
	return &Guestbook{c: database.Collection("guestbook")}
}

func (g *Guestbook) Insert(ctx context.Context, msg *models.GuestbookMessage) error {
	_, err := g.c.InsertOne(ctx, msg)
	return err
}

// ListByWedding returns messages newest first.
func (g *Guestbook) ListByWedding(ctx context.Context, weddingID string) ([]models.GuestbookMessage, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := g.c.Find(ctx, bson.M{"wedding_id": weddingID}, opts)
	if err != nil {
		return nil, err
	}
	messages := make([]models.GuestbookMessage, 0)
	if err := cur.All(ctx, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}
