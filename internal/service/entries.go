package service

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/weddingcard/weddingcard-back/internal/models"
)

// Entries handles the unauthenticated guest surface: RSVP submissions and
// guestbook messages. Guests may submit any number of entries; there is no
// identity constraint.
type Entries struct {
	rsvps     RSVPStore
	guestbook GuestbookStore
	weddings  WeddingStore
}

func NewEntries(rsvps RSVPStore, guestbook GuestbookStore, weddings WeddingStore) *Entries {
	return &Entries{
		rsvps:     rsvps,
		guestbook: guestbook,
		weddings:  weddings,
	}
}

func (s *Entries) SubmitRSVP(ctx context.Context, fields map[string]interface{}) (*models.RSVP, error) {
	count, err := guestCount(fields["guest_count"])
	if err != nil {
		return nil, err
	}

	rsvp := &models.RSVP{
		ID:                  uuid.New().String(),
		WeddingID:           stringField(fields, "wedding_id"),
		GuestName:           stringField(fields, "guest_name"),
		GuestEmail:          stringField(fields, "guest_email"),
		GuestPhone:          stringField(fields, "guest_phone"),
		Attendance:          stringField(fields, "attendance"),
		GuestCount:          count,
		DietaryRestrictions: stringField(fields, "dietary_restrictions"),
		SpecialMessage:      stringField(fields, "special_message"),
		SubmittedAt:         time.Now().UTC(),
	}

	if err := s.rsvps.Insert(ctx, rsvp); err != nil {
		return nil, errors.Wrap(err, "insert rsvp")
	}
	return rsvp, nil
}

func (s *Entries) SubmitGuestbook(ctx context.Context, fields map[string]interface{}) (*models.GuestbookMessage, error) {
	msg := &models.GuestbookMessage{
		ID:           uuid.New().String(),
		WeddingID:    stringField(fields, "wedding_id"),
		Name:         stringField(fields, "name"),
		Relationship: stringField(fields, "relationship"),
		Message:      stringField(fields, "message"),
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.guestbook.Insert(ctx, msg); err != nil {
		return nil, errors.Wrap(err, "insert guestbook message")
	}
	return msg, nil
}

func (s *Entries) RSVPsByWedding(ctx context.Context, weddingID string) ([]models.RSVP, error) {
	rsvps, err := s.rsvps.ListByWedding(ctx, weddingID)
	if err != nil {
		return nil, errors.Wrap(err, "list rsvps")
	}
	return rsvps, nil
}

// RSVPsByShareable lists for the dashboard admin view. Unlike the public
// card resolution, an unknown token here is a hard NotFound.
func (s *Entries) RSVPsByShareable(ctx context.Context, token string) ([]models.RSVP, error) {
	weddingID, err := s.weddingIDByShareable(ctx, token)
	if err != nil {
		return nil, err
	}
	return s.RSVPsByWedding(ctx, weddingID)
}

func (s *Entries) GuestbookByWedding(ctx context.Context, weddingID string) ([]models.GuestbookMessage, error) {
	messages, err := s.guestbook.ListByWedding(ctx, weddingID)
	if err != nil {
		return nil, errors.Wrap(err, "list guestbook messages")
	}
	return messages, nil
}

func (s *Entries) GuestbookByShareable(ctx context.Context, token string) ([]models.GuestbookMessage, error) {
	weddingID, err := s.weddingIDByShareable(ctx, token)
	if err != nil {
		return nil, err
	}
	return s.GuestbookByWedding(ctx, weddingID)
}

func (s *Entries) weddingIDByShareable(ctx context.Context, token string) (string, error) {
	wedding, err := s.weddings.FindByShareable(ctx, token)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", errors.Wrap(ErrNotFound, "wedding not found")
		}
		return "", errors.Wrap(err, "find wedding by shareable id")
	}
	id, _ := wedding["id"].(string)
	return id, nil
}

// guestCount accepts numbers and numeric strings; an omitted or empty
// value defaults to a single guest.
func guestCount(v interface{}) (int, error) {
	switch n := v.(type) {
	case nil:
		return 1, nil
	case int:
		return n, nil
	case int32:
		return int(n), nil
	case int64:
		return int(n), nil
	case float64:
		if n != float64(int(n)) {
			return 0, errors.Wrap(ErrValidation, "guest_count must be an integer")
		}
		return int(n), nil
	case string:
		if n == "" {
			return 1, nil
		}
		parsed, err := strconv.Atoi(n)
		if err != nil {
			return 0, errors.Wrap(ErrValidation, "guest_count must be an integer")
		}
		return parsed, nil
	default:
		return 0, errors.Wrap(ErrValidation, "guest_count must be an integer")
	}
}

func stringField(fields map[string]interface{}, key string) string {
	s, _ := fields[key].(string)
	return s
}
