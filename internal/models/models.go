package models

import (
	"time"
)

type (
	User struct {
		ID        string    `bson:"id" json:"id"`
		Username  string    `bson:"username" json:"username"`
		Password  string    `bson:"password" json:"-"`
		CreatedAt time.Time `bson:"created_at" json:"created_at"`
	}

	Session struct {
		SessionID string    `bson:"session_id" json:"session_id"`
		UserID    string    `bson:"user_id" json:"user_id"`
		CreatedAt time.Time `bson:"created_at" json:"created_at"`
	}

	RSVP struct {
		ID                  string    `bson:"id" json:"id"`
		WeddingID           string    `bson:"wedding_id" json:"wedding_id"`
		GuestName           string    `bson:"guest_name" json:"guest_name"`
		GuestEmail          string    `bson:"guest_email" json:"guest_email"`
		GuestPhone          string    `bson:"guest_phone" json:"guest_phone"`
		Attendance          string    `bson:"attendance" json:"attendance"`
		GuestCount          int       `bson:"guest_count" json:"guest_count"`
		DietaryRestrictions string    `bson:"dietary_restrictions" json:"dietary_restrictions"`
		SpecialMessage      string    `bson:"special_message" json:"special_message"`
		SubmittedAt         time.Time `bson:"submitted_at" json:"submitted_at"`
	}

	GuestbookMessage struct {
		ID           string    `bson:"id" json:"id"`
		WeddingID    string    `bson:"wedding_id" json:"wedding_id"`
		Name         string    `bson:"name" json:"name"`
		Relationship string    `bson:"relationship" json:"relationship"`
		Message      string    `bson:"message" json:"message"`
		CreatedAt    time.Time `bson:"created_at" json:"created_at"`
	}
)
