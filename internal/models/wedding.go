package models

import (
	"go.mongodb.org/mongo-driver/bson"
)

// Wedding records are stored as open documents: a fixed set of canonical
// fields plus whatever extra keys the card editor sends. Typed structs
// would silently drop the extras, so the document form is kept end to end.

// NewWeddingDoc returns an empty card skeleton for the given owner.
func NewWeddingDoc(userID string) bson.M {
	return bson.M{
		"user_id":         userID,
		"couple_name_1":   "",
		"couple_name_2":   "",
		"wedding_date":    "",
		"venue_name":      "",
		"venue_location":  "",
		"their_story":     "",
		"story_timeline":  []interface{}{},
		"schedule_events": []interface{}{},
		"gallery_photos":  []interface{}{},
		"bridal_party":    []interface{}{},
		"groom_party":     []interface{}{},
		"special_roles":   []interface{}{},
		"registry_items":  []interface{}{},
		"honeymoon_fund":  bson.M{},
		"faqs":            []interface{}{},
		"theme":           "classic",
	}
}

// DemoWeddingDoc returns the fixed demo card content. It seeds the card of
// a fresh account and backs the public placeholder for unresolved share
// links, so it must never contain owner-identifying fields.
func DemoWeddingDoc() bson.M {
	return bson.M{
		"couple_name_1":  "Sarah",
		"couple_name_2":  "Michael",
		"wedding_date":   "2025-06-15",
		"venue_name":     "Sunset Garden Estate",
		"venue_location": "Sunset Garden Estate • Napa Valley, California",
		"their_story":    "We can't wait to celebrate our love story with the people who matter most to us. Join us for an unforgettable evening of joy, laughter, and new beginnings.",
		"story_timeline": []interface{}{
			bson.M{
				"year":        "2019",
				"title":       "First Meeting",
				"description": "We met at a coffee shop in downtown San Francisco on a rainy Tuesday morning.",
				"image":       "https://images.unsplash.com/photo-1511285560929-80b456fea0bc?w=600&h=400&fit=crop",
			},
		},
		"schedule_events": []interface{}{
			bson.M{
				"time":        "2:00 PM",
				"title":       "Guests Arrival & Welcome",
				"description": "Please arrive by 2:00 PM for welcome drinks and mingling.",
				"location":    "Sunset Garden Estate - Main Entrance",
				"duration":    "30 minutes",
				"highlight":   false,
			},
		},
		"gallery_photos": []interface{}{},
		"bridal_party":   []interface{}{},
		"groom_party":    []interface{}{},
		"special_roles":  []interface{}{},
		"registry_items": []interface{}{},
		"honeymoon_fund": bson.M{},
		"faqs":           []interface{}{},
		"theme":          "classic",
	}
}
