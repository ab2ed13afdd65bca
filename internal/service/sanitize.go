package service

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/weddingcard/weddingcard-back/internal/models"
)

// Sanitize returns the public view of a wedding document: the owner id and
// the storage-internal _id are removed, every other field passes through
// verbatim. The input document is not modified.
func Sanitize(doc bson.M) bson.M {
	public := bson.M{}
	for k, v := range doc {
		if k == "user_id" || k == "_id" {
			continue
		}
		public[k] = v
	}
	return public
}

// PlaceholderWedding is the card served when a share link resolves to
// nothing. It carries the requested token so the page renders as a normal
// invitation, and contains no owner fields by construction.
func PlaceholderWedding(shareableID string) bson.M {
	doc := models.DemoWeddingDoc()
	doc["id"] = "default"
	doc["shareable_id"] = shareableID
	return doc
}
