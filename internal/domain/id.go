package domain

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NewID returns a fresh store identifier in its 24 character hex form.
func NewID() string {
	return primitive.NewObjectID().Hex()
}

// ParseID normalises a caller supplied identifier. Anything that is not a
// 12 byte hex ObjectID yields a BadRequest error.
func ParseID(raw string) (string, error) {
	oid, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return "", &Error{Kind: KindBadRequest, Message: "Invalid identifier", Err: err}
	}
	return oid.Hex(), nil
}
