// Package objectid implements the identifier format shared by every store backend:
// the 24-character hexadecimal encoding of a MongoDB ObjectID.
package objectid

import (
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// undefinedLiteral is what JavaScript clients send when they serialize a missing id.
const undefinedLiteral = "undefined"

// New returns a freshly generated identifier.
func New() string {
	return bson.NewObjectID().Hex()
}

// IsValid reports whether s is a usable identifier.
// Empty strings and the literal "undefined" are never valid.
func IsValid(s string) bool {
	_, ok := Normalize(s)
	return ok
}

// Normalize validates s and returns its canonical lowercase form.
func Normalize(s string) (string, bool) {
	if s == "" || s == undefinedLiteral {
		return "", false
	}
	oid, err := bson.ObjectIDFromHex(strings.ToLower(s))
	if err != nil {
		return "", false
	}
	return oid.Hex(), true
}
