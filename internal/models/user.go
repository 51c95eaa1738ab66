package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is an account identified externally by its lowercased email. The
// store does not enforce email uniqueness; signup treats the first match
// as the account.
type User struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email       string             `bson:"email" json:"email"`
	Created     time.Time          `bson:"created" json:"created"`
	PushoverID  string             `bson:"pushover_id,omitempty" json:"pushover_id,omitempty"`
	WordsPerDay int                `bson:"words_per_day,omitempty" json:"words_per_day,omitempty"`
}
