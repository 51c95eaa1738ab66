package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// KnownThreshold is the number of correct answers after which a word
// counts as known.
const KnownThreshold = 16

type Word struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Word        string             `bson:"word" json:"word"`
	Translation string             `bson:"translation" json:"translation"`
	Owner       primitive.ObjectID `bson:"owner" json:"owner"`
	Created     time.Time          `bson:"created" json:"created"`
	Tests       int                `bson:"tests" json:"tests"`
	FailedTests int                `bson:"failed_tests,omitempty" json:"failed_tests"`
}

// Known reports whether the word has crossed the correct-answer threshold.
// Classification depends on Tests only; FailedTests is tracked but never
// read by it.
func (w Word) Known() bool {
	return w.Tests > KnownThreshold
}
