package repository

import (
	"context"
	"fmt"

	"github.com/samuelerdtman/la-palabra-del-dia/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type WordsR struct {
	store StoreI
}

func NewWordsRepository(store StoreI) *WordsR {
	return &WordsR{store: store}
}

// classFilter selects an owner's known or unknown words. Known means the
// tests counter is strictly above the threshold.
func classFilter(owner primitive.ObjectID, known bool) bson.M {
	tests := bson.M{"$lte": models.KnownThreshold}
	if known {
		tests = bson.M{"$gt": models.KnownThreshold}
	}
	return bson.M{"owner": owner, "tests": tests}
}

func (r *WordsR) Create(ctx context.Context, word models.Word) (models.Word, error) {
	id, err := r.store.Insert(ctx, KindWord, word)
	if err != nil {
		return models.Word{}, fmt.Errorf("failed to create word: %w", err)
	}
	word.ID = id
	return word, nil
}

// ByID loads a word scoped by owner, so a caller cannot reach another
// owner's word by guessing an id.
func (r *WordsR) ByID(ctx context.Context, id, owner primitive.ObjectID) (models.Word, error) {
	var word models.Word
	if err := r.store.FindOne(ctx, KindWord, bson.M{"_id": id, "owner": owner}, &word); err != nil {
		return models.Word{}, err
	}
	return word, nil
}

func (r *WordsR) ByOwner(ctx context.Context, owner primitive.ObjectID, known bool) ([]models.Word, error) {
	words := make([]models.Word, 0)
	if err := r.store.FindAll(ctx, KindWord, classFilter(owner, known), FindOpts{}, &words); err != nil {
		return nil, err
	}
	return words, nil
}

// CountByOwner is the length of the fetched sequence, not a server-side
// count; the contract is the count of the ByOwner result.
func (r *WordsR) CountByOwner(ctx context.Context, owner primitive.ObjectID, known bool) (int, error) {
	words, err := r.ByOwner(ctx, owner, known)
	if err != nil {
		return 0, err
	}
	return len(words), nil
}

func (r *WordsR) Update(ctx context.Context, word models.Word) error {
	return r.store.Update(ctx, KindWord, word.ID, word)
}

func (r *WordsR) Delete(ctx context.Context, id, owner primitive.ObjectID) error {
	return r.store.Delete(ctx, KindWord, bson.M{"_id": id, "owner": owner})
}
