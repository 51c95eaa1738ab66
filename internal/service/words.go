package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/samuelerdtman/la-palabra-del-dia/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// ErrNoWords means the user has no unknown words left to practice. It is a
// normal outcome, not a store failure.
var ErrNoWords = errors.New("no words left to practice")

type WordRI interface {
	Create(ctx context.Context, word models.Word) (models.Word, error)
	ByID(ctx context.Context, id, owner primitive.ObjectID) (models.Word, error)
	ByOwner(ctx context.Context, owner primitive.ObjectID, known bool) ([]models.Word, error)
	CountByOwner(ctx context.Context, owner primitive.ObjectID, known bool) (int, error)
	Update(ctx context.Context, word models.Word) error
	Delete(ctx context.Context, id, owner primitive.ObjectID) error
}

type WordS struct {
	repo WordRI
	pick func(n int) int
	log  *zap.Logger
}

func NewWordService(repo WordRI, log *zap.Logger) *WordS {
	return &WordS{
		repo: repo,
		pick: rand.Intn,
		log:  log,
	}
}

// AddWord stores a new word for owner with zeroed counters. Both strings
// are lowercased before storage.
func (s *WordS) AddWord(ctx context.Context, owner primitive.ObjectID, word, translation string) (models.Word, error) {
	created, err := s.repo.Create(ctx, models.Word{
		Word:        strings.ToLower(word),
		Translation: strings.ToLower(translation),
		Owner:       owner,
		Created:     time.Now(),
	})
	if err != nil {
		s.log.Error("failed to add word", zap.String("owner", owner.Hex()), zap.Error(err))
		return models.Word{}, err
	}
	return created, nil
}

func (s *WordS) Words(ctx context.Context, owner primitive.ObjectID, known bool) ([]models.Word, error) {
	return s.repo.ByOwner(ctx, owner, known)
}

func (s *WordS) CountWords(ctx context.Context, owner primitive.ObjectID, known bool) (int, error) {
	return s.repo.CountByOwner(ctx, owner, known)
}

func (s *WordS) Word(ctx context.Context, id, owner primitive.ObjectID) (models.Word, error) {
	return s.repo.ByID(ctx, id, owner)
}

// Practice picks one of the owner's unknown words uniformly at random.
func (s *WordS) Practice(ctx context.Context, owner primitive.ObjectID) (models.Word, error) {
	words, err := s.repo.ByOwner(ctx, owner, false)
	if err != nil {
		return models.Word{}, err
	}
	if len(words) == 0 {
		return models.Word{}, ErrNoWords
	}
	return words[s.pick(len(words))], nil
}

// Grade checks submission against the word's accepted translations and
// bumps the matching counter on a copy. The translation may hold several
// comma-separated answers; each is trimmed before comparison, as is the
// lowercased submission. Grade never writes; callers persist the returned
// word.
func Grade(word models.Word, submission string) (bool, models.Word) {
	guess := strings.TrimSpace(strings.ToLower(submission))
	for _, candidate := range strings.Split(word.Translation, ",") {
		if strings.TrimSpace(candidate) == guess {
			word.Tests++
			return true, word
		}
	}
	word.FailedTests++
	return false, word
}

// Answer loads the word scoped by owner, grades the submission and then
// persists the graded word. Grading happens strictly before the update is
// issued.
func (s *WordS) Answer(ctx context.Context, owner, wordID primitive.ObjectID, submission string) (bool, models.Word, error) {
	word, err := s.repo.ByID(ctx, wordID, owner)
	if err != nil {
		return false, models.Word{}, err
	}

	correct, graded := Grade(word, submission)
	if err := s.repo.Update(ctx, graded); err != nil {
		s.log.Error("failed to persist graded word",
			zap.String("word_id", wordID.Hex()), zap.Bool("correct", correct), zap.Error(err))
		return false, models.Word{}, fmt.Errorf("failed to persist graded word: %w", err)
	}

	return correct, graded, nil
}

// DeleteWord removes the word scoped by owner; a missing word is a no-op.
func (s *WordS) DeleteWord(ctx context.Context, id, owner primitive.ObjectID) error {
	return s.repo.Delete(ctx, id, owner)
}
