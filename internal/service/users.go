package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/samuelerdtman/la-palabra-del-dia/internal/models"
	"github.com/samuelerdtman/la-palabra-del-dia/internal/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type UserRI interface {
	Create(ctx context.Context, user models.User) (models.User, error)
	ByID(ctx context.Context, id primitive.ObjectID) (models.User, error)
	ByEmail(ctx context.Context, email string) (models.User, error)
	All(ctx context.Context) ([]models.User, error)
	Update(ctx context.Context, user models.User) error
}

type UserS struct {
	repo UserRI
	log  *zap.Logger
}

func NewUserService(repo UserRI, log *zap.Logger) *UserS {
	return &UserS{
		repo: repo,
		log:  log,
	}
}

// Signup returns the account for email, creating it when none matches. The
// email is the de-facto identity: the first match wins, the store enforces
// no uniqueness. The second result reports whether the account existed.
func (s *UserS) Signup(ctx context.Context, email string) (models.User, bool, error) {
	email = strings.ToLower(email)

	user, err := s.repo.ByEmail(ctx, email)
	if err == nil {
		return user, true, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return models.User{}, false, err
	}

	created, err := s.repo.Create(ctx, models.User{
		Email:   email,
		Created: time.Now(),
	})
	if err != nil {
		s.log.Error("failed to create user", zap.String("email", email), zap.Error(err))
		return models.User{}, false, err
	}
	return created, false, nil
}

func (s *UserS) User(ctx context.Context, id primitive.ObjectID) (models.User, error) {
	return s.repo.ByID(ctx, id)
}

func (s *UserS) Users(ctx context.Context) ([]models.User, error) {
	return s.repo.All(ctx)
}

// UpdateSettings replaces the whole user document with the edited settings.
func (s *UserS) UpdateSettings(ctx context.Context, user models.User) (models.User, error) {
	user.Email = strings.ToLower(user.Email)
	if err := s.repo.Update(ctx, user); err != nil {
		s.log.Error("failed to update settings", zap.String("user_id", user.ID.Hex()), zap.Error(err))
		return models.User{}, err
	}
	return user, nil
}
