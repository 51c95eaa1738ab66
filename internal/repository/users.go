package repository

import (
	"context"
	"fmt"

	"github.com/samuelerdtman/la-palabra-del-dia/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UsersR struct {
	store StoreI
}

func NewUsersRepository(store StoreI) *UsersR {
	return &UsersR{store: store}
}

func (r *UsersR) Create(ctx context.Context, user models.User) (models.User, error) {
	id, err := r.store.Insert(ctx, KindUser, user)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to create user: %w", err)
	}
	user.ID = id
	return user, nil
}

func (r *UsersR) ByID(ctx context.Context, id primitive.ObjectID) (models.User, error) {
	var user models.User
	if err := r.store.FindOne(ctx, KindUser, bson.M{"_id": id}, &user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// ByEmail expects a lowercased email; callers normalize before lookup.
func (r *UsersR) ByEmail(ctx context.Context, email string) (models.User, error) {
	var user models.User
	if err := r.store.FindOne(ctx, KindUser, bson.M{"email": email}, &user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (r *UsersR) All(ctx context.Context) ([]models.User, error) {
	users := make([]models.User, 0)
	if err := r.store.FindAll(ctx, KindUser, bson.M{}, FindOpts{}, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// Update replaces the whole user document, inserting it when absent.
func (r *UsersR) Update(ctx context.Context, user models.User) error {
	return r.store.Update(ctx, KindUser, user.ID, user)
}
