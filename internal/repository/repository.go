package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Kind is the closed set of entity kinds the store knows about. Each kind
// maps to one collection.
type Kind int

const (
	KindWord Kind = iota
	KindUser
)

// wordusers is the historical name of the user collection, kept so existing
// databases keep working.
var collectionNames = map[Kind]string{
	KindWord: "words",
	KindUser: "wordusers",
}

func (k Kind) String() string {
	if name, ok := collectionNames[k]; ok {
		return name
	}
	return "unknown"
}

var (
	// ErrStoreUnavailable means no database connection was ever established.
	ErrStoreUnavailable = errors.New("store unavailable")
	// ErrUnknownKind is a programmer error: an operation was issued against
	// a kind outside the closed set.
	ErrUnknownKind = errors.New("unknown entity kind")
	// ErrNotFound means a find target did not exist. Deletes never return
	// it; zero matched documents is a normal outcome there.
	ErrNotFound = errors.New("document not found")
)

// StoreI is the generic document-store surface the typed repositories are
// built on.
type StoreI interface {
	FindOne(ctx context.Context, kind Kind, filter bson.M, dest interface{}) error
	FindAll(ctx context.Context, kind Kind, filter bson.M, opts FindOpts, dest interface{}) error
	Insert(ctx context.Context, kind Kind, doc interface{}) (primitive.ObjectID, error)
	Update(ctx context.Context, kind Kind, id primitive.ObjectID, doc interface{}) error
	Delete(ctx context.Context, kind Kind, filter bson.M) error
}

type Repository struct {
	*Store
	*WordsR
	*UsersR
}

func NewRepository(db *mongo.Database) Repository {
	store := NewStore(db)
	return Repository{
		Store:  store,
		WordsR: NewWordsRepository(store),
		UsersR: NewUsersRepository(store),
	}
}
