package repository

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/samuelerdtman/la-palabra-del-dia/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// stubCollection satisfies CollectionI with per-test function fields, which
// keeps the drop-ordering tests free to block inside Drop.
type stubCollection struct {
	findOne    func(ctx context.Context, filter interface{}) *mongo.SingleResult
	find       func(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (*mongo.Cursor, error)
	insertOne  func(ctx context.Context, doc interface{}) (*mongo.InsertOneResult, error)
	replaceOne func(ctx context.Context, filter, replacement interface{}, opts ...*options.ReplaceOptions) (*mongo.UpdateResult, error)
	deleteOne  func(ctx context.Context, filter interface{}) (*mongo.DeleteResult, error)
	drop       func(ctx context.Context) error
}

func (s *stubCollection) FindOne(ctx context.Context, filter interface{}, _ ...*options.FindOneOptions) *mongo.SingleResult {
	return s.findOne(ctx, filter)
}

func (s *stubCollection) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (*mongo.Cursor, error) {
	return s.find(ctx, filter, opts...)
}

func (s *stubCollection) InsertOne(ctx context.Context, doc interface{}, _ ...*options.InsertOneOptions) (*mongo.InsertOneResult, error) {
	return s.insertOne(ctx, doc)
}

func (s *stubCollection) ReplaceOne(ctx context.Context, filter, replacement interface{}, opts ...*options.ReplaceOptions) (*mongo.UpdateResult, error) {
	return s.replaceOne(ctx, filter, replacement, opts...)
}

func (s *stubCollection) DeleteOne(ctx context.Context, filter interface{}, _ ...*options.DeleteOptions) (*mongo.DeleteResult, error) {
	return s.deleteOne(ctx, filter)
}

func (s *stubCollection) Drop(ctx context.Context) error {
	return s.drop(ctx)
}

func storeWith(words, users CollectionI) *Store {
	return &Store{cols: map[Kind]CollectionI{
		KindWord: words,
		KindUser: users,
	}}
}

func TestStore_Unavailable(t *testing.T) {
	t.Parallel()

	store := NewStore(nil)
	ctx := context.Background()

	var word models.Word
	assert.ErrorIs(t, store.FindOne(ctx, KindWord, bson.M{}, &word), ErrStoreUnavailable)

	var words []models.Word
	assert.ErrorIs(t, store.FindAll(ctx, KindWord, bson.M{}, FindOpts{}, &words), ErrStoreUnavailable)

	_, err := store.Insert(ctx, KindWord, models.Word{})
	assert.ErrorIs(t, err, ErrStoreUnavailable)

	assert.ErrorIs(t, store.Update(ctx, KindWord, primitive.NewObjectID(), models.Word{}), ErrStoreUnavailable)
	assert.ErrorIs(t, store.Delete(ctx, KindWord, bson.M{}), ErrStoreUnavailable)
	assert.ErrorIs(t, store.Drop(ctx, KindWord), ErrStoreUnavailable)
	assert.ErrorIs(t, store.DropAll(ctx), ErrStoreUnavailable)
}

func TestStore_UnknownKind(t *testing.T) {
	t.Parallel()

	store := storeWith(&stubCollection{}, &stubCollection{})

	var word models.Word
	err := store.FindOne(context.Background(), Kind(42), bson.M{}, &word)
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestStore_FindOne(t *testing.T) {
	t.Parallel()

	owner := primitive.NewObjectID()
	stored := models.Word{
		ID:          primitive.NewObjectID(),
		Word:        "casa",
		Translation: "house, home",
		Owner:       owner,
		Tests:       3,
	}

	tests := []struct {
		name    string
		result  *mongo.SingleResult
		want    models.Word
		wantErr error
	}{
		{
			name:   "success",
			result: mongo.NewSingleResultFromDocument(stored, nil, nil),
			want:   stored,
		},
		{
			name:    "no document",
			result:  mongo.NewSingleResultFromDocument(bson.D{}, mongo.ErrNoDocuments, nil),
			wantErr: ErrNotFound,
		},
		{
			name:    "store error",
			result:  mongo.NewSingleResultFromDocument(bson.D{}, errors.New("connection reset"), nil),
			wantErr: errors.New("connection reset"),
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			store := storeWith(&stubCollection{
				findOne: func(ctx context.Context, filter interface{}) *mongo.SingleResult {
					assert.Equal(t, bson.M{"_id": stored.ID}, filter)
					return tt.result
				},
			}, &stubCollection{})

			var got models.Word
			err := store.FindOne(context.Background(), KindWord, bson.M{"_id": stored.ID}, &got)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr.Error())
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want.ID, got.ID)
			assert.Equal(t, tt.want.Word, got.Word)
			assert.Equal(t, tt.want.Translation, got.Translation)
			assert.Equal(t, tt.want.Tests, got.Tests)
		})
	}
}

func TestStore_FindAll(t *testing.T) {
	t.Parallel()

	owner := primitive.NewObjectID()
	docs := []interface{}{
		models.Word{ID: primitive.NewObjectID(), Word: "perro", Owner: owner},
		models.Word{ID: primitive.NewObjectID(), Word: "gato", Owner: owner},
	}

	var gotOpts []*options.FindOptions
	store := storeWith(&stubCollection{
		find: func(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (*mongo.Cursor, error) {
			gotOpts = opts
			cur, err := mongo.NewCursorFromDocuments(docs, nil, nil)
			require.NoError(t, err)
			return cur, nil
		},
	}, &stubCollection{})

	var words []models.Word
	err := store.FindAll(context.Background(), KindWord, bson.M{"owner": owner}, FindOpts{
		Sort:  bson.D{{Key: "created", Value: -1}},
		Limit: 10,
	}, &words)

	require.NoError(t, err)
	require.Len(t, words, 2)
	assert.Equal(t, "perro", words[0].Word)
	assert.Equal(t, "gato", words[1].Word)

	require.Len(t, gotOpts, 1)
	require.NotNil(t, gotOpts[0].Limit)
	assert.Equal(t, int64(10), *gotOpts[0].Limit)
	assert.NotNil(t, gotOpts[0].Sort)
}

func TestStore_InsertRoundTrip(t *testing.T) {
	t.Parallel()

	id := primitive.NewObjectID()
	word := models.Word{
		Word:        "casa",
		Translation: "house, home",
		Owner:       primitive.NewObjectID(),
		Tests:       0,
	}

	var inserted interface{}
	store := storeWith(&stubCollection{
		insertOne: func(ctx context.Context, doc interface{}) (*mongo.InsertOneResult, error) {
			inserted = doc
			return &mongo.InsertOneResult{InsertedID: id}, nil
		},
		findOne: func(ctx context.Context, filter interface{}) *mongo.SingleResult {
			assert.Equal(t, bson.M{"_id": id}, filter)
			stored := inserted.(models.Word)
			stored.ID = id
			return mongo.NewSingleResultFromDocument(stored, nil, nil)
		},
	}, &stubCollection{})

	gotID, err := store.Insert(context.Background(), KindWord, word)
	require.NoError(t, err)
	assert.Equal(t, id, gotID)
	// The document reaches the store verbatim.
	assert.Equal(t, word, inserted)

	var got models.Word
	require.NoError(t, store.FindOne(context.Background(), KindWord, bson.M{"_id": gotID}, &got))
	assert.Equal(t, gotID, got.ID)
	assert.Equal(t, word.Word, got.Word)
	assert.Equal(t, word.Translation, got.Translation)
	assert.Equal(t, word.Owner, got.Owner)
	assert.Equal(t, word.Tests, got.Tests)
}

func TestStore_Update(t *testing.T) {
	t.Parallel()

	id := primitive.NewObjectID()
	word := models.Word{ID: id, Word: "casa", Tests: 5}

	store := storeWith(&stubCollection{
		replaceOne: func(ctx context.Context, filter, replacement interface{}, opts ...*options.ReplaceOptions) (*mongo.UpdateResult, error) {
			assert.Equal(t, bson.M{"_id": id}, filter)
			assert.Equal(t, word, replacement)
			require.Len(t, opts, 1)
			require.NotNil(t, opts[0].Upsert)
			assert.True(t, *opts[0].Upsert)
			return &mongo.UpdateResult{MatchedCount: 1}, nil
		},
	}, &stubCollection{})

	require.NoError(t, store.Update(context.Background(), KindWord, id, word))
}

func TestStore_Delete(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		result  *mongo.DeleteResult
		err     error
		wantErr bool
	}{
		{name: "deleted", result: &mongo.DeleteResult{DeletedCount: 1}},
		{name: "zero matches is success", result: &mongo.DeleteResult{DeletedCount: 0}},
		{name: "store error", err: errors.New("connection reset"), wantErr: true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			store := storeWith(&stubCollection{
				deleteOne: func(ctx context.Context, filter interface{}) (*mongo.DeleteResult, error) {
					return tt.result, tt.err
				},
			}, &stubCollection{})

			err := store.Delete(context.Background(), KindWord, bson.M{"word": "casa"})
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
		})
	}
}

func TestStore_DropAll_CompletesAfterAllDrops(t *testing.T) {
	t.Parallel()

	orders := []struct {
		name   string
		first  Kind
		second Kind
	}{
		{name: "words finish first", first: KindWord, second: KindUser},
		{name: "users finish first", first: KindUser, second: KindWord},
	}
	for _, tt := range orders {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var dropCalls int32
			release := map[Kind]chan struct{}{
				KindWord: make(chan struct{}),
				KindUser: make(chan struct{}),
			}
			blockingDrop := func(kind Kind) func(ctx context.Context) error {
				return func(ctx context.Context) error {
					atomic.AddInt32(&dropCalls, 1)
					<-release[kind]
					return nil
				}
			}

			store := storeWith(
				&stubCollection{drop: blockingDrop(KindWord)},
				&stubCollection{drop: blockingDrop(KindUser)},
			)

			done := make(chan error, 1)
			go func() {
				done <- store.DropAll(context.Background())
			}()

			close(release[tt.first])
			select {
			case <-done:
				t.Fatal("DropAll completed before every drop finished")
			case <-time.After(50 * time.Millisecond):
			}

			close(release[tt.second])
			select {
			case err := <-done:
				require.NoError(t, err)
			case <-time.After(time.Second):
				t.Fatal("DropAll never completed")
			}

			assert.Equal(t, int32(2), atomic.LoadInt32(&dropCalls))
			// The channel is buffered and written exactly once; a second
			// completion would have been caught above.
			assert.Empty(t, done)
		})
	}
}

func TestStore_DropAll_SurfacesDropErrors(t *testing.T) {
	t.Parallel()

	var usersDropped int32
	store := storeWith(
		&stubCollection{drop: func(ctx context.Context) error {
			return errors.New("drop failed")
		}},
		&stubCollection{drop: func(ctx context.Context) error {
			atomic.AddInt32(&usersDropped, 1)
			return nil
		}},
	)

	err := store.DropAll(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "drop failed")
	// The failing drop does not abort the other one.
	assert.Equal(t, int32(1), atomic.LoadInt32(&usersDropped))
}
