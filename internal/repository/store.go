package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/writeconcern"
	"golang.org/x/sync/errgroup"
)

// CollectionI is the slice of the driver collection API the store uses.
type CollectionI interface {
	FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) *mongo.SingleResult
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (*mongo.Cursor, error)
	InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error)
	ReplaceOne(ctx context.Context, filter interface{}, replacement interface{}, opts ...*options.ReplaceOptions) (*mongo.UpdateResult, error)
	DeleteOne(ctx context.Context, filter interface{}, opts ...*options.DeleteOptions) (*mongo.DeleteResult, error)
	Drop(ctx context.Context) error
}

// FindOpts narrows a FindAll; both fields are optional and pushed down to
// the store.
type FindOpts struct {
	Sort  bson.D
	Limit int64
}

// Store is kind-scoped CRUD over the document database. It holds no state
// beyond the collection handles; all reads and writes go straight through.
type Store struct {
	cols map[Kind]CollectionI
}

// NewStore wraps an established connection. A nil database produces a store
// whose every operation fails with ErrStoreUnavailable.
func NewStore(db *mongo.Database) *Store {
	if db == nil {
		return &Store{}
	}

	// Replacements ask for w:1 acknowledgment before completion is
	// signaled.
	opts := options.Collection().SetWriteConcern(writeconcern.W1())

	cols := make(map[Kind]CollectionI, len(collectionNames))
	for kind, name := range collectionNames {
		cols[kind] = db.Collection(name, opts)
	}
	return &Store{cols: cols}
}

func (s *Store) col(kind Kind) (CollectionI, error) {
	if len(s.cols) == 0 {
		return nil, ErrStoreUnavailable
	}
	col, ok := s.cols[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, kind)
	}
	return col, nil
}

// FindOne decodes the first matching document into dest. No ordering is
// guaranteed when several match.
func (s *Store) FindOne(ctx context.Context, kind Kind, filter bson.M, dest interface{}) error {
	col, err := s.col(kind)
	if err != nil {
		return err
	}

	if err := col.FindOne(ctx, filter).Decode(dest); err != nil {
		if err == mongo.ErrNoDocuments {
			return ErrNotFound
		}
		return fmt.Errorf("failed to find %s document: %w", kind, err)
	}
	return nil
}

// FindAll materializes every matching document into dest, which must be a
// pointer to a slice.
func (s *Store) FindAll(ctx context.Context, kind Kind, filter bson.M, opts FindOpts, dest interface{}) error {
	col, err := s.col(kind)
	if err != nil {
		return err
	}

	findOpts := options.Find()
	if opts.Sort != nil {
		findOpts.SetSort(opts.Sort)
	}
	if opts.Limit > 0 {
		findOpts.SetLimit(opts.Limit)
	}

	cur, err := col.Find(ctx, filter, findOpts)
	if err != nil {
		return fmt.Errorf("failed to find %s documents: %w", kind, err)
	}
	if err := cur.All(ctx, dest); err != nil {
		return fmt.Errorf("failed to read %s documents: %w", kind, err)
	}
	return nil
}

// Insert persists doc verbatim and returns the identifier the store
// assigned to it.
func (s *Store) Insert(ctx context.Context, kind Kind, doc interface{}) (primitive.ObjectID, error) {
	col, err := s.col(kind)
	if err != nil {
		return primitive.NilObjectID, err
	}

	res, err := col.InsertOne(ctx, doc)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("failed to insert %s document: %w", kind, err)
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("unexpected %s identifier type %T", kind, res.InsertedID)
	}
	return id, nil
}

// Update replaces the whole document with the given id, inserting it when
// absent.
func (s *Store) Update(ctx context.Context, kind Kind, id primitive.ObjectID, doc interface{}) error {
	col, err := s.col(kind)
	if err != nil {
		return err
	}

	_, err = col.ReplaceOne(ctx, bson.M{"_id": id}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to update %s document: %w", kind, err)
	}
	return nil
}

// Delete removes the document matching filter. Zero matches is a success.
func (s *Store) Delete(ctx context.Context, kind Kind, filter bson.M) error {
	col, err := s.col(kind)
	if err != nil {
		return err
	}

	if _, err := col.DeleteOne(ctx, filter); err != nil {
		return fmt.Errorf("failed to delete %s document: %w", kind, err)
	}
	return nil
}

// Drop removes every document of the given kind.
func (s *Store) Drop(ctx context.Context, kind Kind) error {
	col, err := s.col(kind)
	if err != nil {
		return err
	}

	if err := col.Drop(ctx); err != nil {
		return fmt.Errorf("failed to drop %s collection: %w", kind, err)
	}
	return nil
}

// DropAll drops every known collection concurrently and returns exactly
// once, after all drops have finished, whatever order they complete in.
// Drop failures are collected, never swallowed.
func (s *Store) DropAll(ctx context.Context) error {
	// Plain group, not WithContext: one failed drop must not abort the
	// others mid-flight.
	var g errgroup.Group
	for kind := range collectionNames {
		kind := kind
		g.Go(func() error {
			return s.Drop(ctx, kind)
		})
	}
	return g.Wait()
}
