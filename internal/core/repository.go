package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Repository provides common CRUD operations over one MongoDB collection.
// Module repositories embed it and add their own query methods.
type Repository[T any] struct {
	coll *mongo.Collection
}

// NewRepository creates a repository bound to a collection.
func NewRepository[T any](coll *mongo.Collection) *Repository[T] {
	if coll == nil {
		panic("core: repository collection cannot be nil")
	}
	return &Repository[T]{coll: coll}
}

// Collection exposes the underlying collection for custom queries.
func (r *Repository[T]) Collection() *mongo.Collection {
	return r.coll
}

// Create inserts a new document. Unique index violations map to
// ErrDuplicated.
func (r *Repository[T]) Create(ctx context.Context, doc *T) error {
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("%w: %v", ErrDuplicated, err)
		}
		return fmt.Errorf("failed to insert document: %w", err)
	}
	return nil
}

// FindByID loads a document by its _id. Returns ErrNotFound when absent.
func (r *Repository[T]) FindByID(ctx context.Context, id string) (*T, error) {
	return r.FindOne(ctx, bson.M{"_id": id})
}

// FindOne loads the first document matching the filter. Returns ErrNotFound
// when nothing matches.
func (r *Repository[T]) FindOne(ctx context.Context, filter bson.M) (*T, error) {
	if filter == nil {
		filter = bson.M{}
	}
	var doc T
	err := r.coll.FindOne(ctx, filter).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find document: %w", err)
	}
	return &doc, nil
}

// FindMany returns one page of documents matching the filter, newest first.
func (r *Repository[T]) FindMany(ctx context.Context, filter bson.M, page PageRequest) (Page[T], error) {
	if filter == nil {
		filter = bson.M{}
	}
	page = page.normalized()

	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return Page[T]{}, fmt.Errorf("failed to count documents: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(page.Skip()).
		SetLimit(int64(page.Size))

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return Page[T]{}, fmt.Errorf("failed to find documents: %w", err)
	}
	defer cursor.Close(ctx)

	var items []T
	if err := cursor.All(ctx, &items); err != nil {
		return Page[T]{}, fmt.Errorf("failed to decode documents: %w", err)
	}

	return NewPage(items, total, page), nil
}

// Update applies a partial update to a document by _id and returns the
// updated document. The updated_at timestamp is always refreshed.
func (r *Repository[T]) Update(ctx context.Context, id string, fields bson.M) (*T, error) {
	set := bson.M{"updated_at": time.Now().UTC()}
	for k, v := range fields {
		set[k] = v
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc T
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("%w: %v", ErrDuplicated, err)
		}
		return nil, fmt.Errorf("failed to update document: %w", err)
	}
	return &doc, nil
}

// Delete removes a document by _id. Returns ErrNotFound when absent.
func (r *Repository[T]) Delete(ctx context.Context, id string) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Count returns the number of documents matching the filter.
func (r *Repository[T]) Count(ctx context.Context, filter bson.M) (int64, error) {
	if filter == nil {
		filter = bson.M{}
	}
	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to count documents: %w", err)
	}
	return total, nil
}

// Exists reports whether any document matches the filter.
func (r *Repository[T]) Exists(ctx context.Context, filter bson.M) (bool, error) {
	_, err := r.FindOne(ctx, filter)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
