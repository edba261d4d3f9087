package users

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sango-kit/sango/internal/core"
)

// UserRepository provides data access for User documents.
// Common CRUD operations come from the embedded core repository.
type UserRepository struct {
	*core.Repository[User]
}

// NewUserRepository creates a repository bound to the "users" collection.
func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{
		Repository: core.NewRepository[User](db.Collection("users")),
	}
}

// FindByEmail looks a user up by exact email match.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	return r.FindOne(ctx, bson.M{"email": email})
}
