package users

import (
	"github.com/sango-kit/sango/internal/core"
)

// User is the document model stored in the "users" MongoDB collection.
type User struct {
	core.BaseDocument `bson:",inline"`

	Email    string `bson:"email" json:"email"`
	FullName string `bson:"full_name" json:"full_name"`
	IsActive bool   `bson:"is_active" json:"is_active"`
}

// Collection returns the MongoDB collection name for User documents.
func (User) Collection() string {
	return "users"
}
