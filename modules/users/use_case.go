package users

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/sango-kit/sango/internal/core"
)

// UserUseCase holds the business logic for the users module.
type UserUseCase struct {
	repo *UserRepository
}

// NewUserUseCase wires the use case with its repository.
func NewUserUseCase(repo *UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// Create validates the payload and stores a new user document.
// Duplicate emails are rejected with core.ErrDuplicated.
func (u *UserUseCase) Create(ctx context.Context, req CreateUser) (UserResponse, error) {
	if err := core.ValidateStruct(req); err != nil {
		return UserResponse{}, err
	}

	if _, err := u.repo.FindByEmail(ctx, req.Email); err == nil {
		return UserResponse{}, core.ErrDuplicated
	} else if !errors.Is(err, core.ErrNotFound) {
		return UserResponse{}, err
	}

	doc := User{
		BaseDocument: core.NewBaseDocument(),
		Email:        req.Email,
		FullName:     req.FullName,
		IsActive:     true,
	}

	if err := u.repo.Create(ctx, &doc); err != nil {
		return UserResponse{}, err
	}
	return NewUserResponse(&doc), nil
}

// GetByID loads a single user document.
func (u *UserUseCase) GetByID(ctx context.Context, id string) (UserResponse, error) {
	doc, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return UserResponse{}, err
	}
	return NewUserResponse(doc), nil
}

// List returns one page of users.
func (u *UserUseCase) List(ctx context.Context, page core.PageRequest) (core.Page[UserResponse], error) {
	docs, err := u.repo.FindMany(ctx, nil, page)
	if err != nil {
		return core.Page[UserResponse]{}, err
	}
	return core.ConvertPage(docs, func(m User) UserResponse {
		return NewUserResponse(&m)
	}), nil
}

// Update applies the non-nil fields of req to an existing user.
func (u *UserUseCase) Update(ctx context.Context, id string, req UpdateUser) (UserResponse, error) {
	if err := core.ValidateStruct(req); err != nil {
		return UserResponse{}, err
	}

	fields := bson.M{}
	if req.FullName != nil {
		fields["full_name"] = *req.FullName
	}
	if req.IsActive != nil {
		fields["is_active"] = *req.IsActive
	}

	doc, err := u.repo.Update(ctx, id, fields)
	if err != nil {
		return UserResponse{}, err
	}
	return NewUserResponse(doc), nil
}

// Delete removes a user document.
func (u *UserUseCase) Delete(ctx context.Context, id string) error {
	return u.repo.Delete(ctx, id)
}
