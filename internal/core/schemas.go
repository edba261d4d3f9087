// Package core provides the shared building blocks generated modules are
// built on: the base document, pagination, validation, the generic MongoDB
// repository, and HTTP payload helpers.
package core

import (
	"time"

	"github.com/google/uuid"
)

// BaseDocument carries the identity and timestamp fields every module
// document embeds.
type BaseDocument struct {
	ID        string    `bson:"_id" json:"id"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// NewBaseDocument returns a base document with a fresh UUID and current
// timestamps.
func NewBaseDocument() BaseDocument {
	now := time.Now().UTC()
	return BaseDocument{
		ID:        uuid.NewString(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// DefaultPageSize is used when a request does not specify a page size.
const DefaultPageSize = 50

// MaxPageSize caps the page size a client may request.
const MaxPageSize = 100

// PageRequest selects one page of a listing.
type PageRequest struct {
	Page int
	Size int
}

// normalized clamps the request to valid bounds.
func (p PageRequest) normalized() PageRequest {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Size < 1 {
		p.Size = DefaultPageSize
	}
	if p.Size > MaxPageSize {
		p.Size = MaxPageSize
	}
	return p
}

// Skip returns the number of documents to skip for this page.
func (p PageRequest) Skip() int64 {
	n := p.normalized()
	return int64(n.Page-1) * int64(n.Size)
}

// Page is one page of a listing.
type Page[T any] struct {
	Items []T   `json:"items"`
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Size  int   `json:"size"`
	Pages int   `json:"pages"`
}

// NewPage assembles a page from its items and the total match count.
func NewPage[T any](items []T, total int64, req PageRequest) Page[T] {
	req = req.normalized()
	pages := int(total) / req.Size
	if int(total)%req.Size != 0 {
		pages++
	}
	if items == nil {
		items = []T{}
	}
	return Page[T]{
		Items: items,
		Total: total,
		Page:  req.Page,
		Size:  req.Size,
		Pages: pages,
	}
}

// ConvertPage maps a page of models to a page of response payloads.
func ConvertPage[T, U any](in Page[T], convert func(T) U) Page[U] {
	items := make([]U, len(in.Items))
	for i, item := range in.Items {
		items[i] = convert(item)
	}
	return Page[U]{
		Items: items,
		Total: in.Total,
		Page:  in.Page,
		Size:  in.Size,
		Pages: in.Pages,
	}
}
