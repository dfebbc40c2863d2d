package models

import (
	"strconv"
	"time"
)

// Guest is the caller id used when a request carries no identity.
const Guest int64 = 0

// AnonymousOwner replaces the owner reference in every view handed to a
// caller who does not own the resource.
const AnonymousOwner = "anonymous"

// Ownership holds the access-control attributes shared by every stored
// resource. OwnerID is nil only for anonymously created short URLs.
type Ownership struct {
	OwnerID  *int64 `json:"-"`
	Owner    string `json:"owner"`
	IsPublic bool   `json:"isPublic"`
}

// Resource is the common header embedded by todos, notes and URLs.
type Resource struct {
	ID int64 `json:"id"`
	Ownership
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Base gives generic code access to the embedded header.
func (r *Resource) Base() *Resource {
	return r
}

// IsOwnedBy reports whether callerID owns the resource. Guests own nothing.
func (r *Resource) IsOwnedBy(callerID int64) bool {
	return callerID != Guest && r.OwnerID != nil && *r.OwnerID == callerID
}

// VisibleTo reports whether callerID may read the resource.
func (r *Resource) VisibleTo(callerID int64) bool {
	return r.IsPublic || r.IsOwnedBy(callerID)
}

// PresentFor fills the Owner view: the owner sees their own id, everybody
// else sees [AnonymousOwner].
func (r *Resource) PresentFor(callerID int64) {
	if r.IsOwnedBy(callerID) {
		r.Owner = strconv.FormatInt(*r.OwnerID, 10)
		return
	}
	r.Owner = AnonymousOwner
}

// Owned is implemented by pointers to every resource type.
type Owned interface {
	Base() *Resource
}

// Todo is a task item.
type Todo struct {
	Resource
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

// Note is a markdown note.
type Note struct {
	Resource
	Title   string `json:"title"`
	Content string `json:"content"`
}

// URL is a shortened link.
type URL struct {
	Resource
	ShortCode   string `json:"shortCode"`
	OriginalURL string `json:"originalUrl"`
	Clicks      int64  `json:"clicks"`
}

// Page is one page of a paginated listing.
type Page[T any] struct {
	Items      []T   `json:"items"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PageSize   int   `json:"pageSize"`
	TotalPages int   `json:"totalPages"`
	HasNext    bool  `json:"hasNext"`
	HasPrev    bool  `json:"hasPrev"`
}

// NewPage computes the pagination metadata for items.
func NewPage[T any](items []T, total int64, page, pageSize int) Page[T] {
	totalPages := 0
	if pageSize > 0 {
		totalPages = int((total + int64(pageSize) - 1) / int64(pageSize))
	}
	if items == nil {
		items = []T{}
	}

	return Page[T]{
		Items:      items,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}
}

// GroupCount is one bucket of an aggregate over a resource field.
type GroupCount struct {
	Value string `json:"value"`
	Count int64  `json:"count"`
}
