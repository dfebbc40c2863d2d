package store

import (
	"github.com/MKhiriev/go-api-hub/internal/config"
	"github.com/MKhiriev/go-api-hub/models"
)

const (
	ownerColumn      = "owner_id"
	visibilityColumn = "is_public"
)

// TodoSchema describes the todos table.
func TodoSchema(app config.App) Schema[models.Todo] {
	return Schema[models.Todo]{
		Table:            "todos",
		OwnerColumn:      ownerColumn,
		VisibilityColumn: visibilityColumn,
		Columns: []Column[models.Todo]{
			{
				Field: "title", Name: "title", Kind: KindString,
				Value: func(t *models.Todo) any { return t.Title },
				Ptr:   func(t *models.Todo) any { return &t.Title },
			},
			{
				Field: "description", Name: "description", Kind: KindString,
				Value: func(t *models.Todo) any { return t.Description },
				Ptr:   func(t *models.Todo) any { return &t.Description },
			},
			{
				Field: "completed", Name: "completed", Kind: KindBool,
				Value: func(t *models.Todo) any { return t.Completed },
				Ptr:   func(t *models.Todo) any { return &t.Completed },
			},
		},
		Sortable:        []string{fieldID, "title", "completed", fieldCreatedAt, fieldUpdatedAt},
		Filterable:      []string{fieldID, "completed", fieldIsPublic},
		Groupable:       []string{"completed", fieldIsPublic},
		Searchable:      []string{"title", "description"},
		Mutable:         []string{"title", "description", "completed"},
		DefaultSort:     "-" + fieldCreatedAt,
		DefaultPageSize: app.DefaultPageSize,
		MaxPageSize:     app.MaxPageSize,
	}
}

// NoteSchema describes the notes table.
func NoteSchema(app config.App) Schema[models.Note] {
	return Schema[models.Note]{
		Table:            "notes",
		OwnerColumn:      ownerColumn,
		VisibilityColumn: visibilityColumn,
		Columns: []Column[models.Note]{
			{
				Field: "title", Name: "title", Kind: KindString,
				Value: func(n *models.Note) any { return n.Title },
				Ptr:   func(n *models.Note) any { return &n.Title },
			},
			{
				Field: "content", Name: "content", Kind: KindString,
				Value: func(n *models.Note) any { return n.Content },
				Ptr:   func(n *models.Note) any { return &n.Content },
			},
		},
		Sortable:        []string{fieldID, "title", fieldCreatedAt, fieldUpdatedAt},
		Filterable:      []string{fieldID, fieldIsPublic},
		Groupable:       []string{fieldIsPublic},
		Searchable:      []string{"title", "content"},
		Mutable:         []string{"title", "content"},
		DefaultSort:     "-" + fieldUpdatedAt,
		DefaultPageSize: app.DefaultPageSize,
		MaxPageSize:     app.MaxPageSize,
	}
}

// URLSchema describes the urls table. Short codes are immutable and clicks
// only move through Increment.
func URLSchema(app config.App) Schema[models.URL] {
	return Schema[models.URL]{
		Table:            "urls",
		OwnerColumn:      ownerColumn,
		VisibilityColumn: visibilityColumn,
		Columns: []Column[models.URL]{
			{
				Field: "shortCode", Name: "short_code", Kind: KindString,
				Value: func(u *models.URL) any { return u.ShortCode },
				Ptr:   func(u *models.URL) any { return &u.ShortCode },
			},
			{
				Field: "originalUrl", Name: "original_url", Kind: KindString,
				Value: func(u *models.URL) any { return u.OriginalURL },
				Ptr:   func(u *models.URL) any { return &u.OriginalURL },
			},
			{
				Field: "clicks", Name: "clicks", Kind: KindInt,
				Value: func(u *models.URL) any { return u.Clicks },
				Ptr:   func(u *models.URL) any { return &u.Clicks },
			},
		},
		Sortable:        []string{fieldID, "clicks", fieldCreatedAt, fieldUpdatedAt},
		Filterable:      []string{fieldID, "shortCode", fieldIsPublic},
		Groupable:       []string{fieldIsPublic},
		Searchable:      []string{"originalUrl", "shortCode"},
		Mutable:         []string{"originalUrl"},
		Counters:        []string{"clicks"},
		DefaultSort:     "-" + fieldCreatedAt,
		DefaultPageSize: app.DefaultPageSize,
		MaxPageSize:     app.MaxPageSize,
	}
}
