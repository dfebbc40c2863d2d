package service

import (
	"bytes"
	"context"
	"fmt"

	"github.com/MKhiriev/go-api-hub/internal/logger"
	"github.com/MKhiriev/go-api-hub/internal/store"
	"github.com/MKhiriev/go-api-hub/models"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

type noteService struct {
	notes    store.NoteRepository
	markdown goldmark.Markdown
	logger   *logger.Logger
}

// NewNoteService returns a NoteService that renders note content as
// GitHub-flavoured markdown. Raw HTML in notes is not passed through.
func NewNoteService(notes store.NoteRepository, logger *logger.Logger) NoteService {
	return &noteService{
		notes:    notes,
		markdown: goldmark.New(goldmark.WithExtensions(extension.GFM)),
		logger:   logger,
	}
}

func (s *noteService) List(ctx context.Context, callerID int64, query models.ListQuery) (models.Page[models.Note], error) {
	var (
		page models.Page[models.Note]
		err  error
	)
	if query.Search != "" {
		page, err = s.notes.Search(ctx, query.Search, pageOptions(callerID, query))
	} else {
		page, err = s.notes.Paginate(ctx, pageOptions(callerID, query))
	}
	if err != nil {
		return models.Page[models.Note]{}, fromStore(err)
	}

	return page, nil
}

func (s *noteService) Get(ctx context.Context, callerID, id int64) (models.Note, error) {
	note, err := s.notes.FindByID(ctx, id, store.AccessOptions{CallerID: callerID})
	if err != nil {
		return models.Note{}, fromStore(err)
	}

	return note, nil
}

// RenderHTML returns the note content converted to HTML. Visibility rules
// are the same as for Get.
func (s *noteService) RenderHTML(ctx context.Context, callerID, id int64) (string, error) {
	note, err := s.Get(ctx, callerID, id)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err = s.markdown.Convert([]byte(note.Content), &buf); err != nil {
		logger.FromContext(ctx).Err(err).Int64("note_id", id).Str("func", "*noteService.RenderHTML").Msg("markdown rendering failed")
		return "", fmt.Errorf("error rendering note: %w", err)
	}

	return buf.String(), nil
}

func (s *noteService) Create(ctx context.Context, callerID int64, input models.NoteInput) (models.Note, error) {
	if callerID == models.Guest {
		return models.Note{}, ErrAuthenticationRequired
	}

	note := models.Note{
		Title:   input.Title,
		Content: input.Content,
	}
	note.IsPublic = visibility(input.IsPublic, false)

	created, err := s.notes.Create(ctx, note, &callerID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*noteService.Create").Msg("note creation failed")
		return models.Note{}, fromStore(err)
	}

	return created, nil
}

func (s *noteService) Update(ctx context.Context, callerID, id int64, updates map[string]any) (models.Note, error) {
	note, err := s.notes.Update(ctx, id, updates, callerID)
	if err != nil {
		return models.Note{}, fromStore(err)
	}

	return note, nil
}

func (s *noteService) Delete(ctx context.Context, callerID, id int64) error {
	return fromStore(s.notes.Delete(ctx, id, callerID))
}
