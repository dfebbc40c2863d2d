package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-api-hub/internal/logger"
	"github.com/MKhiriev/go-api-hub/internal/store"
	"github.com/MKhiriev/go-api-hub/internal/utils"
	"github.com/MKhiriev/go-api-hub/models"
)

const (
	fieldShortCode = "shortCode"
	fieldClicks    = "clicks"

	// shortCodeAttempts bounds retries on short code collisions.
	shortCodeAttempts = 5
)

type urlService struct {
	urls         store.URLRepository
	generateCode func() (string, error)
	logger       *logger.Logger
}

func NewURLService(urls store.URLRepository, logger *logger.Logger) URLService {
	return &urlService{
		urls:         urls,
		generateCode: utils.GenerateShortCode,
		logger:       logger,
	}
}

// Shorten stores input under a fresh short code. A guest URL has no owner,
// so it is forced public and can never be changed or deleted.
func (s *urlService) Shorten(ctx context.Context, callerID int64, input models.URLInput) (models.URL, error) {
	log := logger.FromContext(ctx)

	url := models.URL{OriginalURL: input.OriginalURL}
	url.IsPublic = visibility(input.IsPublic, true)

	var ownerID *int64
	if callerID != models.Guest {
		ownerID = &callerID
	} else {
		url.IsPublic = true
	}

	for attempt := 1; attempt <= shortCodeAttempts; attempt++ {
		code, err := s.generateCode()
		if err != nil {
			return models.URL{}, err
		}
		url.ShortCode = code

		created, err := s.urls.Create(ctx, url, ownerID)
		if errors.Is(err, store.ErrConflict) {
			log.Debug().Str("short_code", code).Int("attempt", attempt).Msg("short code collision")
			continue
		}
		if err != nil {
			log.Err(err).Str("func", "*urlService.Shorten").Msg("url creation failed")
			return models.URL{}, fromStore(err)
		}

		return created, nil
	}

	return models.URL{}, fmt.Errorf("%w: no free short code after %d attempts", ErrConflict, shortCodeAttempts)
}

func (s *urlService) List(ctx context.Context, callerID int64, query models.ListQuery) (models.Page[models.URL], error) {
	var (
		page models.Page[models.URL]
		err  error
	)
	if query.Search != "" {
		page, err = s.urls.Search(ctx, query.Search, pageOptions(callerID, query))
	} else {
		page, err = s.urls.Paginate(ctx, pageOptions(callerID, query))
	}
	if err != nil {
		return models.Page[models.URL]{}, fromStore(err)
	}

	return page, nil
}

func (s *urlService) Get(ctx context.Context, callerID, id int64) (models.URL, error) {
	url, err := s.urls.FindByID(ctx, id, store.AccessOptions{CallerID: callerID})
	if err != nil {
		return models.URL{}, fromStore(err)
	}

	return url, nil
}

func (s *urlService) Update(ctx context.Context, callerID, id int64, updates map[string]any) (models.URL, error) {
	url, err := s.urls.Update(ctx, id, updates, callerID)
	if err != nil {
		return models.URL{}, fromStore(err)
	}

	return url, nil
}

func (s *urlService) Delete(ctx context.Context, callerID, id int64) error {
	return fromStore(s.urls.Delete(ctx, id, callerID))
}

// Resolve finds a visible URL by short code and counts the click. A failed
// counter update does not fail the redirect.
func (s *urlService) Resolve(ctx context.Context, callerID int64, code string) (models.URL, error) {
	url, err := s.urls.FindOneBy(ctx, fieldShortCode, code, store.AccessOptions{CallerID: callerID})
	if err != nil {
		return models.URL{}, fromStore(err)
	}

	if err = s.urls.Increment(ctx, url.ID, fieldClicks, 1); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Int64("url_id", url.ID).Msg("click was not counted")
		return url, nil
	}
	url.Clicks++

	return url, nil
}
