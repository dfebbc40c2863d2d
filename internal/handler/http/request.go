package http

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-api-hub/models"
)

// Query parameters with a fixed meaning; every other parameter is a filter.
const (
	queryPage     = "page"
	queryPageSize = "pageSize"
	querySort     = "sort"
	querySearch   = "q"
)

// maxBodyBytes bounds request bodies. Notes are the largest payload.
const maxBodyBytes = 1 << 20

// decodeJSON decodes the body of r into dst. An empty body is accepted
// when allowEmpty is set and leaves dst untouched.
func decodeJSON(r *http.Request, dst any, allowEmpty bool) error {
	err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(dst)
	if err == io.EOF && allowEmpty {
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}

func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidID
	}
	return id, nil
}

// parseListQuery reads paging, sorting, search and filters from values.
// Filter values stay strings; the repository converts them per field.
func parseListQuery(values url.Values) (models.ListQuery, error) {
	query := models.ListQuery{
		Sort:   values.Get(querySort),
		Search: values.Get(querySearch),
	}

	var err error
	if query.Page, err = positiveInt(values, queryPage); err != nil {
		return models.ListQuery{}, err
	}
	if query.PageSize, err = positiveInt(values, queryPageSize); err != nil {
		return models.ListQuery{}, err
	}
	if query.Page > math.MaxInt/max(query.PageSize, 1) {
		return models.ListQuery{}, fmt.Errorf("%w: %s is too large", ErrInvalidQuery, queryPage)
	}

	for key, vals := range values {
		switch key {
		case queryPage, queryPageSize, querySort, querySearch:
			continue
		}
		if query.Filter == nil {
			query.Filter = make(map[string]any)
		}
		query.Filter[key] = vals[0]
	}

	return query, nil
}

func positiveInt(values url.Values, key string) (int, error) {
	raw := values.Get(key)
	if raw == "" {
		return 0, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%w: %s must be a positive integer", ErrInvalidQuery, key)
	}
	return n, nil
}
