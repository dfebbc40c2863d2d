package service

import (
	"github.com/MKhiriev/go-api-hub/internal/store"
	"github.com/MKhiriev/go-api-hub/models"
)

// pageOptions translates a parsed listing query into repository options.
// Page size bounds are enforced by the repository schema.
func pageOptions(callerID int64, query models.ListQuery) store.PageOptions {
	return store.PageOptions{
		FindOptions: store.FindOptions{
			CallerID: callerID,
			Filter:   query.Filter,
			Sort:     query.Sort,
		},
		Page:     query.Page,
		PageSize: query.PageSize,
	}
}

func visibility(isPublic *bool, fallback bool) bool {
	if isPublic == nil {
		return fallback
	}
	return *isPublic
}
