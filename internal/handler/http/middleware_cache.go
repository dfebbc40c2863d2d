package http

import (
	"bytes"
	"context"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-api-hub/internal/cache"
	"github.com/MKhiriev/go-api-hub/internal/logger"
	"github.com/MKhiriev/go-api-hub/internal/utils"
)

const cacheStatusHeader = "X-Cache"

// Guest cache collections. Every mutation of a collection bumps its version.
const (
	collectionTodos = "todos"
	collectionNotes = "notes"
	collectionURLs  = "urls"
)

// captureWriter keeps a copy of the body while forwarding it to the client.
type captureWriter struct {
	*responseWriter
	buf bytes.Buffer
}

func (w *captureWriter) Write(b []byte) (int, error) {
	n, err := w.responseWriter.Write(b)
	w.buf.Write(b[:n])
	return n, err
}

// withGuestCache serves guest GET requests of collection from the response
// cache. Only successful responses are stored. Authenticated callers always
// bypass the cache because their listings include private rows.
//
// Must run after optionalAuth.
func (h *Handler) withGuestCache(collection string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if !h.cache.Enabled() {
			return next
		}
		return h.guestCache(collection, next)
	}
}

func (h *Handler) guestCache(collection string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			next.ServeHTTP(w, r)
			return
		}
		if _, authenticated := utils.CallerFromContext(r.Context()); authenticated {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r)

		version, err := h.cache.Version(r.Context(), collection)
		if err != nil {
			log.Warn().Err(err).Msg("response cache bypassed")
			next.ServeHTTP(w, r)
			return
		}
		key := fmt.Sprintf("%s:v%d:%s?%s", collection, version, r.URL.Path, r.URL.RawQuery)

		entry, ok, err := h.cache.Get(r.Context(), key)
		if err != nil {
			log.Warn().Err(err).Msg("response cache lookup failed")
		}
		if ok {
			for name, values := range entry.Header {
				for _, v := range values {
					w.Header().Add(name, v)
				}
			}
			w.Header().Set(cacheStatusHeader, "HIT")
			w.WriteHeader(entry.Status)
			_, _ = w.Write(entry.Body)
			return
		}

		w.Header().Set(cacheStatusHeader, "MISS")
		cw := &captureWriter{responseWriter: &responseWriter{ResponseWriter: w}}
		next.ServeHTTP(cw, r)

		if cw.status != http.StatusOK {
			return
		}

		header := http.Header{"Content-Type": w.Header().Values("Content-Type")}
		err = h.cache.Set(context.WithoutCancel(r.Context()), key, cache.Entry{
			Status: cw.status,
			Header: header,
			Body:   cw.buf.Bytes(),
		})
		if err != nil {
			log.Warn().Err(err).Msg("response was not cached")
		}
	})
}

// withCacheInvalidation bumps the guest cache version of collection when a
// mutating request succeeds. The bump happens before the status line reaches
// the client, so a guest reading after the response never gets an entry
// rendered before the change.
func (h *Handler) withCacheInvalidation(collection string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if !h.cache.Enabled() {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodGet, http.MethodHead, http.MethodOptions:
				next.ServeHTTP(w, r)
				return
			}

			iw := &invalidatingWriter{ResponseWriter: w, bump: func() {
				if err := h.cache.Bump(context.WithoutCancel(r.Context()), collection); err != nil {
					logger.FromRequest(r).Error().Err(err).Str("collection", collection).Msg("guest cache was not invalidated")
				}
			}}
			next.ServeHTTP(iw, r)
		})
	}
}

// invalidatingWriter runs bump once, before a non-error status is written.
type invalidatingWriter struct {
	http.ResponseWriter
	bump        func()
	wroteHeader bool
}

func (w *invalidatingWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.wroteHeader = true
	if statusCode < http.StatusBadRequest {
		w.bump()
	}
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *invalidatingWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	return w.ResponseWriter.Write(b)
}

func (w *invalidatingWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
