// Package events publishes token lifecycle events to a message broker.
// Publishing is best-effort: callers log failures and carry on.
package events

import (
	"context"
	"time"
)

//go:generate mockgen -source=events.go -destination=../mock/events_mock.go -package=mock

// Routing keys of the published events.
const (
	TokenIssued     = "token.issued"
	TokenRotated    = "token.rotated"
	TokenRevoked    = "token.revoked"
	TokenRevokedAll = "token.revoked_all"
)

// Event is the JSON body of a lifecycle message. It never carries a usable
// credential.
type Event struct {
	Type       string    `json:"type"`
	UserID     int64     `json:"userId"`
	Email      string    `json:"email"`
	Count      int64     `json:"count,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}

// Publisher sends events to the broker.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}
