// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-api-hub/internal/config"
	"github.com/MKhiriev/go-api-hub/internal/events"
	"github.com/MKhiriev/go-api-hub/internal/logger"
	"github.com/MKhiriev/go-api-hub/internal/store"
	"github.com/MKhiriev/go-api-hub/internal/utils"
	"github.com/MKhiriev/go-api-hub/models"
)

// tokenService is the concrete implementation of TokenService.
// Tokens are HS256-signed and carry no expiry; whether a token is usable is
// decided by the token ledger alone.
type tokenService struct {
	// tokenRepository is the token ledger.
	tokenRepository store.TokenRepository

	// userRepository resolves the identity of a token on rotation.
	userRepository store.UserRepository

	// publisher receives lifecycle events. Failures are logged and ignored.
	publisher events.Publisher

	// recorder writes last-used stamps asynchronously. When nil the stamp is
	// written inline during validation.
	recorder LastUsedRecorder

	// ids generates the unique "jti" of every minted token.
	ids *utils.UUIDGenerator

	// tokenSignKey is the HMAC secret used to sign and verify tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued token.
	// Tokens whose issuer does not match this value are rejected.
	tokenIssuer string

	// prefixLength is how much of a token ListActive reveals.
	prefixLength int

	// now is the clock, replaceable in tests.
	now func() time.Time

	logger *logger.Logger
}

// NewTokenService constructs a TokenService. recorder may be nil.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewTokenService(
	tokenRepository store.TokenRepository,
	userRepository store.UserRepository,
	publisher events.Publisher,
	recorder LastUsedRecorder,
	cfg config.App,
	logger *logger.Logger,
) TokenService {
	if publisher == nil {
		publisher = events.NewNopPublisher()
	}

	return &tokenService{
		tokenRepository: tokenRepository,
		userRepository:  userRepository,
		publisher:       publisher,
		recorder:        recorder,
		ids:             utils.NewUUIDGenerator(),
		tokenSignKey:    cfg.TokenSignKey,
		tokenIssuer:     cfg.TokenIssuer,
		prefixLength:    cfg.TokenPrefixLength,
		now:             func() time.Time { return time.Now().UTC() },
		logger:          logger,
	}
}

// Issue mints a new active token for user and records it in the ledger.
func (s *tokenService) Issue(ctx context.Context, user models.User, description string) (models.IssuedToken, error) {
	issued, err := s.mint(ctx, user, description, nil)
	if err != nil {
		return models.IssuedToken{}, err
	}

	s.publish(ctx, events.Event{Type: events.TokenIssued, UserID: user.UserID, Email: user.Email})
	return issued, nil
}

// Validate verifies the signature of token and checks that the ledger holds
// an active record for it.
//
// Returns the caller identity or:
//   - ErrInvalidToken for malformed input or a bad signature.
//   - ErrTokenRevoked when no active record exists (never issued or revoked).
//   - ErrUnavailable when the ledger could not be queried.
func (s *tokenService) Validate(ctx context.Context, token string) (models.Caller, error) {
	log := logger.FromContext(ctx)

	if _, _, err := utils.ValidateAndParseToken(token, s.tokenSignKey, s.tokenIssuer); err != nil {
		log.Debug().Err(err).Str("func", "*tokenService.Validate").Msg("token rejected")
		return models.Caller{}, ErrInvalidToken
	}

	rec, err := s.tokenRepository.FindActiveToken(ctx, token)
	if errors.Is(err, store.ErrTokenNotFound) {
		log.Debug().Str("func", "*tokenService.Validate").Msg("token is not active")
		return models.Caller{}, ErrTokenRevoked
	}
	if err != nil {
		log.Err(err).Str("func", "*tokenService.Validate").Msg("token lookup failed")
		return models.Caller{}, fromStore(err)
	}

	s.touch(ctx, token)

	return models.Caller{UserID: rec.UserID, Email: rec.Email, Token: token}, nil
}

// Rotate replaces oldToken with a freshly minted token for the same user.
//
// With revokeOld the new token is written first (pointing back at the old
// one), then the old token is revoked by a conditional update that only
// succeeds while it is still active. If a concurrent rotation or revocation
// got there first the new token is revoked again and ErrTokenNotActive is
// returned, so at most one rotation of a token ever succeeds.
//
// Without revokeOld both tokens stay active.
func (s *tokenService) Rotate(ctx context.Context, oldToken string, revokeOld bool, description string) (models.IssuedToken, models.User, error) {
	log := logger.FromContext(ctx)

	if _, _, err := utils.ValidateAndParseToken(oldToken, s.tokenSignKey, s.tokenIssuer); err != nil {
		return models.IssuedToken{}, models.User{}, ErrInvalidToken
	}

	old, err := s.tokenRepository.FindActiveToken(ctx, oldToken)
	if errors.Is(err, store.ErrTokenNotFound) {
		return models.IssuedToken{}, models.User{}, ErrTokenNotActive
	}
	if err != nil {
		return models.IssuedToken{}, models.User{}, fromStore(err)
	}

	user, err := s.userRepository.FindUserByID(ctx, old.UserID)
	if errors.Is(err, store.ErrNoUserWasFound) {
		log.Warn().Int64("user_id", old.UserID).Str("func", "*tokenService.Rotate").Msg("token owner does not exist")
		return models.IssuedToken{}, models.User{}, ErrUserNotFound
	}
	if err != nil {
		return models.IssuedToken{}, models.User{}, fromStore(err)
	}

	if description == "" {
		description = old.Description
	}

	var rotatedFrom *string
	if revokeOld {
		rotatedFrom = &oldToken
	}

	issued, err := s.mint(ctx, user, description, rotatedFrom)
	if err != nil {
		return models.IssuedToken{}, models.User{}, err
	}

	if revokeOld {
		revoked, err := s.tokenRepository.RevokeToken(ctx, oldToken, s.now(), &issued.SignedString)
		if err != nil || !revoked {
			// the new token must not outlive a failed rotation
			if rollbackErr := s.tokenRepository.DiscardToken(context.WithoutCancel(ctx), issued.SignedString, s.now()); rollbackErr != nil {
				log.Err(rollbackErr).Str("func", "*tokenService.Rotate").Msg("failed to revoke token of a lost rotation")
			}
			if err != nil {
				log.Err(err).Str("func", "*tokenService.Rotate").Msg("failed to revoke rotated token")
				return models.IssuedToken{}, models.User{}, fromStore(err)
			}
			log.Info().Int64("user_id", user.UserID).Str("func", "*tokenService.Rotate").Msg("concurrent rotation lost")
			return models.IssuedToken{}, models.User{}, ErrTokenNotActive
		}
	}

	s.publish(ctx, events.Event{Type: events.TokenRotated, UserID: user.UserID, Email: user.Email})
	return issued, user, nil
}

// Revoke revokes a token of caller. Unknown tokens and tokens of other users
// both yield ErrNotFound; revoking an already revoked token is a no-op.
func (s *tokenService) Revoke(ctx context.Context, caller models.Caller, token string) error {
	rec, err := s.tokenRepository.FindToken(ctx, token)
	if errors.Is(err, store.ErrTokenNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return fromStore(err)
	}

	if rec.UserID != caller.UserID {
		return ErrNotFound
	}
	if !rec.IsActive {
		return nil
	}

	revoked, err := s.tokenRepository.RevokeToken(ctx, token, s.now(), nil)
	if err != nil {
		return fromStore(err)
	}

	if revoked {
		s.publish(ctx, events.Event{Type: events.TokenRevoked, UserID: rec.UserID, Email: rec.Email})
	}
	return nil
}

// RevokeAll revokes every active token of email and returns how many were
// actually revoked.
func (s *tokenService) RevokeAll(ctx context.Context, email string) (int64, error) {
	count, err := s.tokenRepository.RevokeAllTokens(ctx, email, s.now())
	if err != nil {
		return 0, fromStore(err)
	}

	if count > 0 {
		s.publish(ctx, events.Event{Type: events.TokenRevokedAll, Email: email, Count: count})
	}
	return count, nil
}

// ListActive returns summaries of the active tokens of email. Summaries
// expose only a prefix of each token.
func (s *tokenService) ListActive(ctx context.Context, email string) ([]models.TokenSummary, error) {
	records, err := s.tokenRepository.ListActiveTokens(ctx, email)
	if err != nil {
		return nil, fromStore(err)
	}

	summaries := make([]models.TokenSummary, 0, len(records))
	for _, rec := range records {
		summaries = append(summaries, rec.Summary(s.prefixLength))
	}
	return summaries, nil
}

func (s *tokenService) mint(ctx context.Context, user models.User, description string, rotatedFrom *string) (models.IssuedToken, error) {
	log := logger.FromContext(ctx)

	signed, err := utils.GenerateToken(s.tokenIssuer, s.tokenSignKey, user.UserID, user.Email, s.ids.Generate())
	if err != nil {
		log.Err(err).Str("func", "*tokenService.mint").Msg("error signing token")
		return models.IssuedToken{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	rec, err := s.tokenRepository.CreateToken(ctx, models.TokenRecord{
		Token:       signed,
		UserID:      user.UserID,
		Email:       user.Email,
		Description: description,
		CreatedAt:   s.now(),
		RotatedFrom: rotatedFrom,
	})
	if err != nil {
		log.Err(err).Str("func", "*tokenService.mint").Int64("user_id", user.UserID).Msg("error saving token")
		return models.IssuedToken{}, fromStore(err)
	}

	return models.IssuedToken{SignedString: signed, Record: rec}, nil
}

// touch stamps last-used. It never fails the caller.
func (s *tokenService) touch(ctx context.Context, token string) {
	at := s.now()
	if s.recorder != nil {
		s.recorder.Record(token, at)
		return
	}

	if err := s.tokenRepository.TouchToken(ctx, token, at); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("func", "*tokenService.touch").Msg("failed to record token usage")
	}
}

func (s *tokenService) publish(ctx context.Context, event events.Event) {
	event.OccurredAt = s.now()
	if err := s.publisher.Publish(ctx, event); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("event", event.Type).Msg("failed to publish lifecycle event")
	}
}
