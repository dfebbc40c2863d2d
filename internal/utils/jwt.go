package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-api-hub/models"
	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrNoBearerToken is returned by ParseBearerToken when the Authorization
	// header is absent or blank.
	ErrNoBearerToken = errors.New("no bearer token")

	// ErrInvalidAuthorizationHeader is returned by ParseBearerToken when the
	// Authorization header is present but not of the form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid authorization header")
)

// GenerateToken creates a signed HMAC-SHA256 bearer token.
//
// The token includes the following claims:
//   - email: the owner's email, returned by validation
//   - Issuer   (iss): identifies the service that issued the token
//   - Subject  (sub): the user ID encoded as a string
//   - IssuedAt (iat): the current time
//   - ID       (jti): tokenID, making every minted token string unique
//
// No expiry claim is embedded: a token stays valid until it is revoked.
//
// Example usage:
//
//	signed, err := utils.GenerateToken("go-api-hub", "secret", 42, "a@x.com", uuid.NewString())
func GenerateToken(issuer, signKey string, userID int64, email, tokenID string) (string, error) {
	if issuer == "" || signKey == "" || email == "" || tokenID == "" {
		return "", errors.New("invalid params for generating token")
	}

	claims := &models.TokenClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:   issuer,
			Subject:  strconv.FormatInt(userID, 10),
			IssuedAt: jwt.NewNumericDate(time.Now()),
			ID:       tokenID,
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(signKey))
	if err != nil {
		return "", fmt.Errorf("error occurred during signing token: %w", err)
	}

	return signed, nil
}

// ValidateAndParseToken verifies the signature and issuer of tokenString and
// returns its claims together with the numeric user id from "sub".
//
// Any failure (malformed input, wrong signature, wrong algorithm, wrong
// issuer, missing subject or email) is returned as an error; callers treat
// all of them as an invalid credential.
func ValidateAndParseToken(tokenString, signKey, issuer string) (*models.TokenClaims, int64, error) {
	claims := &models.TokenClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(signKey), nil
	}, jwt.WithIssuer(issuer), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, 0, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.Subject == "" {
		return nil, 0, errors.New("empty subject error")
	}
	if claims.Email == "" {
		return nil, 0, errors.New("empty email claim")
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return nil, 0, fmt.Errorf("error occurred during converting subject to user id: %w", err)
	}

	return claims, userID, nil
}

// ParseBearerToken extracts the credential from an Authorization header
// value. The scheme is matched case-insensitively.
func ParseBearerToken(authorizationHeader string) (string, error) {
	header := strings.TrimSpace(authorizationHeader)
	if header == "" {
		return "", ErrNoBearerToken
	}

	scheme, token, found := strings.Cut(header, " ")
	token = strings.TrimSpace(token)
	if !found || !strings.EqualFold(scheme, "Bearer") || token == "" || strings.Contains(token, " ") {
		return "", ErrInvalidAuthorizationHeader
	}

	return token, nil
}
