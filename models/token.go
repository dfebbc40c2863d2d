package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenRecord is a row of the token ledger. The Token string is immutable
// once minted; only IsActive, LastUsedAt, RevokedAt and the rotation
// pointers ever change.
type TokenRecord struct {
	ID          int64      `json:"-"`
	Token       string     `json:"-"`
	UserID      int64      `json:"userId"`
	Email       string     `json:"email"`
	IsActive    bool       `json:"isActive"`
	Description string     `json:"description"`
	CreatedAt   time.Time  `json:"createdAt"`
	LastUsedAt  *time.Time `json:"lastUsedAt,omitempty"`
	RevokedAt   *time.Time `json:"revokedAt,omitempty"`
	RotatedFrom *string    `json:"-"`
	RotatedTo   *string    `json:"-"`
}

// TableName returns the name of the database table
// associated with the TokenRecord model.
func (t TokenRecord) TableName() string {
	return "tokens"
}

// Summary returns a listing view of the record that exposes only the first
// prefixLength characters of the credential.
func (t TokenRecord) Summary(prefixLength int) TokenSummary {
	prefix := t.Token
	if prefixLength > 0 && len(prefix) > prefixLength {
		prefix = prefix[:prefixLength]
	}

	return TokenSummary{
		Prefix:      prefix + "...",
		Description: t.Description,
		CreatedAt:   t.CreatedAt,
		LastUsedAt:  t.LastUsedAt,
	}
}

// TokenSummary is what ListActive hands out: never a usable credential.
type TokenSummary struct {
	Prefix      string     `json:"token"`
	Description string     `json:"description"`
	CreatedAt   time.Time  `json:"createdAt"`
	LastUsedAt  *time.Time `json:"lastUsedAt,omitempty"`
}

// TokenClaims is the claim set embedded in every issued bearer token.
// It carries no "exp" claim; a token lives until it is revoked.
type TokenClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// IssuedToken is the result of minting a credential: the signed string and
// the ledger row persisted for it.
type IssuedToken struct {
	SignedString string
	Record       TokenRecord
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t IssuedToken) String() string {
	return t.SignedString
}
