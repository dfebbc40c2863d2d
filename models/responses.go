package models

// AuthResponse is returned by signup and login.
type AuthResponse struct {
	Token string   `json:"token"`
	User  UserView `json:"user"`
}

// RotateResponse is returned by token rotation.
type RotateResponse struct {
	Token           string   `json:"token"`
	OldTokenRevoked bool     `json:"oldTokenRevoked"`
	User            UserView `json:"user"`
}

// TokenListResponse lists the caller's active tokens.
type TokenListResponse struct {
	Tokens []TokenSummary `json:"tokens"`
	Count  int            `json:"count"`
}

// RevokeAllResponse reports how many tokens were transitioned to revoked.
type RevokeAllResponse struct {
	Revoked int64 `json:"revoked"`
}

// BulkUpdateResponse reports how many rows a bulk mutation touched.
type BulkUpdateResponse struct {
	Updated int64 `json:"updated"`
}

// ErrorResponse is the JSON error envelope. Reason is a machine-stable
// code and is set for authentication failures.
type ErrorResponse struct {
	Error  string `json:"error"`
	Reason string `json:"reason,omitempty"`
}
