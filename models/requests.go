package models

// SignupRequest is the body of POST /api/auth/signup.
type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	Description string `json:"description,omitempty"`
}

// ProfileUpdateRequest carries optional profile changes. Nil fields are
// left untouched.
type ProfileUpdateRequest struct {
	Name     *string `json:"name,omitempty"`
	Password *string `json:"password,omitempty"`
}

// RotateRequest is the optional body of POST /api/auth/tokens/rotate.
// RevokeOld defaults to true when omitted.
type RotateRequest struct {
	RevokeOld   *bool  `json:"revokeOld,omitempty"`
	Description string `json:"description,omitempty"`
}

// RevokeTokenRequest is the body of POST /api/auth/tokens/revoke.
type RevokeTokenRequest struct {
	Token string `json:"token"`
}

// TodoInput is the body used to create a todo.
type TodoInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
	IsPublic    *bool  `json:"isPublic,omitempty"`
}

// NoteInput is the body used to create a note.
type NoteInput struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	IsPublic *bool  `json:"isPublic,omitempty"`
}

// URLInput is the body used to shorten a link.
type URLInput struct {
	OriginalURL string `json:"originalUrl"`
	IsPublic    *bool  `json:"isPublic,omitempty"`
}

// BulkCompleteRequest marks many todos of the caller at once.
type BulkCompleteRequest struct {
	IDs       []int64 `json:"ids"`
	Completed bool    `json:"completed"`
}

// ListQuery is the parsed form of the listing query string shared by every
// resource controller.
type ListQuery struct {
	Filter   map[string]any
	Search   string
	Sort     string
	Page     int
	PageSize int
}
