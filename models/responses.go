package models

// TokenResponse is returned by login and registration.
type TokenResponse struct {
	Token string `json:"token"`
}

// DataResponse wraps a single payload.
type DataResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data,omitempty"`
}

// ListResponse wraps a collection of users.
type ListResponse struct {
	Success bool   `json:"success"`
	Count   int    `json:"count"`
	Data    []User `json:"data"`
}

// AuthResponse is returned by the token check endpoint.
type AuthResponse struct {
	Authenticated bool           `json:"authenticated"`
	User          AuthProjection `json:"user"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}
