// Package models contain needed models
package models

// CipherRequest carries the passphrase and text for encrypt/decrypt.
// It binds from JSON or from a url-encoded form.
type CipherRequest struct {
	Key  string `json:"key" form:"key"`
	Text string `json:"text" form:"text"`
}

// CipherResponse represents the response after encrypting or decrypting
type CipherResponse struct {
	Success bool   `json:"success"`
	Result  string `json:"result,omitempty"`
	Error   string `json:"error,omitempty"`
}

// KeySquareRequest represents the request for rendering a key square
type KeySquareRequest struct {
	Key string `json:"key" form:"key"`
}

// KeySquareResponse holds the square as rows of letters plus its text rendering
type KeySquareResponse struct {
	Success   bool       `json:"success"`
	KeySquare [][]string `json:"keySquare,omitempty"`
	Rendered  string     `json:"rendered,omitempty"`
	Error     string     `json:"error,omitempty"`
}

// ErrorResponse is returned for failures outside a specific operation
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// HealthResponse represents the health check payload
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Version string `json:"version"`
}
