package models

// ErrorResponse is the standard error body returned by every handler.
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}
