package dto

// ErrorResponse HTTP error body.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse body for operations that return no entity.
type MessageResponse struct {
	Message string `json:"message"`
}
