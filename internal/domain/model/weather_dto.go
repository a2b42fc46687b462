package model

// LookupRequestDTO is the body accepted by the session lookup endpoint
type LookupRequestDTO struct {
	City string `json:"city" form:"city"`
}

// ErrorResponseDTO is returned by the API whenever a lookup fails
type ErrorResponseDTO struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}
