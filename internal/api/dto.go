package api

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// NoteRequest is the request body for creating or updating a note.
//
// Title and Content are pointers so an absent field can be told apart from
// an empty string: empty strings are stored as-is, only missing or null
// fields are rejected.
type NoteRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

// Validate rejects absent title/content; empty strings pass.
func (r NoteRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.NotNil),
		validation.Field(&r.Content, validation.NotNil),
	)
}

// SuccessResponse is returned by DELETE /notes/{id}.
type SuccessResponse struct {
	Success bool `json:"success"`
}
