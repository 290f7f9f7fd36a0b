package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/calder/jot/internal/noteservice"
)

// NewRouter creates a chi router with the note resource routes mounted.
func NewRouter(svc *noteservice.Service) chi.Router {
	h := NewHandler(svc)

	r := chi.NewRouter()

	r.Get("/notes", h.ListNotes)
	r.Post("/notes", h.CreateNote)
	r.Get("/notes/{id}", h.GetNote)
	r.Put("/notes/{id}", h.UpdateNote)
	r.Delete("/notes/{id}", h.DeleteNote)

	return r
}
