// Package gqlapi implements the query-language front end: a GraphQL schema
// exposing the same five note operations as the REST surface.
package gqlapi

import (
	"errors"

	"github.com/graphql-go/graphql"

	"github.com/calder/jot/internal/apperr"
	"github.com/calder/jot/internal/noteservice"
	"github.com/calder/jot/internal/notestore"
)

// noteFromSource unwraps the resolver source into the canonical note record.
func noteFromSource(p graphql.ResolveParams) *notestore.Note {
	switch n := p.Source.(type) {
	case *notestore.Note:
		return n
	case notestore.Note:
		return &n
	}
	return nil
}

func stringArg(p graphql.ResolveParams, name string) string {
	if v, ok := p.Args[name].(string); ok {
		return v
	}
	return ""
}

func newNoteType() *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Note",
		Fields: graphql.Fields{
			"id": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Int),
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return noteFromSource(p).ID, nil
				},
			},
			"title": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return noteFromSource(p).Title, nil
				},
			},
			"content": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return noteFromSource(p).Content, nil
				},
			},
			// Timestamps are the store's raw text representation.
			"createdAt": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return noteFromSource(p).CreatedAt, nil
				},
			},
			"updatedAt": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return noteFromSource(p).UpdatedAt, nil
				},
			},
		},
	})
}

// NewSchema builds the GraphQL schema over the note service.
func NewSchema(svc *noteservice.Service) (graphql.Schema, error) {
	noteType := newNoteType()

	query := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"allNotes": &graphql.Field{
				Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(noteType))),
				Args: graphql.FieldConfigArgument{
					"keyword":  &graphql.ArgumentConfig{Type: graphql.String},
					"fromDate": &graphql.ArgumentConfig{Type: graphql.String},
					"toDate":   &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: func(p graphql.ResolveParams) (any, error) {
					f := notestore.Filter{
						Keyword:  stringArg(p, "keyword"),
						FromDate: stringArg(p, "fromDate"),
						ToDate:   stringArg(p, "toDate"),
					}
					return svc.ListNotes(p.Context, f)
				},
			},
			"getNote": &graphql.Field{
				Type: noteType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: func(p graphql.ResolveParams) (any, error) {
					note, err := svc.GetNote(p.Context, int64(p.Args["id"].(int)))
					if errors.Is(err, apperr.ErrNotFound) {
						return nil, nil
					}
					if err != nil {
						return nil, err
					}
					return note, nil
				},
			},
		},
	})

	mutation := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"createNote": &graphql.Field{
				Type: graphql.NewNonNull(noteType),
				Args: graphql.FieldConfigArgument{
					"title":   &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"content": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return svc.CreateNote(p.Context, p.Args["title"].(string), p.Args["content"].(string))
				},
			},
			"updateNote": &graphql.Field{
				Type: noteType,
				Args: graphql.FieldConfigArgument{
					"id":      &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
					"title":   &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"content": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (any, error) {
					note, err := svc.UpdateNote(p.Context,
						int64(p.Args["id"].(int)), p.Args["title"].(string), p.Args["content"].(string))
					if errors.Is(err, apperr.ErrNotFound) {
						return nil, nil
					}
					if err != nil {
						return nil, err
					}
					return note, nil
				},
			},
			"deleteNote": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Boolean),
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: func(p graphql.ResolveParams) (any, error) {
					err := svc.DeleteNote(p.Context, int64(p.Args["id"].(int)))
					if errors.Is(err, apperr.ErrNotFound) {
						return false, nil
					}
					if err != nil {
						return nil, err
					}
					return true, nil
				},
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    query,
		Mutation: mutation,
	})
}
