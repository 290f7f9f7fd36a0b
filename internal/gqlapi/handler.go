package gqlapi

import (
	"net/http"

	"github.com/graphql-go/graphql"
	"github.com/graphql-go/handler"
)

// NewHandler returns an HTTP handler serving the schema, with GraphiQL
// enabled for interactive use.
func NewHandler(schema graphql.Schema) http.Handler {
	return handler.New(&handler.Config{
		Schema:   &schema,
		Pretty:   true,
		GraphiQL: true,
	})
}
