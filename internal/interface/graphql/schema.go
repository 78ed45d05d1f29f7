package graphql

import (
	"github.com/graphql-go/graphql"
)

// NewSchema builds the executable schema around the resolver.
func NewSchema(r *Resolver) (graphql.Schema, error) {
	return graphql.NewSchema(graphql.SchemaConfig{
		Query: graphql.NewObject(graphql.ObjectConfig{
			Name:   "Query",
			Fields: r.queryFields(),
		}),
		Mutation: graphql.NewObject(graphql.ObjectConfig{
			Name:   "Mutation",
			Fields: r.mutationFields(),
		}),
	})
}
