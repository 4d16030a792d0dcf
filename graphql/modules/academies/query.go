// Package academies defines the GraphQL queries for the academy directory.
package academies

import (
	"github.com/graphql-go/graphql"

	"github.com/hanamedu/academy-backend/internal/services"
)

// GetQueryFields returns the directory queries to be mounted in the root schema
func GetQueryFields(store *services.Store) graphql.Fields {
	return graphql.Fields{
		// One entity by report number
		"academy": &graphql.Field{
			Type: AcademyType,
			Args: graphql.FieldConfigArgument{
				"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				id := p.Args["id"].(string)
				return ResolveAcademy(store, id)
			},
		},
		// Full ranked result list for a submitted search
		"searchAcademies": &graphql.Field{
			Type: graphql.NewList(AcademyType),
			Args: graphql.FieldConfigArgument{
				"query": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				query := p.Args["query"].(string)
				return ResolveSearch(store, query)
			},
		},
		// Capped typeahead list for a partial query
		"suggestAcademies": &graphql.Field{
			Type: graphql.NewList(AcademyType),
			Args: graphql.FieldConfigArgument{
				"query": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				"limit": &graphql.ArgumentConfig{Type: graphql.Int, DefaultValue: services.SuggestLimit},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				query := p.Args["query"].(string)
				// An explicit null overrides the default, so the assertion
				// must not panic on a missing int.
				limit, ok := p.Args["limit"].(int)
				if !ok {
					limit = services.SuggestLimit
				}
				return ResolveSuggest(store, query, limit)
			},
		},
		// Snapshot counts for the header cards
		"directoryOverview": &graphql.Field{
			Type: DirectoryOverviewType,
			Resolve: func(_ graphql.ResolveParams) (interface{}, error) {
				return ResolveOverview(store)
			},
		},
	}
}
