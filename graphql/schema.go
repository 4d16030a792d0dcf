// Package graphql assembles the root schema from the module query fields.
package graphql

import (
	"github.com/graphql-go/graphql"

	"github.com/hanamedu/academy-backend/graphql/modules/academies"
	"github.com/hanamedu/academy-backend/internal/services"
)

// CreateSchema builds the root query schema over the directory store.
func CreateSchema(store *services.Store) (graphql.Schema, error) {
	fields := graphql.Fields{}
	for name, field := range academies.GetQueryFields(store) {
		fields[name] = field
	}

	root := graphql.NewObject(graphql.ObjectConfig{
		Name:   "Query",
		Fields: fields,
	})
	return graphql.NewSchema(graphql.SchemaConfig{Query: root})
}
