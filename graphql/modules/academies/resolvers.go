// Package academies implements the resolvers for the directory queries.
package academies

import (
	"strings"

	"github.com/hanamedu/academy-backend/internal/services"
)

// ResolveAcademy returns one academy by report number, or nil when absent.
func ResolveAcademy(store *services.Store, id string) (interface{}, error) {
	academy, ok := store.Get(id)
	if !ok {
		return nil, nil
	}
	return academy, nil
}

// ResolveSearch returns the full ranked match list for a query.
func ResolveSearch(store *services.Store, query string) (interface{}, error) {
	return services.Search(query, store.Academies()), nil
}

// ResolveSuggest returns the ranked typeahead list, capped at limit on top of
// the engine's own cap.
func ResolveSuggest(store *services.Store, query string, limit int) (interface{}, error) {
	results := services.Suggest(query, store.Academies())
	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

// ResolveOverview computes the snapshot counts. An academy counts as open
// when its status carries "개원", matching the listing's status badge.
func ResolveOverview(store *services.Store) (interface{}, error) {
	academies := store.Academies()
	open := 0
	for _, academy := range academies {
		if strings.Contains(academy.Status, "개원") {
			open++
		}
	}
	return map[string]interface{}{
		"total_academies": len(academies),
		"open_count":      open,
		"closed_count":    len(academies) - open,
		"data_as_of":      store.DataAsOf(),
	}, nil
}
