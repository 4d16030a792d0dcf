// Package academies provides the REST handlers for directory search,
// suggestions, and the detail view.
package academies

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hanamedu/academy-backend/internal/services"
	"github.com/hanamedu/academy-backend/model"
	"github.com/hanamedu/academy-backend/util"
)

// SuggestionItem is the compact shape the typeahead dropdown renders.
type SuggestionItem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Status      string `json:"status"`
	FounderName string `json:"founder_name"`
}

// SearchResponse wraps the ranked result list for a submitted search.
type SearchResponse struct {
	Query   string           `json:"query"`
	Count   int              `json:"count"`
	Results []*model.Academy `json:"results"`
}

// DetailResponse is the detail view payload: the academy, its derived
// display fields, and the same-building cross references.
type DetailResponse struct {
	Academy      *model.Academy     `json:"academy"`
	BaseAddress  string             `json:"base_address"`
	RoomRange    string             `json:"room_range"`
	BuildingName string             `json:"building_name"`
	MapURL       string             `json:"map_url"`
	PlaceURL     string             `json:"place_url"`
	SameBuilding []SameBuildingItem `json:"same_building"`
}

// SameBuildingItem summarizes one academy sharing the selected academy's
// building.
type SameBuildingItem struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Status        string `json:"status"`
	Address       string `json:"address"`
	RoomRange     string `json:"room_range"`
	TotalArea     string `json:"total_area"`
	DedicatedArea string `json:"dedicated_area"`
}

// Suggest handles the capped typeahead lookup for partial queries.
func Suggest(store *services.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		matches := services.Suggest(c.Query("q"), store.Academies())
		items := make([]SuggestionItem, 0, len(matches))
		for _, academy := range matches {
			items = append(items, SuggestionItem{
				ID:          academy.ID,
				Name:        academy.Name,
				Status:      academy.Status,
				FounderName: academy.Founder.Name,
			})
		}
		return c.JSON(items)
	}
}

// Search handles a submitted search and returns the full ranked match list.
func Search(store *services.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		query := c.Query("q")
		results := services.Search(query, store.Academies())
		if results == nil {
			results = []*model.Academy{}
		}
		return c.JSON(SearchResponse{Query: query, Count: len(results), Results: results})
	}
}

// Get returns one academy by report number together with its derived display
// fields and the list of academies in the same building.
func Get(store *services.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		academy, ok := store.Get(c.Params("id"))
		if !ok {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Academy not found",
			})
		}

		peers := store.SameBuilding(academy)
		sameBuilding := make([]SameBuildingItem, 0, len(peers))
		for _, peer := range peers {
			sameBuilding = append(sameBuilding, SameBuildingItem{
				ID:            peer.ID,
				Name:          peer.Name,
				Status:        peer.Status,
				Address:       peer.Address,
				RoomRange:     util.FormatRoomRange(peer.Address),
				TotalArea:     peer.Facilities.TotalArea,
				DedicatedArea: peer.Facilities.DedicatedArea,
			})
		}

		return c.JSON(DetailResponse{
			Academy:      academy,
			BaseAddress:  util.BaseAddress(academy.Address),
			RoomRange:    util.FormatRoomRange(academy.Address),
			BuildingName: util.BuildingName(academy.Address),
			MapURL:       util.NaverMapURL(academy.Address),
			PlaceURL:     util.NaverPlaceURL(academy.Name, academy.Address),
			SameBuilding: sameBuilding,
		})
	}
}

// Meta reports the loaded snapshot: the data-as-of label and entity count.
func Meta(store *services.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"data_as_of": store.DataAsOf(),
			"count":      store.Count(),
			"loaded_at":  store.LoadedAt(),
		})
	}
}

// Reload re-runs the load pipeline on user request. A failed load leaves the
// previous collection in place and surfaces a single generic failure state.
func Reload(store *services.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := store.Load(c.Context()); err != nil {
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
				"error": "데이터를 불러오는데 실패했습니다.",
			})
		}
		return c.JSON(fiber.Map{
			"success":    true,
			"count":      store.Count(),
			"data_as_of": store.DataAsOf(),
		})
	}
}
