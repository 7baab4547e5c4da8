package models

// SortKey selects the ordering applied by discovery.
type SortKey string

const (
	SortByRating   SortKey = "rating"
	SortByWaitTime SortKey = "waitTime"
	SortByPrepTime SortKey = "prepTime"
	SortByName     SortKey = "name"
)

// AllCuisines is the cuisine filter value that disables cuisine filtering.
const AllCuisines = "All"

// Query describes one discovery request over a catalog snapshot.
// Favorites is the caller's favorites list, consulted only when FavoritesOnly is set.
type Query struct {
	SearchText    string
	Cuisine       string
	FavoritesOnly bool
	Favorites     []string
	SortKey       SortKey
}
