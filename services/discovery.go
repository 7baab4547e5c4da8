package services

import (
	"RestoFinder/models"
	"RestoFinder/utils"
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// ParseSortKey accepts an empty value as the default (rating).
func ParseSortKey(raw string) (models.SortKey, error) {
	switch key := models.SortKey(raw); key {
	case "":
		return models.SortByRating, nil
	case models.SortByRating, models.SortByWaitTime, models.SortByPrepTime, models.SortByName:
		return key, nil
	}
	return "", utils.ValidationFailed("sort must be one of rating, waitTime, prepTime, name")
}

// Discover filters catalog by q and returns the matches in sort order.
// The input slice is not modified. Ties keep their catalog order.
func Discover(catalog []models.Restaurant, q models.Query) []models.Restaurant {
	search := strings.ToLower(q.SearchText)

	var favorites map[string]bool
	if q.FavoritesOnly {
		favorites = make(map[string]bool, len(q.Favorites))
		for _, id := range q.Favorites {
			favorites[id] = true
		}
	}

	result := make([]models.Restaurant, 0, len(catalog))
	for _, r := range catalog {
		if !matchesSearch(r, search) {
			continue
		}
		if q.Cuisine != "" && q.Cuisine != models.AllCuisines && r.Cuisine != q.Cuisine {
			continue
		}
		if q.FavoritesOnly && !favorites[r.ID] {
			continue
		}
		result = append(result, r)
	}

	sortRestaurants(result, q.SortKey)
	return result
}

func matchesSearch(r models.Restaurant, search string) bool {
	if search == "" {
		return true
	}
	return strings.Contains(strings.ToLower(r.Name), search) ||
		strings.Contains(strings.ToLower(r.Cuisine), search) ||
		strings.Contains(strings.ToLower(r.Description), search)
}

func sortRestaurants(restaurants []models.Restaurant, key models.SortKey) {
	switch key {
	case models.SortByRating:
		slices.SortStableFunc(restaurants, func(a, b models.Restaurant) int {
			switch {
			case a.Rating > b.Rating:
				return -1
			case a.Rating < b.Rating:
				return 1
			}
			return 0
		})
	case models.SortByWaitTime:
		slices.SortStableFunc(restaurants, func(a, b models.Restaurant) int {
			return a.WaitTime - b.WaitTime
		})
	case models.SortByPrepTime:
		slices.SortStableFunc(restaurants, func(a, b models.Restaurant) int {
			return a.PrepTime - b.PrepTime
		})
	case models.SortByName:
		// a Collator is not safe for concurrent use
		collator := collate.New(language.English)
		slices.SortStableFunc(restaurants, func(a, b models.Restaurant) int {
			return collator.CompareString(a.Name, b.Name)
		})
	}
}

// Cuisines lists the distinct cuisines of catalog in first-seen order, led by "All".
func Cuisines(catalog []models.Restaurant) []string {
	cuisines := []string{models.AllCuisines}
	seen := map[string]bool{models.AllCuisines: true}
	for _, r := range catalog {
		if seen[r.Cuisine] {
			continue
		}
		seen[r.Cuisine] = true
		cuisines = append(cuisines, r.Cuisine)
	}
	return cuisines
}
