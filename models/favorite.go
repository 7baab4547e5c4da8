package models

// FavoriteRequest is the body of POST /favorites
type FavoriteRequest struct {
	RestaurantID string `json:"restaurantId"`
}
