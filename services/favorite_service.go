package services

import (
	"RestoFinder/store"
	"RestoFinder/utils"
	"context"
	"slices"

	"go.uber.org/zap"
)

// FavoritesKeyPrefix namespaces per-user favorites lists in the key-value store.
const FavoritesKeyPrefix = "favorites:"

func favoritesKey(userID string) string {
	return FavoritesKeyPrefix + userID
}

// FavoriteService keeps each user's ordered list of favorite restaurant ids.
// Every call takes a userID already resolved by AuthService.
//
// Add and Remove are read-modify-write cycles on one key with no lock;
// concurrent mutations by the same user end in whichever write lands last.
type FavoriteService struct {
	Store  store.KeyValueStore
	Logger *zap.SugaredLogger
}

func NewFavoriteService(kv store.KeyValueStore, logger *zap.SugaredLogger) *FavoriteService {
	return &FavoriteService{
		Store:  kv,
		Logger: logger,
	}
}

// GetFavorites returns the stored list, or an empty list for a new user.
func (f *FavoriteService) GetFavorites(ctx context.Context, userID string) ([]string, error) {
	favorites := make([]string, 0)
	if _, err := store.GetJSON(ctx, f.Store, favoritesKey(userID), &favorites); err != nil {
		f.Logger.Errorw("Failed to fetch favorites", "userId", userID, "error", err)
		return nil, utils.StorageUnavailable(err)
	}
	if favorites == nil {
		favorites = make([]string, 0)
	}
	return favorites, nil
}

// AddFavorite appends restaurantID. Already present ids leave storage untouched.
func (f *FavoriteService) AddFavorite(ctx context.Context, userID, restaurantID string) ([]string, error) {
	if restaurantID == "" {
		return nil, utils.ValidationFailed("restaurantId is required")
	}

	favorites, err := f.GetFavorites(ctx, userID)
	if err != nil {
		return nil, err
	}
	if slices.Contains(favorites, restaurantID) {
		return favorites, nil
	}

	favorites = append(favorites, restaurantID)
	if err := store.SetJSON(ctx, f.Store, favoritesKey(userID), favorites); err != nil {
		f.Logger.Errorw("Failed to add favorite", "userId", userID, "restaurantId", restaurantID, "error", err)
		return nil, utils.StorageUnavailable(err)
	}

	f.Logger.Debugw("Favorite added", "userId", userID, "restaurantId", restaurantID)
	return favorites, nil
}

// RemoveFavorite drops restaurantID keeping the order of the rest.
// Removing an id that is not in the list writes nothing.
func (f *FavoriteService) RemoveFavorite(ctx context.Context, userID, restaurantID string) ([]string, error) {
	if restaurantID == "" {
		return nil, utils.ValidationFailed("restaurantId is required")
	}

	favorites, err := f.GetFavorites(ctx, userID)
	if err != nil {
		return nil, err
	}

	updated := make([]string, 0, len(favorites))
	for _, id := range favorites {
		if id != restaurantID {
			updated = append(updated, id)
		}
	}
	if len(updated) == len(favorites) {
		return favorites, nil
	}

	if err := store.SetJSON(ctx, f.Store, favoritesKey(userID), updated); err != nil {
		f.Logger.Errorw("Failed to remove favorite", "userId", userID, "restaurantId", restaurantID, "error", err)
		return nil, utils.StorageUnavailable(err)
	}

	f.Logger.Debugw("Favorite removed", "userId", userID, "restaurantId", restaurantID)
	return updated, nil
}
