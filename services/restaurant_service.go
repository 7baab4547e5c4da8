package services

import (
	"RestoFinder/models"
	"RestoFinder/store"
	"RestoFinder/utils"
	"context"
	"slices"
	"strings"

	"go.uber.org/zap"
)

// RestaurantKeyPrefix namespaces catalog records in the key-value store.
const RestaurantKeyPrefix = "restaurant:"

func restaurantKey(id string) string {
	return RestaurantKeyPrefix + id
}

// RestaurantService owns the restaurant catalog.
type RestaurantService struct {
	Store  store.KeyValueStore
	Logger *zap.SugaredLogger
}

func NewRestaurantService(kv store.KeyValueStore, logger *zap.SugaredLogger) *RestaurantService {
	return &RestaurantService{
		Store:  kv,
		Logger: logger,
	}
}

// BootstrapIfEmpty writes seed when the catalog has no records and returns
// the number of records written. A non-empty catalog is left untouched.
//
// Two concurrent callers on an empty store may both write the seed. The seed is
// keyed by id, so the second write stores identical records.
func (s *RestaurantService) BootstrapIfEmpty(ctx context.Context, seed []models.Restaurant) (int, error) {
	existing, err := s.Store.GetByPrefix(ctx, RestaurantKeyPrefix)
	if err != nil {
		s.Logger.Errorw("Failed to check catalog before bootstrap", "error", err)
		return 0, utils.StorageUnavailable(err)
	}
	if len(existing) > 0 {
		s.Logger.Infow("Catalog already initialized, skipping bootstrap", "records", len(existing))
		return 0, nil
	}

	written := 0
	for _, restaurant := range seed {
		if err := store.SetJSON(ctx, s.Store, restaurantKey(restaurant.ID), restaurant); err != nil {
			s.Logger.Errorw("Failed to write seed restaurant", "id", restaurant.ID, "written", written, "error", err)
			return written, utils.StorageUnavailable(err)
		}
		written++
	}

	s.Logger.Infow("Catalog bootstrapped", "count", written)
	return written, nil
}

// ListAll returns every catalog record ordered by id. An empty catalog is not an error.
func (s *RestaurantService) ListAll(ctx context.Context) ([]models.Restaurant, error) {
	restaurants, err := store.GetAllJSON[models.Restaurant](ctx, s.Store, RestaurantKeyPrefix)
	if err != nil {
		s.Logger.Errorw("Failed to list restaurants", "error", err)
		return nil, utils.StorageUnavailable(err)
	}

	// prefix scans come back in backend order
	slices.SortFunc(restaurants, func(a, b models.Restaurant) int {
		return strings.Compare(a.ID, b.ID)
	})
	return restaurants, nil
}

// GetRestaurantByID looks up one catalog record.
func (s *RestaurantService) GetRestaurantByID(ctx context.Context, id string) (*models.Restaurant, error) {
	if id == "" {
		return nil, utils.ValidationFailed("restaurant id is required")
	}

	var restaurant models.Restaurant
	ok, err := store.GetJSON(ctx, s.Store, restaurantKey(id), &restaurant)
	if err != nil {
		s.Logger.Errorw("Failed to fetch restaurant", "id", id, "error", err)
		return nil, utils.StorageUnavailable(err)
	}
	if !ok {
		return nil, utils.NotFound("Restaurant not found")
	}
	return &restaurant, nil
}
