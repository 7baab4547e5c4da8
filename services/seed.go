package services

import (
	"RestoFinder/models"
	_ "embed"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

//go:embed restaurants_seed.yaml
var defaultSeed []byte

// LoadSeedRestaurants parses the seed catalog from path, or the embedded
// default catalog when path is empty.
func LoadSeedRestaurants(path string) ([]models.Restaurant, error) {
	raw := defaultSeed
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "read seed file %s", path)
		}
		raw = data
	}
	return ParseSeed(raw)
}

func ParseSeed(raw []byte) ([]models.Restaurant, error) {
	var restaurants []models.Restaurant
	if err := yaml.Unmarshal(raw, &restaurants); err != nil {
		return nil, errors.Wrap(err, "parse seed catalog")
	}
	if err := validateSeed(restaurants); err != nil {
		return nil, err
	}
	return restaurants, nil
}

func validateSeed(restaurants []models.Restaurant) error {
	seen := make(map[string]bool, len(restaurants))
	for i, r := range restaurants {
		switch {
		case r.ID == "":
			return errors.Errorf("seed restaurant %d has no id", i)
		case seen[r.ID]:
			return errors.Errorf("seed restaurant id %q is duplicated", r.ID)
		case r.Rating < 0 || r.Rating > 5:
			return errors.Errorf("seed restaurant %q rating %.1f outside 0-5", r.ID, r.Rating)
		case r.WaitTime < 0 || r.PrepTime < 0:
			return errors.Errorf("seed restaurant %q has negative wait or prep time", r.ID)
		}
		seen[r.ID] = true
	}
	return nil
}
