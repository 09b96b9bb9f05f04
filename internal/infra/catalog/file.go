package catalog

import (
	"fmt"

	"go-news/internal/domain/entity"

	"github.com/spf13/viper"
)

type fileCity struct {
	ID          int                `mapstructure:"id"`
	Name        string             `mapstructure:"name"`
	Slug        string             `mapstructure:"slug"`
	State       string             `mapstructure:"state"`
	Coordinates entity.Coordinates `mapstructure:"coordinates"`
}

type fileCatalog struct {
	States []entity.State `mapstructure:"states"`
	Cities []fileCity     `mapstructure:"cities"`
}

// LoadFile reads a location catalog from a YAML file. Cities name their state by slug:
//
//	states:
//	  - {id: 294640, name: Israel, slug: il}
//	cities:
//	  - {id: 281184, name: Jerusalem, slug: jerusalem, state: il, coordinates: {lat: 31.7683, lon: 35.2137}}
//
// Slugs are not validated here; building the registry rejects unknown or duplicated ones.
func LoadFile(filepath string) ([]entity.State, []entity.City, error) {
	v := viper.New()
	v.SetConfigFile(filepath)
	v.SetConfigType("yml")

	if err := v.ReadInConfig(); err != nil {
		return nil, nil, fmt.Errorf("fail to read locations from %s: %w", filepath, err)
	}

	var raw fileCatalog
	if err := v.Unmarshal(&raw); err != nil {
		return nil, nil, fmt.Errorf("fail to decode locations from %s: %w", filepath, err)
	}
	if len(raw.States) == 0 {
		return nil, nil, fmt.Errorf("no states declared in %s", filepath)
	}

	cities := make([]entity.City, 0, len(raw.Cities))
	for _, c := range raw.Cities {
		cities = append(cities, entity.City{
			ID:          c.ID,
			Name:        c.Name,
			Slug:        c.Slug,
			State:       entity.State{Slug: c.State},
			Coordinates: c.Coordinates,
		})
	}

	return raw.States, cities, nil
}
