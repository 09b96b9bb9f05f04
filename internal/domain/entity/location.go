package entity

// State is a top-level location grouping (a country, in practice).
type State struct {
	ID   int    `json:"id" yaml:"id" mapstructure:"id"`
	Name string `json:"name" yaml:"name" mapstructure:"name"`
	Slug string `json:"slug" yaml:"slug" mapstructure:"slug"`
}

// Coordinates is a geographic point in decimal degrees.
type Coordinates struct {
	Lat float64 `json:"lat" yaml:"lat" mapstructure:"lat"`
	Lon float64 `json:"lon" yaml:"lon" mapstructure:"lon"`
}

// City belongs to exactly one State. Its slug is only unique within that state.
type City struct {
	ID          int         `json:"id" yaml:"id" mapstructure:"id"`
	Name        string      `json:"name" yaml:"name" mapstructure:"name"`
	Slug        string      `json:"slug" yaml:"slug" mapstructure:"slug"`
	State       State       `json:"state" yaml:"state" mapstructure:"state"`
	Coordinates Coordinates `json:"coordinates" yaml:"coordinates" mapstructure:"coordinates"`
}
