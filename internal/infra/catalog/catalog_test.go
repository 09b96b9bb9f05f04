package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"go-news/internal/domain/registry"
)

func TestBuiltInCatalogBuildsRegistry(t *testing.T) {
	reg, err := registry.New(States(), Cities())
	if err != nil {
		t.Fatalf("registry.New() error = %v", err)
	}

	if got := len(reg.States()); got != 13 {
		t.Errorf("len(States()) = %d, want 13", got)
	}
	if got := len(reg.Cities()); got != 35 {
		t.Errorf("len(Cities()) = %d, want 35", got)
	}

	jerusalem, ok := reg.ResolveCity("il", "jerusalem")
	if !ok {
		t.Fatal("il/jerusalem not found")
	}
	if jerusalem.ID != 281184 || jerusalem.Coordinates.Lat != 31.7683 || jerusalem.Coordinates.Lon != 35.2137 {
		t.Errorf("il/jerusalem = %+v", jerusalem)
	}
	if jerusalem.State.Name != "Israel" {
		t.Errorf("il/jerusalem state = %+v, want Israel", jerusalem.State)
	}

	zurich, ok := reg.ResolveCity("ch", "zurich")
	if !ok || zurich.State.Name != "Switzerland" {
		t.Errorf("ch/zurich = %+v, %v", zurich, ok)
	}
}

func TestBuiltInCatalogOrder(t *testing.T) {
	reg, err := registry.New(States(), Cities())
	if err != nil {
		t.Fatalf("registry.New() error = %v", err)
	}

	want := []string{"jerusalem", "tel-aviv", "haifa", "bnei-brak", "petah-tikva", "ashdod", "tiberias", "beersheba"}
	got := reg.CitiesForState("il")
	if len(got) != len(want) {
		t.Fatalf("CitiesForState(il) returned %d cities, want %d", len(got), len(want))
	}
	for i, city := range got {
		if city.Slug != want[i] {
			t.Errorf("CitiesForState(il)[%d] = %q, want %q", i, city.Slug, want[i])
		}
	}

	tests := []struct {
		state string
		want  string
	}{
		{"il", "jerusalem"},
		{"us", "new-york"},
		{"uk", "london"},
		{"it", "rome"},
	}
	for _, tt := range tests {
		t.Run(tt.state, func(t *testing.T) {
			city, ok := reg.FirstCity(tt.state)
			if !ok || city.Slug != tt.want {
				t.Errorf("FirstCity(%q) = %q, %v; want %q", tt.state, city.Slug, ok, tt.want)
			}
		})
	}
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "locations.yml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return path
}

func TestLoadFile(t *testing.T) {
	path := writeFile(t, `
states:
  - id: 294640
    name: Israel
    slug: il
cities:
  - id: 281184
    name: Jerusalem
    slug: jerusalem
    state: il
    coordinates:
      lat: 31.7683
      lon: 35.2137
  - id: 294801
    name: Haifa
    slug: haifa
    state: il
    coordinates:
      lat: 32.794
      lon: 34.9896
`)

	states, cities, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	reg, err := registry.New(states, cities)
	if err != nil {
		t.Fatalf("registry.New() error = %v", err)
	}

	city, ok := reg.ResolveCity("il", "haifa")
	if !ok {
		t.Fatal("il/haifa not found")
	}
	if city.State.Name != "Israel" || city.Coordinates.Lat != 32.794 {
		t.Errorf("il/haifa = %+v", city)
	}
	if first, _ := reg.FirstCity("il"); first.Slug != "jerusalem" {
		t.Errorf("FirstCity(il) = %q, want jerusalem", first.Slug)
	}
}

func TestLoadFileErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		if _, _, err := LoadFile(filepath.Join(t.TempDir(), "nope.yml")); err == nil {
			t.Error("LoadFile() error = nil, want error")
		}
	})

	t.Run("no states", func(t *testing.T) {
		path := writeFile(t, "cities: []\n")
		if _, _, err := LoadFile(path); err == nil {
			t.Error("LoadFile() error = nil, want error")
		}
	})

	t.Run("unknown state rejected by registry", func(t *testing.T) {
		path := writeFile(t, `
states:
  - {id: 1, name: Israel, slug: il}
cities:
  - {id: 2, name: Zurich, slug: zurich, state: ch, coordinates: {lat: 47.3769, lon: 8.5417}}
`)
		states, cities, err := LoadFile(path)
		if err != nil {
			t.Fatalf("LoadFile() error = %v", err)
		}
		if _, err := registry.New(states, cities); !errors.Is(err, registry.ErrUnknownState) {
			t.Errorf("registry.New() error = %v, want ErrUnknownState", err)
		}
	})
}

func TestBuiltInCatalogResolvesEveryCity(t *testing.T) {
	reg, err := registry.New(States(), Cities())
	if err != nil {
		t.Fatalf("registry.New() error = %v", err)
	}

	for _, declared := range Cities() {
		t.Run(declared.State.Slug+"/"+declared.Slug, func(t *testing.T) {
			city, ok := reg.ResolveCity(declared.State.Slug, declared.Slug)
			if !ok {
				t.Fatal("not found")
			}
			if city.ID != declared.ID || city.Slug != declared.Slug || city.State.Slug != declared.State.Slug {
				t.Errorf("ResolveCity() = %+v, want %+v", city, declared)
			}
			if city.Coordinates.Lat < -90 || city.Coordinates.Lat > 90 || city.Coordinates.Lon < -180 || city.Coordinates.Lon > 180 {
				t.Errorf("coordinates out of range: %+v", city.Coordinates)
			}
		})
	}
}
