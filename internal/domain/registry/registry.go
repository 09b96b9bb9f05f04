package registry

import (
	"errors"
	"fmt"

	"go-news/internal/domain/entity"
)

var (
	ErrDuplicateState = errors.New("duplicate state slug")
	ErrDuplicateCity  = errors.New("duplicate city slug within state")
	ErrUnknownState   = errors.New("city references an unknown state")
)

type cityKey struct {
	state string
	city  string
}

// Registry is the read-only catalog of supported states and cities. It is built once and
// shared by reference; none of its methods mutate it, so concurrent use needs no locking.
type Registry struct {
	states     []entity.State
	cities     []entity.City
	stateIndex map[string]int
	cityIndex  map[cityKey]int
}

// New validates the catalog and builds the lookup indexes. Declaration order is preserved
// for every projection.
func New(states []entity.State, cities []entity.City) (*Registry, error) {
	r := &Registry{
		states:     make([]entity.State, len(states)),
		cities:     make([]entity.City, len(cities)),
		stateIndex: make(map[string]int, len(states)),
		cityIndex:  make(map[cityKey]int, len(cities)),
	}
	copy(r.states, states)
	copy(r.cities, cities)

	for i, state := range r.states {
		if _, exists := r.stateIndex[state.Slug]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateState, state.Slug)
		}
		r.stateIndex[state.Slug] = i
	}

	for i, city := range r.cities {
		idx, exists := r.stateIndex[city.State.Slug]
		if !exists {
			return nil, fmt.Errorf("%w: %s/%s", ErrUnknownState, city.State.Slug, city.Slug)
		}
		// the declared state wins over whatever partial copy the city carried
		r.cities[i].State = r.states[idx]

		key := cityKey{state: city.State.Slug, city: city.Slug}
		if _, dup := r.cityIndex[key]; dup {
			return nil, fmt.Errorf("%w: %s/%s", ErrDuplicateCity, key.state, key.city)
		}
		r.cityIndex[key] = i
	}

	return r, nil
}

// ResolveState finds a state by exact, case-sensitive slug.
func (r *Registry) ResolveState(stateSlug string) (entity.State, bool) {
	idx, ok := r.stateIndex[stateSlug]
	if !ok {
		return entity.State{}, false
	}
	return r.states[idx], true
}

// ResolveCity finds the city whose own slug and state slug both match.
func (r *Registry) ResolveCity(stateSlug, citySlug string) (entity.City, bool) {
	idx, ok := r.cityIndex[cityKey{state: stateSlug, city: citySlug}]
	if !ok {
		return entity.City{}, false
	}
	return r.cities[idx], true
}

// CitiesForState returns the cities of a state in declaration order. Unknown states yield an empty slice.
func (r *Registry) CitiesForState(stateSlug string) []entity.City {
	result := make([]entity.City, 0)
	for _, city := range r.cities {
		if city.State.Slug == stateSlug {
			result = append(result, city)
		}
	}
	return result
}

// FirstCity returns the first declared city of a state.
func (r *Registry) FirstCity(stateSlug string) (entity.City, bool) {
	for _, city := range r.cities {
		if city.State.Slug == stateSlug {
			return city, true
		}
	}
	return entity.City{}, false
}

// States returns every state in declaration order.
func (r *Registry) States() []entity.State {
	result := make([]entity.State, len(r.states))
	copy(result, r.states)
	return result
}

// Cities returns every city in declaration order.
func (r *Registry) Cities() []entity.City {
	result := make([]entity.City, len(r.cities))
	copy(result, r.cities)
	return result
}
