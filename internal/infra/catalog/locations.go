package catalog

import "go-news/internal/domain/entity"

var (
	israel        = entity.State{ID: 294640, Name: "Israel", Slug: "il"}
	unitedStates  = entity.State{ID: 6252001, Name: "United States", Slug: "us"}
	unitedKingdom = entity.State{ID: 2635167, Name: "United Kingdom", Slug: "uk"}
	canada        = entity.State{ID: 6251999, Name: "Canada", Slug: "ca"}
	australia     = entity.State{ID: 2077456, Name: "Australia", Slug: "au"}
	southAfrica   = entity.State{ID: 953987, Name: "South Africa", Slug: "za"}
	france        = entity.State{ID: 3017382, Name: "France", Slug: "fr"}
	germany       = entity.State{ID: 2921044, Name: "Germany", Slug: "de"}
	argentina     = entity.State{ID: 3865483, Name: "Argentina", Slug: "ar"}
	hungary       = entity.State{ID: 3057568, Name: "Hungary", Slug: "hu"}
	spain         = entity.State{ID: 2510769, Name: "Spain", Slug: "es"}
	italy         = entity.State{ID: 3175395, Name: "Italy", Slug: "it"}
	switzerland   = entity.State{ID: 2658434, Name: "Switzerland", Slug: "ch"}
)

// States returns the built-in state list in display order.
func States() []entity.State {
	return []entity.State{
		israel,
		unitedStates,
		unitedKingdom,
		canada,
		australia,
		southAfrica,
		france,
		germany,
		argentina,
		hungary,
		spain,
		italy,
		switzerland,
	}
}

// Cities returns the built-in city list. Order matters: the first city of a state is its default.
func Cities() []entity.City {
	return []entity.City{
		// Israel
		{ID: 281184, Name: "Jerusalem", Slug: "jerusalem", State: israel, Coordinates: entity.Coordinates{Lat: 31.7683, Lon: 35.2137}},
		{ID: 293397, Name: "Tel Aviv", Slug: "tel-aviv", State: israel, Coordinates: entity.Coordinates{Lat: 32.0853, Lon: 34.7818}},
		{ID: 294801, Name: "Haifa", Slug: "haifa", State: israel, Coordinates: entity.Coordinates{Lat: 32.794, Lon: 34.9896}},
		{ID: 294999, Name: "Bnei Brak", Slug: "bnei-brak", State: israel, Coordinates: entity.Coordinates{Lat: 32.081, Lon: 34.8337}},
		{ID: 293918, Name: "Petah Tikva", Slug: "petah-tikva", State: israel, Coordinates: entity.Coordinates{Lat: 32.0868, Lon: 34.8867}},
		{ID: 295629, Name: "Ashdod", Slug: "ashdod", State: israel, Coordinates: entity.Coordinates{Lat: 31.792, Lon: 34.6497}},
		{ID: 293322, Name: "Tiberias", Slug: "tiberias", State: israel, Coordinates: entity.Coordinates{Lat: 32.796, Lon: 35.532}},
		{ID: 295530, Name: "Beersheba", Slug: "beersheba", State: israel, Coordinates: entity.Coordinates{Lat: 31.2518, Lon: 34.7915}},

		// United States
		{ID: 5128581, Name: "New York", Slug: "new-york", State: unitedStates, Coordinates: entity.Coordinates{Lat: 40.7128, Lon: -74.006}},
		{ID: 5364855, Name: "Lakewood", Slug: "lakewood", State: unitedStates, Coordinates: entity.Coordinates{Lat: 40.0959, Lon: -74.2171}},
		{ID: 5127315, Name: "Monsey", Slug: "monsey", State: unitedStates, Coordinates: entity.Coordinates{Lat: 41.1115, Lon: -74.0687}},
		{ID: 4887398, Name: "Chicago", Slug: "chicago", State: unitedStates, Coordinates: entity.Coordinates{Lat: 41.8781, Lon: -87.6298}},
		{ID: 5368361, Name: "Los Angeles", Slug: "los-angeles", State: unitedStates, Coordinates: entity.Coordinates{Lat: 34.0522, Lon: -118.2437}},
		{ID: 4930956, Name: "Boston", Slug: "boston", State: unitedStates, Coordinates: entity.Coordinates{Lat: 42.3601, Lon: -71.0589}},
		{ID: 4505716, Name: "Baltimore", Slug: "baltimore", State: unitedStates, Coordinates: entity.Coordinates{Lat: 39.2904, Lon: -76.6122}},

		// United Kingdom
		{ID: 2643743, Name: "London", Slug: "london", State: unitedKingdom, Coordinates: entity.Coordinates{Lat: 51.5074, Lon: -0.1278}},
		{ID: 2643123, Name: "Manchester", Slug: "manchester", State: unitedKingdom, Coordinates: entity.Coordinates{Lat: 53.4808, Lon: -2.2426}},
		{ID: 7535506, Name: "Golders Green", Slug: "golders-green", State: unitedKingdom, Coordinates: entity.Coordinates{Lat: 51.5724, Lon: -0.1955}},

		// France
		{ID: 2988507, Name: "Paris", Slug: "paris", State: france, Coordinates: entity.Coordinates{Lat: 48.8566, Lon: 2.3522}},
		{ID: 2995469, Name: "Marseille", Slug: "marseille", State: france, Coordinates: entity.Coordinates{Lat: 43.2965, Lon: 5.3698}},
		{ID: 2973783, Name: "Strasbourg", Slug: "strasbourg", State: france, Coordinates: entity.Coordinates{Lat: 48.5734, Lon: 7.7521}},

		// Germany
		{ID: 2950159, Name: "Berlin", Slug: "berlin", State: germany, Coordinates: entity.Coordinates{Lat: 52.52, Lon: 13.405}},
		{ID: 6555231, Name: "Frankfurt", Slug: "frankfurt", State: germany, Coordinates: entity.Coordinates{Lat: 50.1109, Lon: 8.6821}},
		{ID: 6555232, Name: "Munich", Slug: "munich", State: germany, Coordinates: entity.Coordinates{Lat: 48.1351, Lon: 11.582}},

		// Canada
		{ID: 6167865, Name: "Toronto", Slug: "toronto", State: canada, Coordinates: entity.Coordinates{Lat: 43.6532, Lon: -79.3832}},
		{ID: 6077243, Name: "Montreal", Slug: "montreal", State: canada, Coordinates: entity.Coordinates{Lat: 45.5017, Lon: -73.5673}},

		// Australia
		{ID: 2147714, Name: "Sydney", Slug: "sydney", State: australia, Coordinates: entity.Coordinates{Lat: -33.8688, Lon: 151.2093}},
		{ID: 2158177, Name: "Melbourne", Slug: "melbourne", State: australia, Coordinates: entity.Coordinates{Lat: -37.8136, Lon: 144.9631}},

		// South Africa
		{ID: 3369157, Name: "Cape Town", Slug: "cape-town", State: southAfrica, Coordinates: entity.Coordinates{Lat: -33.9249, Lon: 18.4241}},
		{ID: 993800, Name: "Johannesburg", Slug: "johannesburg", State: southAfrica, Coordinates: entity.Coordinates{Lat: -26.2041, Lon: 28.0473}},

		// Switzerland
		{ID: 2657895, Name: "Zurich", Slug: "zurich", State: switzerland, Coordinates: entity.Coordinates{Lat: 47.3769, Lon: 8.5417}},

		// Argentina
		{ID: 3435910, Name: "Buenos Aires", Slug: "buenos-aires", State: argentina, Coordinates: entity.Coordinates{Lat: -34.6037, Lon: -58.3816}},

		// Hungary
		{ID: 3054643, Name: "Budapest", Slug: "budapest", State: hungary, Coordinates: entity.Coordinates{Lat: 47.4979, Lon: 19.0402}},

		// Spain
		{ID: 3117735, Name: "Barcelona", Slug: "barcelona", State: spain, Coordinates: entity.Coordinates{Lat: 41.3851, Lon: 2.1734}},

		// Italy
		{ID: 3169070, Name: "Rome", Slug: "rome", State: italy, Coordinates: entity.Coordinates{Lat: 41.9028, Lon: 12.4964}},
	}
}
