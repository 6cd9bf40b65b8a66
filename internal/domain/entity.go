package domain

import "strings"

// Entity describes one backend collection reachable through the CRUD gateway.
type Entity struct {
	// Name is the URL path segment on the hotel backend, e.g. "rooms".
	Name string
	// IDField is the identifier field inside records; the backend is not
	// consistent about it (bookingId vs _id vs id).
	IDField string
	// AltCreatePath is set when the backend accepts creation on a dedicated
	// sub-path instead of POST /{name}.
	AltCreatePath string
}

var (
	Bookings         = Entity{Name: "bookings", IDField: "bookingId"}
	Rooms            = Entity{Name: "rooms", IDField: "_id"}
	Halls            = Entity{Name: "halls", IDField: "_id", AltCreatePath: "halls/create"}
	Offers           = Entity{Name: "offers", IDField: "_id"}
	PromoCodes       = Entity{Name: "promocodes", IDField: "_id"}
	Unavailabilities = Entity{Name: "unavailabilities", IDField: "_id"}
	Members          = Entity{Name: "members", IDField: "id"}
	Roles            = Entity{Name: "roles", IDField: "id"}
)

var entityRegistry = map[string]Entity{
	Bookings.Name:         Bookings,
	Rooms.Name:            Rooms,
	Halls.Name:            Halls,
	Offers.Name:           Offers,
	PromoCodes.Name:       PromoCodes,
	Unavailabilities.Name: Unavailabilities,
	Members.Name:          Members,
	Roles.Name:            Roles,
}

// EntityByName resolves a registered entity by its path segment.
func EntityByName(name string) (Entity, bool) {
	e, ok := entityRegistry[strings.ToLower(strings.TrimSpace(name))]
	return e, ok
}

// EntityNames lists registered entity path segments (stable order not
// guaranteed; callers sort when rendering).
func EntityNames() []string {
	out := make([]string, 0, len(entityRegistry))
	for name := range entityRegistry {
		out = append(out, name)
	}
	return out
}
