package services

import (
	"backoffice/internal/domain"
	"backoffice/internal/export"
)

// ViewConfig declares how one entity renders as a list: which fields the
// free-text search reads, which field carries the status/date filters, and
// the column set shared by tables and every export format.
type ViewConfig struct {
	SearchFields []string
	StatusField  string
	DateField    string
	Columns      []export.Column
}

var viewConfigs = map[string]ViewConfig{
	domain.Bookings.Name: {
		SearchFields: []string{"bookingId", "guestName", "email", "phone"},
		StatusField:  "status",
		DateField:    "checkIn",
		Columns: []export.Column{
			{Field: "bookingId", Header: "Booking ID"},
			{Field: "guestName", Header: "Guest"},
			{Field: "roomType", Header: "Room Type"},
			{Field: "checkIn", Header: "Check-In", Format: export.DateCell},
			{Field: "checkOut", Header: "Check-Out", Format: export.DateCell},
			{Field: "status", Header: "Status"},
			{Field: "totalAmount", Header: "Amount", Format: export.MoneyCell},
		},
	},
	domain.Rooms.Name: {
		SearchFields: []string{"roomName", "roomType"},
		StatusField:  "status",
		DateField:    "createdAt",
		Columns: []export.Column{
			{Field: "roomName", Header: "Room"},
			{Field: "roomType", Header: "Type"},
			{Field: "maxPerson", Header: "Capacity"},
			{Field: "price", Header: "Price", Format: export.MoneyCell},
			{Field: "status", Header: "Status"},
		},
	},
	domain.Halls.Name: {
		SearchFields: []string{"hallName"},
		StatusField:  "status",
		DateField:    "createdAt",
		Columns: []export.Column{
			{Field: "hallName", Header: "Hall"},
			{Field: "capacity", Header: "Capacity"},
			{Field: "price", Header: "Price", Format: export.MoneyCell},
			{Field: "status", Header: "Status"},
		},
	},
	domain.Offers.Name: {
		SearchFields: []string{"title", "description"},
		StatusField:  "status",
		DateField:    "validTill",
		Columns: []export.Column{
			{Field: "title", Header: "Offer"},
			{Field: "discount", Header: "Discount"},
			{Field: "validTill", Header: "Valid Till", Format: export.DateCell},
			{Field: "status", Header: "Status"},
		},
	},
	domain.PromoCodes.Name: {
		SearchFields: []string{"code", "description"},
		StatusField:  "status",
		DateField:    "expiryDate",
		Columns: []export.Column{
			{Field: "code", Header: "Code"},
			{Field: "discountType", Header: "Type"},
			{Field: "discountValue", Header: "Value"},
			{Field: "expiryDate", Header: "Expires", Format: export.DateCell},
			{Field: "status", Header: "Status"},
		},
	},
	domain.Unavailabilities.Name: {
		SearchFields: []string{"roomName", "reason"},
		StatusField:  "",
		DateField:    "startDate",
		Columns: []export.Column{
			{Field: "roomName", Header: "Room"},
			{Field: "startDate", Header: "From", Format: export.DateCell},
			{Field: "endDate", Header: "To", Format: export.DateCell},
			{Field: "reason", Header: "Reason"},
		},
	},
	domain.Members.Name: {
		SearchFields: []string{"name", "email", "phone"},
		StatusField:  "status",
		DateField:    "joinedAt",
		Columns: []export.Column{
			{Field: "name", Header: "Member"},
			{Field: "email", Header: "Email"},
			{Field: "phone", Header: "Phone"},
			{Field: "tier", Header: "Tier"},
			{Field: "joinedAt", Header: "Joined", Format: export.DateCell},
			{Field: "status", Header: "Status"},
		},
	},
	domain.Roles.Name: {
		SearchFields: []string{"name", "description"},
		StatusField:  "",
		DateField:    "",
		Columns: []export.Column{
			{Field: "name", Header: "Role"},
			{Field: "description", Header: "Description"},
		},
	},
}

// ViewFor resolves the list configuration for an entity. Unknown entities get
// a minimal fallback keyed on the id field so exports still line up.
func ViewFor(e domain.Entity) ViewConfig {
	if cfg, ok := viewConfigs[e.Name]; ok {
		return cfg
	}
	return ViewConfig{
		SearchFields: []string{e.IDField},
		Columns: []export.Column{
			{Field: e.IDField, Header: "ID"},
		},
	}
}
