package model

import (
	"github.com/lib/pq"

	"nest/shared/model"
)

const (
	TableName  = "properties"
	EntityName = "property"

	FieldID          = "id"
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldPrice       = "price"
	FieldLocation    = "location"
	FieldType        = "type"
	FieldStatus      = "status"
	FieldBedrooms    = "bedrooms"
	FieldBathrooms   = "bathrooms"
	FieldArea        = "area"
	FieldImages      = "images"
	FieldFeatured    = "featured"
)

const (
	TypeHouse      = "House"
	TypeApartment  = "Apartment"
	TypeLand       = "Land"
	TypeCommercial = "Commercial"

	StatusForSale = "For Sale"
	StatusForRent = "For Rent"
	StatusSold    = "Sold"
)

type Property struct {
	ID          string         `db:"id"`
	Title       string         `db:"title"`
	Description string         `db:"description"`
	Price       float64        `db:"price"`
	Location    string         `db:"location"`
	Type        string         `db:"type"`
	Status      string         `db:"status"`
	Bedrooms    int            `db:"bedrooms"`
	Bathrooms   int            `db:"bathrooms"`
	Area        float64        `db:"area"`
	Images      pq.StringArray `db:"images"`
	Featured    bool           `db:"featured"`
	model.Metadata
}
