package model

import "nest/shared/model"

const (
	TableName  = "testimonials"
	EntityName = "testimonial"

	FieldID      = "id"
	FieldName    = "name"
	FieldRole    = "role"
	FieldContent = "content"
	FieldRating  = "rating"
	FieldAvatar  = "avatar"
)

type Testimonial struct {
	ID      string `db:"id"`
	Name    string `db:"name"`
	Role    string `db:"role"`
	Content string `db:"content"`
	Rating  int    `db:"rating"`
	Avatar  string `db:"avatar"`
	model.Metadata
}
