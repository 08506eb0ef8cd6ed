package model

import "nest/shared/model"

const (
	TableName  = "partners"
	EntityName = "partner"

	FieldID      = "id"
	FieldName    = "name"
	FieldLogo    = "logo"
	FieldWebsite = "website"
)

type Partner struct {
	ID      string `db:"id"`
	Name    string `db:"name"`
	Logo    string `db:"logo"`
	Website string `db:"website"`
	model.Metadata
}
