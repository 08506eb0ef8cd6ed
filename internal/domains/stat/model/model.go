package model

import "nest/shared/model"

const (
	TableName  = "stats"
	EntityName = "stat"

	FieldID       = "id"
	FieldLabel    = "label"
	FieldValue    = "value"
	FieldPosition = "position"
)

type Stat struct {
	ID       string `db:"id"`
	Label    string `db:"label"`
	Value    string `db:"value"`
	Position int    `db:"position"`
	model.Metadata
}
