package model

import "nest/shared/model"

const (
	TableName  = "faqs"
	EntityName = "faq"

	FieldID       = "id"
	FieldQuestion = "question"
	FieldAnswer   = "answer"
	FieldPosition = "position"
)

type Faq struct {
	ID       string `db:"id"`
	Question string `db:"question"`
	Answer   string `db:"answer"`
	Position int    `db:"position"`
	model.Metadata
}
