package model

import "nest/shared/model"

const (
	TableName  = "contacts"
	EntityName = "contact"

	FieldID      = "id"
	FieldName    = "name"
	FieldEmail   = "email"
	FieldPhone   = "phone"
	FieldSubject = "subject"
	FieldMessage = "message"
	FieldReplied = "replied"
)

type Contact struct {
	ID      string `db:"id"`
	Name    string `db:"name"`
	Email   string `db:"email"`
	Phone   string `db:"phone"`
	Subject string `db:"subject"`
	Message string `db:"message"`
	Replied bool   `db:"replied"`
	model.Metadata
}
