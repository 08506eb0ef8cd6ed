package model

import "nest/shared/model"

const (
	TableName  = "users"
	EntityName = "user"

	FieldID            = "id"
	FieldName          = "name"
	FieldEmail         = "email"
	FieldEmailVerified = "email_verified"
	FieldImage         = "image"
	FieldPassword      = "password"
)

type User struct {
	ID            string  `db:"id"`
	Name          *string `db:"name"`
	Email         string  `db:"email"`
	EmailVerified bool    `db:"email_verified"`
	Image         *string `db:"image"`
	Password      string  `db:"password"`
	model.Metadata
}
