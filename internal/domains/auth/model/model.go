package model

import (
	"time"

	"nest/shared/model"
)

const (
	SessionTableName  = "sessions"
	SessionEntityName = "session"

	SessionFieldID        = "id"
	SessionFieldUserID    = "user_id"
	SessionFieldToken     = "token"
	SessionFieldExpiresAt = "expires_at"
	SessionFieldIPAddress = "ip_address"
	SessionFieldUserAgent = "user_agent"
)

type Session struct {
	ID        string    `db:"id"`
	UserID    string    `db:"user_id"`
	Token     string    `db:"token"`
	ExpiresAt time.Time `db:"expires_at"`
	IPAddress *string   `db:"ip_address"`
	UserAgent *string   `db:"user_agent"`
	model.Metadata
}

func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}

const (
	AdminEmailTableName  = "admin_emails"
	AdminEmailEntityName = "admin_email"

	AdminEmailFieldID    = "id"
	AdminEmailFieldEmail = "email"
)

type AdminEmail struct {
	ID    string `db:"id"`
	Email string `db:"email"`
	model.Metadata
}
