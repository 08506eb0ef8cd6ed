package dto_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	authModel "nest/internal/domains/auth/model"
	"nest/internal/domains/auth/model/dto"
	"nest/shared/timezone"
)

func TestLoginRequest_Normalize(t *testing.T) {
	req := dto.LoginRequest{
		Email:    "  Admin@Example.COM ",
		Password: "secret",
	}

	req.Normalize()

	assert.Equal(t, "admin@example.com", req.Email)
	assert.Equal(t, "secret", req.Password)
}

func TestLoginRequest_ToSessionModel(t *testing.T) {
	req := dto.LoginRequest{Email: "admin@example.com"}

	session := req.ToSessionModel("user-id", "session-token", 24*time.Hour, "203.0.113.7", "curl/8.0")

	assert.NotEmpty(t, session.ID)
	assert.Equal(t, "user-id", session.UserID)
	assert.Equal(t, "session-token", session.Token)
	assert.True(t, session.ExpiresAt.After(timezone.Now().Add(23*time.Hour)))
	if assert.NotNil(t, session.IPAddress) {
		assert.Equal(t, "203.0.113.7", *session.IPAddress)
	}
	if assert.NotNil(t, session.UserAgent) {
		assert.Equal(t, "curl/8.0", *session.UserAgent)
	}
}

func TestLoginRequest_ToSessionModel_EmptyClientInfo(t *testing.T) {
	req := dto.LoginRequest{Email: "admin@example.com"}

	session := req.ToSessionModel("user-id", "session-token", time.Hour, "", "")

	assert.Nil(t, session.IPAddress)
	assert.Nil(t, session.UserAgent)
}

func TestSession_Expired(t *testing.T) {
	now := timezone.Now()

	live := authModel.Session{ExpiresAt: now.Add(time.Minute)}
	assert.False(t, live.Expired(now))

	dead := authModel.Session{ExpiresAt: now.Add(-time.Minute)}
	assert.True(t, dead.Expired(now))

	boundary := authModel.Session{ExpiresAt: now}
	assert.True(t, boundary.Expired(now))
}

func TestCreateAdminEmailRequest_Normalize(t *testing.T) {
	req := dto.CreateAdminEmailRequest{Email: " New.Admin@Example.com "}

	req.Normalize()

	assert.Equal(t, "new.admin@example.com", req.Email)
}

func TestCreateAdminEmailRequest_ToModel(t *testing.T) {
	req := dto.CreateAdminEmailRequest{Email: "new.admin@example.com"}

	mod := req.ToModel()

	assert.NotEmpty(t, mod.ID)
	assert.Equal(t, req.Email, mod.Email)
	assert.False(t, mod.CreatedAt.IsZero())
}

func TestGetAdminEmailsResponse_FromModels(t *testing.T) {
	models := []authModel.AdminEmail{
		{ID: "admin-1", Email: "one@example.com"},
		{ID: "admin-2", Email: "two@example.com"},
	}

	var res dto.GetAdminEmailsResponse
	res.FromModels(models, 12, 10)

	assert.Equal(t, 12, res.TotalData)
	assert.Equal(t, 2, res.TotalPage)
	assert.Len(t, res.AdminEmails, 2)
	assert.Equal(t, "one@example.com", res.AdminEmails[0].Email)
}
