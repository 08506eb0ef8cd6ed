package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	authModel "nest/internal/domains/auth/model"
	userModel "nest/internal/domains/user/model"
	"nest/shared"
	gDto "nest/shared/dto"
	gModel "nest/shared/model"
	"nest/shared/timezone"
)

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (l *LoginRequest) Normalize() {
	l.Email = strings.ToLower(strings.TrimSpace(l.Email))
}

func (l *LoginRequest) ToSessionModel(userID, token string, ttl time.Duration, ipAddress, userAgent string) authModel.Session {
	now := timezone.Now()

	session := authModel.Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		Token:     token,
		ExpiresAt: now.Add(ttl),
		Metadata: gModel.Metadata{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if ipAddress != "" {
		session.IPAddress = &ipAddress
	}

	if userAgent != "" {
		session.UserAgent = &userAgent
	}

	return session
}

type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt string       `json:"expires_at"`
	User      UserResponse `json:"user"`
}

type UserResponse struct {
	ID      string  `json:"id"`
	Name    *string `json:"name"`
	Email   string  `json:"email"`
	IsAdmin bool    `json:"is_admin"`
}

func (u *UserResponse) FromModel(mod userModel.User, isAdmin bool) {
	u.ID = mod.ID
	u.Name = mod.Name
	u.Email = mod.Email
	u.IsAdmin = isAdmin
}

// Identity is the resolved caller of an authenticated request.
type Identity struct {
	UserID    string
	Email     string
	SessionID string
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password"     validate:"required,min=8"`
}

type CreateAdminEmailRequest struct {
	Email string `json:"email" validate:"required,email,max=100"`
}

func (c *CreateAdminEmailRequest) Normalize() {
	c.Email = strings.ToLower(strings.TrimSpace(c.Email))
}

func (c *CreateAdminEmailRequest) ToModel() authModel.AdminEmail {
	now := timezone.Now()

	return authModel.AdminEmail{
		ID:    uuid.NewString(),
		Email: c.Email,
		Metadata: gModel.Metadata{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
}

type AdminEmailResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	gDto.Metadata
}

func (r *AdminEmailResponse) FromModel(mod authModel.AdminEmail) {
	r.ID = mod.ID
	r.Email = mod.Email
	r.Metadata.FromModel(mod.Metadata)
}

type GetAdminEmailsResponse struct {
	AdminEmails []AdminEmailResponse `json:"admin_emails"`
	TotalPage   int                  `json:"total_page"`
	TotalData   int                  `json:"total_data"`
}

func (r *GetAdminEmailsResponse) FromModels(models []authModel.AdminEmail, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.AdminEmails = make([]AdminEmailResponse, len(models))
	for i, mod := range models {
		r.AdminEmails[i].FromModel(mod)
	}
}
