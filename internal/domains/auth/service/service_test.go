package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"nest/config"
	"nest/infras/otel/mocks"
	authMocks "nest/internal/domains/auth/mocks"
	"nest/internal/domains/auth/model"
	"nest/internal/domains/auth/model/dto"
	"nest/internal/domains/auth/service"
	userMocks "nest/internal/domains/user/mocks"
	userModel "nest/internal/domains/user/model"
	cacheMocks "nest/shared/cache/mocks"
	"nest/shared/constant"
	"nest/shared/failure"
	"nest/shared/timezone"
)

// bcrypt hash of "password".
const passwordHash = "$2a$10$92IXUNpkjO0rOQ5byMi.Ye4oKoEa3Ro9llC/.og/at2.uheWG/igi"

type authMocksBundle struct {
	userRepo       *userMocks.MockUser
	sessionRepo    *authMocks.MockSession
	adminEmailRepo *authMocks.MockAdminEmail
	cache          *cacheMocks.MockRedisCache
}

func newAuthService(t *testing.T) (service.Auth, authMocksBundle) {
	t.Helper()

	ctrl := gomock.NewController(t)

	bundle := authMocksBundle{
		userRepo:       userMocks.NewMockUser(ctrl),
		sessionRepo:    authMocks.NewMockSession(ctrl),
		adminEmailRepo: authMocks.NewMockAdminEmail(ctrl),
		cache:          cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.Auth.SessionTTLHours = 24
	cfg.Cache.TTL = 3600

	svc := service.New(bundle.userRepo, bundle.sessionRepo, bundle.adminEmailRepo, cfg, bundle.cache, mocks.NewOtel())

	return svc, bundle
}

func validUser() userModel.User {
	return userModel.User{
		ID:       "user-id",
		Email:    "admin@example.com",
		Password: passwordHash,
	}
}

func TestAuthService_Login(t *testing.T) {
	t.Run("successful login", func(t *testing.T) {
		svc, m := newAuthService(t)

		m.userRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(validUser(), nil)

		m.sessionRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(nil)

		m.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		m.adminEmailRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		m.cache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		res, err := svc.Login(context.Background(), dto.LoginRequest{
			Email:    "admin@example.com",
			Password: "password",
		}, "203.0.113.7", "curl/8.0")

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
		assert.NotEmpty(t, res.Token)
		assert.NotEmpty(t, res.ExpiresAt)
		assert.True(t, res.User.IsAdmin)
	})

	t.Run("unknown email", func(t *testing.T) {
		svc, m := newAuthService(t)

		m.userRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(userModel.User{}, nil)

		_, err := svc.Login(context.Background(), dto.LoginRequest{
			Email:    "nobody@example.com",
			Password: "password",
		}, "", "")

		assert.Error(t, err)
		assert.Equal(t, http.StatusUnauthorized, failure.GetStatus(err))
	})

	t.Run("wrong password", func(t *testing.T) {
		svc, m := newAuthService(t)

		m.userRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(validUser(), nil)

		_, err := svc.Login(context.Background(), dto.LoginRequest{
			Email:    "admin@example.com",
			Password: "wrong-password",
		}, "", "")

		assert.Error(t, err)
		assert.Equal(t, http.StatusUnauthorized, failure.GetStatus(err))
	})
}

func TestAuthService_Authenticate(t *testing.T) {
	t.Run("valid session", func(t *testing.T) {
		svc, m := newAuthService(t)

		m.sessionRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Session{
				ID:        "session-id",
				UserID:    "user-id",
				Token:     "session-token",
				ExpiresAt: timezone.Now().Add(time.Hour),
			}, nil)

		m.userRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(validUser(), nil)

		identity, err := svc.Authenticate(context.Background(), "session-token")

		assert.NoError(t, err)
		assert.Equal(t, "user-id", identity.UserID)
		assert.Equal(t, "admin@example.com", identity.Email)
		assert.Equal(t, "session-id", identity.SessionID)
	})

	t.Run("missing token", func(t *testing.T) {
		svc, _ := newAuthService(t)

		_, err := svc.Authenticate(context.Background(), "")

		assert.Error(t, err)
		assert.Equal(t, http.StatusUnauthorized, failure.GetStatus(err))
	})

	t.Run("unknown token", func(t *testing.T) {
		svc, m := newAuthService(t)

		m.sessionRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Session{}, nil)

		_, err := svc.Authenticate(context.Background(), "bogus-token")

		assert.Error(t, err)
		assert.Equal(t, http.StatusUnauthorized, failure.GetStatus(err))
	})

	t.Run("expired session is rejected and dropped", func(t *testing.T) {
		svc, m := newAuthService(t)

		m.sessionRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Session{
				ID:        "session-id",
				UserID:    "user-id",
				Token:     "session-token",
				ExpiresAt: timezone.Now().Add(-time.Minute),
			}, nil)

		m.sessionRepo.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		_, err := svc.Authenticate(context.Background(), "session-token")

		time.Sleep(10 * time.Millisecond)

		assert.Error(t, err)
		assert.Equal(t, http.StatusUnauthorized, failure.GetStatus(err))
	})
}

func TestAuthService_ChangePassword(t *testing.T) {
	ctxWithUser := func() context.Context {
		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "user-id")

		return context.WithValue(ctx, constant.ContextKeySessionID, "session-id")
	}

	t.Run("successful change revokes other sessions", func(t *testing.T) {
		svc, m := newAuthService(t)

		m.userRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(validUser(), nil)

		m.userRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		m.sessionRepo.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		err := svc.ChangePassword(ctxWithUser(), dto.ChangePasswordRequest{
			CurrentPassword: "password",
			NewPassword:     "brand-new-password",
		})

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
	})

	t.Run("wrong current password", func(t *testing.T) {
		svc, m := newAuthService(t)

		m.userRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(validUser(), nil)

		err := svc.ChangePassword(ctxWithUser(), dto.ChangePasswordRequest{
			CurrentPassword: "wrong-password",
			NewPassword:     "brand-new-password",
		})

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetStatus(err))
		assert.Equal(t, "INVALID_CURRENT_PASSWORD", failure.GetErrorCode(err))
	})

	t.Run("not authenticated", func(t *testing.T) {
		svc, _ := newAuthService(t)

		err := svc.ChangePassword(context.Background(), dto.ChangePasswordRequest{
			CurrentPassword: "password",
			NewPassword:     "brand-new-password",
		})

		assert.Error(t, err)
		assert.Equal(t, http.StatusUnauthorized, failure.GetStatus(err))
	})
}

func TestAuthService_IsAdmin(t *testing.T) {
	t.Run("cache miss falls back to allow-list", func(t *testing.T) {
		svc, m := newAuthService(t)

		m.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		m.adminEmailRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		m.cache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		isAdmin, err := svc.IsAdmin(context.Background(), "admin@example.com")

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
		assert.True(t, isAdmin)
	})

	t.Run("not on allow-list", func(t *testing.T) {
		svc, m := newAuthService(t)

		m.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		m.adminEmailRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		m.cache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		isAdmin, err := svc.IsAdmin(context.Background(), "visitor@example.com")

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
		assert.False(t, isAdmin)
	})
}

func TestAuthService_CreateAdminEmail(t *testing.T) {
	t.Run("duplicate email", func(t *testing.T) {
		svc, m := newAuthService(t)

		m.adminEmailRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		err := svc.CreateAdminEmail(context.Background(), dto.CreateAdminEmailRequest{
			Email: "admin@example.com",
		})

		assert.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetStatus(err))
	})

	t.Run("successful creation", func(t *testing.T) {
		svc, m := newAuthService(t)

		m.adminEmailRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		m.adminEmailRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(nil)

		m.cache.EXPECT().
			Clear(gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		err := svc.CreateAdminEmail(context.Background(), dto.CreateAdminEmailRequest{
			Email: "new.admin@example.com",
		})

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
	})
}
