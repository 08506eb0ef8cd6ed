package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"nest/config"
	"nest/infras/otel"
	"nest/internal/domains/auth/model"
	"nest/internal/domains/auth/model/dto"
	"nest/internal/domains/auth/repository"
	userModel "nest/internal/domains/user/model"
	userRepository "nest/internal/domains/user/repository"
	"nest/shared"
	"nest/shared/cache"
	"nest/shared/constant"
	gDto "nest/shared/dto"
	"nest/shared/failure"
	"nest/shared/password"
	"nest/shared/timezone"
)

const (
	cacheIsAdmin        = "auth:admin"
	cacheGetAdminEmails = "auth:admin_emails"

	codeAdminEmailNotFound = "ADMIN_EMAIL_NOT_FOUND"
	codeDuplicateEmail     = "DUPLICATE_EMAIL"

	sessionTokenBytes = 32
)

type Auth interface {
	Login(ctx context.Context, req dto.LoginRequest, ipAddress, userAgent string) (dto.LoginResponse, error)
	Logout(ctx context.Context) error
	Me(ctx context.Context) (dto.UserResponse, error)
	ChangePassword(ctx context.Context, req dto.ChangePasswordRequest) error
	Authenticate(ctx context.Context, token string) (dto.Identity, error)
	IsAdmin(ctx context.Context, email string) (bool, error)
	CreateAdminEmail(ctx context.Context, req dto.CreateAdminEmailRequest) error
	GetAdminEmails(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetAdminEmailsResponse, error)
	DeleteAdminEmail(ctx context.Context, id string) error
}

type serviceImpl struct {
	userRepo       userRepository.User
	sessionRepo    repository.Session
	adminEmailRepo repository.AdminEmail
	cfg            *config.Config
	cache          cache.RedisCache
	otel           otel.Otel
}

func New(userRepo userRepository.User, sessionRepo repository.Session, adminEmailRepo repository.AdminEmail, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Auth {
	return &serviceImpl{
		userRepo:       userRepo,
		sessionRepo:    sessionRepo,
		adminEmailRepo: adminEmailRepo,
		cfg:            cfg,
		cache:          cache,
		otel:           otel,
	}
}

func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest, ipAddress, userAgent string) (res dto.LoginResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Login")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, err := s.userRepo.Get(ctx, shared.FilterByID(req.Email, userModel.FieldEmail, userModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return res, fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == constant.Empty {
		return res, failure.Unauthorized("invalid email or password") //nolint:wrapcheck
	}

	if err = password.Verify(req.Password, user.Password); err != nil {
		log.Warn().Str("email", req.Email).Msg("login attempt with wrong password")

		return res, failure.Unauthorized("invalid email or password") //nolint:wrapcheck
	}

	token, err := generateSessionToken()
	if err != nil {
		log.Error().Err(err).Msg("failed to generate session token")

		return res, fmt.Errorf("failed to generate session token: %w", err)
	}

	ttl := time.Duration(s.cfg.Auth.SessionTTLHours) * time.Hour
	session := req.ToSessionModel(user.ID, token, ttl, ipAddress, userAgent)

	if err = s.sessionRepo.Insert(ctx, session); err != nil {
		log.Error().Err(err).Msg("failed to create session")

		return res, fmt.Errorf("failed to create session: %w", err)
	}

	isAdmin, err := s.IsAdmin(ctx, user.Email)
	if err != nil {
		log.Error().Err(err).Msg("failed to check admin allow-list")

		return res, fmt.Errorf("failed to check admin allow-list: %w", err)
	}

	res.Token = token
	res.ExpiresAt = timezone.Format(session.ExpiresAt, constant.DateFormat)
	res.User.FromModel(user, isAdmin)

	return res, nil
}

func (s *serviceImpl) Logout(ctx context.Context) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Logout")
	defer scope.End()
	defer scope.TraceIfError(err)

	sessionID, _ := ctx.Value(constant.ContextKeySessionID).(string)
	if sessionID == constant.Empty {
		return failure.Unauthorized("not authenticated") //nolint:wrapcheck
	}

	if err = s.sessionRepo.Delete(ctx, shared.FilterByID(sessionID, model.SessionFieldID, model.SessionTableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete session")

		return fmt.Errorf("failed to delete session: %w", err)
	}

	return nil
}

func (s *serviceImpl) Me(ctx context.Context) (res dto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Me")
	defer scope.End()
	defer scope.TraceIfError(err)

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if userID == constant.Empty {
		return res, failure.Unauthorized("not authenticated") //nolint:wrapcheck
	}

	user, err := s.userRepo.Get(ctx, shared.FilterByID(userID, userModel.FieldID, userModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return res, fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == constant.Empty {
		return res, failure.Unauthorized("not authenticated") //nolint:wrapcheck
	}

	isAdmin, err := s.IsAdmin(ctx, user.Email)
	if err != nil {
		log.Error().Err(err).Msg("failed to check admin allow-list")

		return res, fmt.Errorf("failed to check admin allow-list: %w", err)
	}

	res.FromModel(user, isAdmin)

	return res, nil
}

func (s *serviceImpl) ChangePassword(ctx context.Context, req dto.ChangePasswordRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ChangePassword")
	defer scope.End()
	defer scope.TraceIfError(err)

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if userID == constant.Empty {
		return failure.Unauthorized("not authenticated") //nolint:wrapcheck
	}

	filter := shared.FilterByID(userID, userModel.FieldID, userModel.TableName)

	user, err := s.userRepo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == constant.Empty {
		return failure.Unauthorized("not authenticated") //nolint:wrapcheck
	}

	if err = password.Verify(req.CurrentPassword, user.Password); err != nil {
		return failure.BadRequestWithCode("INVALID_CURRENT_PASSWORD", "current password is incorrect") //nolint:wrapcheck
	}

	hashed, err := password.Hash(req.NewPassword)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return fmt.Errorf("failed to hash password: %w", err)
	}

	fields := map[string]any{
		userModel.FieldPassword: hashed,
		constant.FieldUpdatedAt: timezone.Now(),
	}

	if err = s.userRepo.Update(ctx, fields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update password")

		return fmt.Errorf("failed to update password: %w", err)
	}

	// Other sessions of this user are revoked so stolen tokens die with the old password.
	sessionID, _ := ctx.Value(constant.ContextKeySessionID).(string)

	go func() {
		c := context.WithoutCancel(ctx)

		otherSessions := gDto.FilterGroup{
			Operator: gDto.FilterGroupOperatorAnd,
			Filters: []any{
				gDto.Filter{Field: model.SessionFieldUserID, Operator: gDto.FilterOperatorEq, Value: userID, Table: model.SessionTableName},
				gDto.Filter{Field: model.SessionFieldID, Operator: gDto.FilterOperatorNotEq, Value: sessionID, Table: model.SessionTableName},
			},
		}

		if err := s.sessionRepo.Delete(c, otherSessions); err != nil {
			log.Error().Err(err).Msg("failed to revoke other sessions")
		}
	}()

	return nil
}

func (s *serviceImpl) Authenticate(ctx context.Context, token string) (identity dto.Identity, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Authenticate")
	defer scope.End()
	defer scope.TraceIfError(err)

	if token == constant.Empty {
		return identity, failure.Unauthorized("missing bearer token") //nolint:wrapcheck
	}

	session, err := s.sessionRepo.Get(ctx, shared.FilterByID(token, model.SessionFieldToken, model.SessionTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get session")

		return identity, fmt.Errorf("failed to get session: %w", err)
	}

	if session.ID == constant.Empty {
		return identity, failure.Unauthorized("invalid session token") //nolint:wrapcheck
	}

	if session.Expired(timezone.Now()) {
		go func() {
			c := context.WithoutCancel(ctx)

			if err := s.sessionRepo.Delete(c, shared.FilterByID(session.ID, model.SessionFieldID, model.SessionTableName)); err != nil {
				log.Error().Err(err).Str("session_id", session.ID).Msg("failed to delete expired session")
			}
		}()

		return identity, failure.Unauthorized("session expired") //nolint:wrapcheck
	}

	user, err := s.userRepo.Get(ctx, shared.FilterByID(session.UserID, userModel.FieldID, userModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return identity, fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == constant.Empty {
		return identity, failure.Unauthorized("invalid session token") //nolint:wrapcheck
	}

	return dto.Identity{
		UserID:    user.ID,
		Email:     user.Email,
		SessionID: session.ID,
	}, nil
}

func (s *serviceImpl) IsAdmin(ctx context.Context, email string) (isAdmin bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".IsAdmin")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheIsAdmin, email)

	err = s.cache.Get(ctx, cacheKey, &isAdmin)
	if err == nil {
		return isAdmin, nil
	}

	isAdmin, err = s.adminEmailRepo.Exist(ctx, shared.FilterByID(email, model.AdminEmailFieldEmail, model.AdminEmailTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check admin allow-list")

		return false, fmt.Errorf("failed to check admin allow-list: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, isAdmin, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save admin allow-list check to cache")
		}
	}()

	return isAdmin, nil
}

func (s *serviceImpl) CreateAdminEmail(ctx context.Context, req dto.CreateAdminEmailRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateAdminEmail")
	defer scope.End()
	defer scope.TraceIfError(err)

	exist, err := s.adminEmailRepo.Exist(ctx, shared.FilterByID(req.Email, model.AdminEmailFieldEmail, model.AdminEmailTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check admin email existence")

		return fmt.Errorf("failed to check admin email existence: %w", err)
	}

	if exist {
		return failure.Conflict(codeDuplicateEmail, "admin email already exists") //nolint:wrapcheck
	}

	if err = s.adminEmailRepo.Insert(ctx, req.ToModel()); err != nil {
		log.Error().Err(err).Msg("failed to create admin email")

		return fmt.Errorf("failed to create admin email: %w", err)
	}

	s.invalidateAdminCaches(ctx)

	return nil
}

func (s *serviceImpl) GetAdminEmails(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetAdminEmailsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAdminEmails")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAdminEmails, params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for admin emails")

		return res, nil
	}

	total, err := s.adminEmailRepo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count admin emails")

		return res, fmt.Errorf("failed to count admin emails: %w", err)
	}

	models, err := s.adminEmailRepo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get admin emails")

		return res, fmt.Errorf("failed to get admin emails: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save admin emails to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) DeleteAdminEmail(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteAdminEmail")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.AdminEmailFieldID, model.AdminEmailTableName)

	exist, err := s.adminEmailRepo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check admin email existence")

		return fmt.Errorf("failed to check admin email existence: %w", err)
	}

	if !exist {
		return failure.NotFound(codeAdminEmailNotFound, "admin email not found") //nolint:wrapcheck
	}

	if err = s.adminEmailRepo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete admin email")

		return fmt.Errorf("failed to delete admin email: %w", err)
	}

	s.invalidateAdminCaches(ctx)

	return nil
}

func (s *serviceImpl) invalidateAdminCaches(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheIsAdmin)
		shared.InvalidateCaches(c, s.cache, cacheGetAdminEmails)
	}()
}

func generateSessionToken() (string, error) {
	buf := make([]byte, sessionTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}

	return hex.EncodeToString(buf), nil
}
