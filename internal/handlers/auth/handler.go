package auth

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"nest/infras/otel"
	"nest/internal/domains/auth/model"
	"nest/internal/domains/auth/model/dto"
	"nest/internal/domains/auth/service"
	"nest/shared/constant"
	gDto "nest/shared/dto"
	"nest/shared/validator"
	"nest/transport/http/middleware"
	"nest/transport/http/response"
)

type Handler struct {
	service service.Auth
	otel    otel.Otel
}

func New(service service.Auth, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router, auth middleware.Auth) {
	router.Route("/auth", func(routerGroup chi.Router) {
		routerGroup.Post("/login", handler.Login)

		routerGroup.Group(func(sessionGroup chi.Router) {
			sessionGroup.Use(auth.Authenticate)
			sessionGroup.Delete("/logout", handler.Logout)
			sessionGroup.Get("/me", handler.Me)
		})

		routerGroup.Group(func(adminGroup chi.Router) {
			adminGroup.Use(auth.Authenticate, auth.RequireAdmin)
			adminGroup.Put("/password", handler.ChangePassword)
		})
	})

	router.Route("/admin/emails", func(routerGroup chi.Router) {
		routerGroup.Use(auth.Authenticate, auth.RequireAdmin)
		routerGroup.Get("/", handler.GetAdminEmails)
		routerGroup.Post("/", handler.CreateAdminEmail)
		routerGroup.Delete("/{id}", handler.DeleteAdminEmail)
	})
}

// Login authenticates a user and opens a session.
// @Summary Log in
// @Description Verify credentials and return a session token.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login Request"
// @Success 200 {object} response.Data[dto.LoginResponse] "Session token and user"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/auth/login [post]
func (handler *Handler) Login(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Login")
	defer scope.End()

	req := dto.LoginRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Login(ctx, req, clientIP(request), request.Header.Get(constant.RequestHeaderUserAgent))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to log in")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("User logged in successfully")

	response.WithJSON(writer, http.StatusOK, res)
}

// Logout deletes the current session.
// @Summary Log out
// @Description Delete the session behind the presented bearer token.
// @Tags Auth
// @Accept json
// @Produce json
// @Success 200 {object} response.Message "Logged out successfully"
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/auth/logout [delete]
// @Security BearerAuth
func (handler *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Logout")
	defer scope.End()

	if err := handler.service.Logout(ctx); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to log out")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("User logged out successfully")

	response.WithMessage(w, http.StatusOK, "Logged out successfully")
}

// Me returns the authenticated user.
// @Summary Get the current user
// @Description Return the user behind the presented bearer token.
// @Tags Auth
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.UserResponse] "Current user"
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/auth/me [get]
// @Security BearerAuth
func (handler *Handler) Me(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Me")
	defer scope.End()

	res, err := handler.service.Me(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get current user")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Current user retrieved successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// ChangePassword updates the authenticated user's password.
// @Summary Change password
// @Description Verify the current password and store a new bcrypt hash. Other sessions are revoked.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.ChangePasswordRequest true "Change Password Request"
// @Success 200 {object} response.Message "Password changed successfully"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/auth/password [put]
// @Security BearerAuth
func (handler *Handler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ChangePassword")
	defer scope.End()

	req := dto.ChangePasswordRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.ChangePassword(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to change password")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Password changed successfully")

	response.WithMessage(w, http.StatusOK, "Password changed successfully")
}

// GetAdminEmails retrieves the admin allow-list.
// @Summary Get admin emails
// @Description Retrieve the admin allow-list with pagination.
// @Tags Auth
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.GetAdminEmailsResponse] "List of admin emails"
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/emails [get]
// @Security BearerAuth
func (handler *Handler) GetAdminEmails(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAdminEmails")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)
	queryParams.RestrictSort(constant.DefaultValueSortBy, model.AdminEmailFieldEmail)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if search := r.URL.Query().Get(constant.RequestParamSearch); search != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.AdminEmailFieldEmail,
			Operator: gDto.FilterOperatorLike,
			Value:    search,
			Table:    model.AdminEmailTableName,
		})
	}

	res, err := handler.service.GetAdminEmails(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get admin emails")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Admin emails retrieved successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// CreateAdminEmail adds an email to the admin allow-list.
// @Summary Add an admin email
// @Description Add an email address to the admin allow-list.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.CreateAdminEmailRequest true "Create Admin Email Request"
// @Success 201 {object} response.Message "Admin email created successfully"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/emails [post]
// @Security BearerAuth
func (handler *Handler) CreateAdminEmail(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateAdminEmail")
	defer scope.End()

	req := dto.CreateAdminEmailRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.CreateAdminEmail(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create admin email")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Admin email created successfully")

	response.WithMessage(w, http.StatusCreated, "Admin email created successfully")
}

// DeleteAdminEmail removes an email from the admin allow-list.
// @Summary Delete an admin email
// @Description Remove an email address from the admin allow-list.
// @Tags Auth
// @Accept json
// @Produce json
// @Param id path string true "Admin Email ID"
// @Success 200 {object} response.Message "Admin email deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/emails/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteAdminEmail(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteAdminEmail")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.DeleteAdminEmail(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete admin email")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Admin email deleted successfully")

	response.WithMessage(w, http.StatusOK, "Admin email deleted successfully")
}

func clientIP(r *http.Request) string {
	if xff := r.Header.Get(constant.RequestHeaderForwardedFor); xff != "" {
		if commaIdx := strings.Index(xff, ","); commaIdx > 0 {
			return strings.TrimSpace(xff[:commaIdx])
		}

		return strings.TrimSpace(xff)
	}

	if xri := r.Header.Get(constant.RequestHeaderRealIP); xri != "" {
		return strings.TrimSpace(xri)
	}

	return r.RemoteAddr
}
