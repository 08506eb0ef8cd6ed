package middleware

import (
	"context"
	"net/http"
	"strings"

	"nest/infras/otel"
	"nest/internal/domains/auth/service"
	"nest/shared/constant"
	"nest/shared/failure"
	"nest/transport/http/response"
)

// Auth gates routes behind the session table. Authenticate resolves a bearer
// token into a user; RequireAdmin additionally checks the allow-list.
type Auth interface {
	Authenticate(http.Handler) http.Handler
	RequireAdmin(http.Handler) http.Handler
}

type authImpl struct {
	authService service.Auth
	otel        otel.Otel
}

func NewAuthMiddleware(authService service.Auth, otel otel.Otel) Auth {
	return &authImpl{
		authService: authService,
		otel:        otel,
	}
}

func (m *authImpl) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx, scope := m.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, "middleware.Authenticate")
		defer scope.End()

		token := bearerToken(request)
		if token == constant.Empty {
			response.WithError(writer, failure.Unauthorized("missing bearer token"))

			return
		}

		identity, err := m.authService.Authenticate(ctx, token)
		if err != nil {
			scope.TraceIfError(err)
			response.WithError(writer, err)

			return
		}

		ctx = context.WithValue(ctx, constant.ContextKeyUserID, identity.UserID)
		ctx = context.WithValue(ctx, constant.ContextKeyUserEmail, identity.Email)
		ctx = context.WithValue(ctx, constant.ContextKeySessionID, identity.SessionID)

		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}

func (m *authImpl) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx, scope := m.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, "middleware.RequireAdmin")
		defer scope.End()

		email, _ := ctx.Value(constant.ContextKeyUserEmail).(string)
		if email == constant.Empty {
			response.WithError(writer, failure.Unauthorized("not authenticated"))

			return
		}

		isAdmin, err := m.authService.IsAdmin(ctx, email)
		if err != nil {
			scope.TraceIfError(err)
			response.WithError(writer, err)

			return
		}

		if !isAdmin {
			response.WithError(writer, failure.ForbiddenError)

			return
		}

		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}

func bearerToken(request *http.Request) string {
	header := request.Header.Get(constant.RequestHeaderAuthorization)

	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return constant.Empty
	}

	return strings.TrimSpace(strings.TrimPrefix(header, prefix))
}
