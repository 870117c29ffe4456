package middleware

import (
	"context"
	"crypto/subtle"
	"errors"
	"net/http"
	"spa/config"
	"spa/infras/jwt"
	"spa/infras/otel"
	"spa/shared/constant"
	"spa/shared/failure"
	"spa/transport/http/response"
	"strings"

	"github.com/rs/zerolog/log"
)

// Auth guards the routes that change assignments.
type Auth interface {
	// Authenticate resolves the operator behind the request and stores it in the context.
	// A bearer token carries the operator as a signed claim. A matching X-API-Key marks a trusted
	// integration, which names its operator in X-Operator. With neither JWT_SECRET nor APP_API_KEY
	// configured the routes are open and every change is made by "manager".
	Authenticate(next http.Handler) http.Handler
}

type authImpl struct {
	jwtService jwt.JWT
	otel       otel.Otel
	cfg        *config.Config
}

func NewAuthMiddleware(jwtService jwt.JWT, otel otel.Otel, cfg *config.Config) Auth {
	m := &authImpl{
		jwtService: jwtService,
		otel:       otel,
		cfg:        cfg,
	}

	if m.open() {
		log.Warn().Msg("Neither JWT_SECRET nor APP_API_KEY is set, assignment changes are not protected")
	}

	return m
}

func (m *authImpl) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		_, scope := m.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, "auth.middleware")
		defer scope.End()

		operator, source, err := m.operator(request)
		if err != nil {
			scope.TraceError(err)
			log.Warn().Err(err).Str("path", request.URL.Path).Msg("Rejected unauthenticated request")

			response.WithError(writer, err)

			return
		}

		scope.SetAttributes(map[string]any{
			"auth.source":   source,
			"auth.operator": operator,
		})

		ctx := context.WithValue(request.Context(), constant.ContextKeyOperator, operator)

		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}

func (m *authImpl) operator(request *http.Request) (operator, source string, err error) {
	if header := request.Header.Get(constant.RequestHeaderAuthorization); header != constant.Empty {
		operator, err = m.bearer(header)

		return operator, "token", err
	}

	provided := request.Header.Get(constant.RequestHeaderAPIKey)
	expected := m.cfg.App.APIKey

	if provided != constant.Empty && expected != constant.Empty {
		if subtle.ConstantTimeCompare([]byte(provided), []byte(expected)) != 1 {
			return constant.Empty, constant.Empty, failure.InvalidAPIKey
		}

		operator = strings.TrimSpace(request.Header.Get(constant.RequestHeaderOperator))
		if operator == constant.Empty {
			operator = constant.DefaultOperator
		}

		return operator, "api_key", nil
	}

	if m.open() {
		return constant.DefaultOperator, "open", nil
	}

	if expected != constant.Empty && !m.jwtService.Enabled() {
		return constant.Empty, constant.Empty, failure.InvalidAPIKey
	}

	return constant.Empty, constant.Empty, failure.MissingCredentials
}

func (m *authImpl) bearer(header string) (string, error) {
	if !m.jwtService.Enabled() {
		return constant.Empty, failure.Unauthorized("token authentication is not configured")
	}

	token, err := jwt.ExtractTokenFromHeader(header)
	if err != nil {
		return constant.Empty, failure.Unauthorized("invalid authorization header format")
	}

	claims, err := m.jwtService.Validate(token)
	if err != nil {
		var message string

		switch {
		case errors.Is(err, jwt.ErrExpiredToken):
			message = "token has expired"
		case errors.Is(err, jwt.ErrInvalidClaim):
			message = "invalid token claims"
		default:
			message = "invalid token"
		}

		return constant.Empty, failure.Unauthorized(message)
	}

	return claims.Operator, nil
}

func (m *authImpl) open() bool {
	return m.cfg.App.APIKey == constant.Empty && !m.jwtService.Enabled()
}
