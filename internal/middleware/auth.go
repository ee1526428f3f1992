package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"

	"github.com/2beens/fittrack/internal/auth"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=middleware_test

const (
	AdminTokenHeader = "X-ADMIN-TOKEN"
	bearerPrefix     = "Bearer "
)

type loginChecker interface {
	IsLogged(ctx context.Context, token string) (bool, error)
}

type userTokenParser interface {
	ParseUserID(rawToken string) (uuid.UUID, error)
}

// AuthMiddlewareHandler guards two audiences: the mobile client calls /api/*
// with a bearer JWT, the admin dashboard calls /admin/* with a session token.
type AuthMiddlewareHandler struct {
	tokenParser  userTokenParser
	loginChecker loginChecker
	allowedPaths map[string]bool
}

func NewAuthMiddlewareHandler(
	tokenParser userTokenParser,
	loginChecker loginChecker,
) *AuthMiddlewareHandler {
	return &AuthMiddlewareHandler{
		tokenParser:  tokenParser,
		loginChecker: loginChecker,
		allowedPaths: map[string]bool{
			// misc handler:
			"/":        true,
			"/version": true,

			// admin login:
			"/admin/login": true,
		},
	}
}

func (h *AuthMiddlewareHandler) AuthCheck() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := tracing.GlobalTracer.Start(r.Context(), "middleware.auth")
			defer span.End()

			if r.Method == http.MethodOptions {
				w.Header().Add("Allow", "GET, POST, PUT, DELETE, OPTIONS")
				w.WriteHeader(http.StatusOK)
				span.SetStatus(codes.Ok, "options-ok")
				return
			}

			if h.allowedPaths[r.URL.Path] {
				span.SetStatus(codes.Ok, "ok")
				next.ServeHTTP(w, r)
				return
			}

			switch {
			case strings.HasPrefix(r.URL.Path, "/api/"):
				authHeader := r.Header.Get("Authorization")
				if !strings.HasPrefix(authHeader, bearerPrefix) {
					log.Tracef("[missing bearer] [auth middleware] unauthorized => %s", r.URL.Path)
					http.Error(w, "no can do", http.StatusUnauthorized)
					span.SetStatus(codes.Error, "missing-bearer-token")
					return
				}

				userID, err := h.tokenParser.ParseUserID(strings.TrimPrefix(authHeader, bearerPrefix))
				if err != nil {
					log.Tracef("[invalid bearer] [auth middleware] unauthorized => %s: %s", r.URL.Path, err)
					http.Error(w, "no can do", http.StatusUnauthorized)
					span.SetStatus(codes.Error, "invalid-bearer-token")
					return
				}

				span.SetStatus(codes.Ok, "ok")
				next.ServeHTTP(w, r.WithContext(auth.WithUserID(ctx, userID)))
				return
			case strings.HasPrefix(r.URL.Path, "/admin/"):
				authToken := r.Header.Get(AdminTokenHeader)
				if authToken == "" {
					log.Tracef("[missing token] [auth middleware] unauthorized => %s", r.URL.Path)
					http.Error(w, "no can do", http.StatusUnauthorized)
					span.SetStatus(codes.Error, "missing-auth-token")
					return
				}

				isLogged, err := h.loginChecker.IsLogged(ctx, authToken)
				if err != nil {
					log.Errorf("[failed login check] => %s: %s", r.URL.Path, err)
					http.Error(w, "no can do", http.StatusUnauthorized)
					span.SetStatus(codes.Error, "check-logged-err")
					span.RecordError(err)
					return
				}
				if !isLogged {
					log.Tracef("[invalid token] [auth middleware] unauthorized => %s", r.URL.Path)
					http.Error(w, "no can do", http.StatusUnauthorized)
					span.SetStatus(codes.Error, "not-logged")
					return
				}

				span.SetStatus(codes.Ok, "ok")
				next.ServeHTTP(w, r)
				return
			}

			log.Tracef("[unknown path] [auth middleware] unauthorized => %s", r.URL.Path)
			http.Error(w, "no can do", http.StatusUnauthorized)
			span.SetStatus(codes.Error, "unknown-path")
		})
	}
}
