package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
)

type authContextKey string

const userContextKey authContextKey = "auth.user"

// User represents the authenticated store administrator.
type User struct {
	UID   string
	Email string
	Token string
}

// Authenticator resolves an incoming Bearer token into a User.
type Authenticator interface {
	Authenticate(r *http.Request, token string) (*User, error)
}

// ErrUnauthorized is returned when authentication fails.
var ErrUnauthorized = errors.New("unauthorized")

// AuthError contains reason codes for failed authentication attempts.
type AuthError struct {
	Reason string
	Err    error
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	if e.Err == nil {
		return e.Reason
	}
	return e.Reason + ": " + e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *AuthError) Unwrap() error {
	return e.Err
}

// NewAuthError constructs an AuthError with the provided reason.
func NewAuthError(reason string, err error) error {
	return &AuthError{Reason: reason, Err: err}
}

const (
	// ReasonMissingToken indicates an auth attempt without credentials.
	ReasonMissingToken = "missing_token"
	// ReasonTokenInvalid indicates a malformed or invalid token.
	ReasonTokenInvalid = "token_invalid"
	// ReasonTokenExpired indicates an expired token which may be recoverable.
	ReasonTokenExpired = "token_expired"
)

// DefaultAuthenticator accepts any non-empty bearer token and is intended for local development.
func DefaultAuthenticator() Authenticator {
	return &passthroughAuthenticator{}
}

// Auth validates incoming requests and either attaches a User to context or
// responds 401 with a JSON body the console surfaces to the operator.
func Auth(authenticator Authenticator) func(http.Handler) http.Handler {
	if authenticator == nil {
		authenticator = DefaultAuthenticator()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := parseBearerToken(r.Header.Get("Authorization"))
			if token == "" {
				token = cookieToken(r)
			}
			if strings.TrimSpace(token) == "" {
				log.Printf("auth failure: reason=%s error=%v", ReasonMissingToken, ErrUnauthorized)
				writeUnauthorized(w, ReasonMissingToken)
				return
			}

			user, err := authenticator.Authenticate(r, token)
			if err != nil || user == nil {
				reason := ReasonTokenInvalid
				var authErr *AuthError
				if errors.As(err, &authErr) {
					if authErr.Reason != "" {
						reason = authErr.Reason
					}
					err = authErr.Err
				}
				if err == nil {
					err = ErrUnauthorized
				}
				log.Printf("auth failure: reason=%s error=%v", reason, err)
				writeUnauthorized(w, reason)
				return
			}

			ctx := context.WithValue(r.Context(), userContextKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserFromContext retrieves the authenticated user if present.
func UserFromContext(ctx context.Context) (*User, bool) {
	user, ok := ctx.Value(userContextKey).(*User)
	return user, ok
}

// TokenFromContext returns the caller's bearer token for backend passthrough,
// or empty string when the request was not authenticated.
func TokenFromContext(ctx context.Context) string {
	if user, ok := UserFromContext(ctx); ok {
		return user.Token
	}
	return ""
}

func parseBearerToken(header string) string {
	if header == "" {
		return ""
	}
	if !strings.HasPrefix(strings.ToLower(header), "bearer ") {
		return ""
	}
	return strings.TrimSpace(header[7:])
}

func cookieToken(r *http.Request) string {
	candidates := []string{"Authorization", "__session", "idToken", "IDToken"}
	for _, name := range candidates {
		c, err := r.Cookie(name)
		if err != nil {
			continue
		}
		val := strings.TrimSpace(c.Value)
		if val == "" {
			continue
		}
		if strings.HasPrefix(strings.ToLower(val), "bearer ") {
			return strings.TrimSpace(val[7:])
		}
		return val
	}
	return ""
}

func writeUnauthorized(w http.ResponseWriter, reason string) {
	if reason == "" {
		reason = ReasonTokenInvalid
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"error":  http.StatusText(http.StatusUnauthorized),
		"reason": reason,
	})
}

type passthroughAuthenticator struct{}

func (p *passthroughAuthenticator) Authenticate(_ *http.Request, token string) (*User, error) {
	if token == "" {
		return nil, ErrUnauthorized
	}
	return &User{
		UID:   token,
		Token: token,
	}, nil
}
