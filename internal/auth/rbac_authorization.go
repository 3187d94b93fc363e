package auth

import (
	"log/slog"
	"net/http"
)

// RBACAuthorization turns policy table lookups into chi middleware. There is
// one constructor for every gated route group; the allowed-role sets live in
// policy.go, never in handlers.
type RBACAuthorization struct {
	logger *slog.Logger
}

func NewRBACAuthorization(logger *slog.Logger) *RBACAuthorization {
	return &RBACAuthorization{logger: logger}
}

// Require returns middleware that rejects the request unless the
// authenticated user's role is allowed to perform op.
func (ra *RBACAuthorization) Require(op Operation) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := UserFromContext(r.Context())
			if !ok || user == nil {
				ra.logger.Warn("authorization check failed: user not found in context", "operation", string(op))
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			if !user.Can(op) {
				ra.logger.WarnContext(r.Context(), "access denied: insufficient role",
					"user_id", user.ID,
					"role", user.Role,
					"operation", string(op))
				http.Error(w, "Forbidden: insufficient role", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
