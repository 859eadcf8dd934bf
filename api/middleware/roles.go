package middleware

import (
	"net/http"

	"github.com/aurelioguzman/tendermarket-backend/api/responses"
	"github.com/aurelioguzman/tendermarket-backend/pkg/enums"
	pkgerrors "github.com/aurelioguzman/tendermarket-backend/pkg/errors"
	"github.com/aurelioguzman/tendermarket-backend/pkg/logger"
)

// RequireRoles rejects requests whose authenticated role is not in the
// allowed set.
func RequireRoles(logg *logger.Logger, allowed ...enums.UserRole) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role := RoleFromContext(r.Context())
			for _, want := range allowed {
				if role == want {
					next.ServeHTTP(w, r)
					return
				}
			}
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeForbidden, "insufficient role"))
		})
	}
}
