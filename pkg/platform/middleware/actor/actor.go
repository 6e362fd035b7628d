// Package actor resolves the acting user from the X-User-ID header. There is
// no authentication layer; the header is trusted as-is and handlers decide
// which operations require an actor.
package actor

import (
	"net/http"

	"pawmates/pkg/domain"
	dErrors "pawmates/pkg/domain-errors"
	"pawmates/pkg/platform/httputil"
	"pawmates/pkg/requestcontext"
)

// Header carries the acting user's ID.
const Header = "X-User-ID"

// Middleware parses the actor header into the context. A missing header is
// allowed; a malformed one is rejected before the handler runs.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(Header)
		if raw == "" {
			next.ServeHTTP(w, r)
			return
		}
		userID, err := domain.ParseUserID(raw)
		if err != nil {
			httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "malformed "+Header+" header"))
			return
		}
		ctx := requestcontext.WithActorID(r.Context(), userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
