package http

import (
	"net/http"

	"github.com/nakamauwu/parcelmate/auth"
	"github.com/nakamauwu/parcelmate/errs"
)

// withAuth puts the user of a bearer token in the request context.
// Requests without a token go through anonymous.
// Browsers cannot set headers on EventSource and WebSocket requests,
// those send the token in the "token" query parameter.
func (h *Handler) withAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := auth.TokenFromHeader(r.Header.Get("Authorization"))
		if !ok {
			if r.Header.Get("Authorization") != "" {
				h.respondErr(w, r, errs.NewUnauthenticatedError("invalid authorization header"))
				return
			}

			token = r.URL.Query().Get("token")
		}

		if token == "" {
			next.ServeHTTP(w, r)
			return
		}

		user, err := h.Tokens.Verify(token)
		if err != nil {
			h.respondErr(w, r, err)
			return
		}

		ctx := auth.WithUser(r.Context(), user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
