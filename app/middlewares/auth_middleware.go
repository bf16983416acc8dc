package middlewares

import (
	"context"
	"log"
	"net/http"
	"net/url"

	"github.com/hafizianr/go-catalog-admin/app/helpers"
	"github.com/hafizianr/go-catalog-admin/app/repositories"
	"github.com/hafizianr/go-catalog-admin/app/utils/sessions"
)

// SessionUserMiddleware copies the session identity into the request context
// so handlers never reach into the cookie store themselves. The id is checked
// against the users table: a cookie naming a deleted user carries no
// identity, so the auth gate treats the request as anonymous.
func SessionUserMiddleware(sessionStore sessions.SessionStore, userRepo repositories.UserRepositoryImpl) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID := sessionStore.GetUserID(r)
			if userID == 0 {
				next.ServeHTTP(w, r)
				return
			}

			user, err := userRepo.FindByID(r.Context(), userID)
			if err != nil {
				log.Printf("SessionUserMiddleware: failed to load user %d: %v", userID, err)
				next.ServeHTTP(w, r)
				return
			}
			if user == nil {
				log.Printf("SessionUserMiddleware: session names missing user %d", userID)
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), helpers.ContextKeyUserID, user.ID)
			ctx = context.WithValue(ctx, helpers.ContextKeyUsername, user.Username)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAuthMiddleware gates the admin surface: unauthenticated requests
// are redirected to the login page.
func RequireAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if helpers.CurrentUserID(r) == 0 {
			log.Printf("RequireAuthMiddleware: unauthenticated request to %s, redirecting to login", r.URL.Path)
			http.Redirect(w, r, "/login?status=error&message="+url.QueryEscape("You must log in to access the admin panel."), http.StatusFound)
			return
		}
		next.ServeHTTP(w, r)
	})
}
