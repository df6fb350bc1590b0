// Package session resolves the snake_session cookie to a user. The cookie
// value is the user's email in plaintext: anyone holding the string can
// impersonate that user. The resolver keeps that contract behind a narrow
// interface so a signed-token scheme could replace it without touching
// handler logic.
package session

import (
	"net/http"

	"github.com/rfnaufal/snake-spectacle/internal/domain"
)

// UserSource looks up users by email. Satisfied by *store.Store.
type UserSource interface {
	GetUserByEmail(email string) (*domain.User, bool)
}

// Resolver turns an inbound request into an authenticated user and manages
// the session cookie on responses.
type Resolver struct {
	cookieName string
	users      UserSource
}

// NewResolver creates a resolver reading the named cookie
func NewResolver(cookieName string, users UserSource) *Resolver {
	return &Resolver{
		cookieName: cookieName,
		users:      users,
	}
}

// Resolve returns the user identified by the request's session cookie, or
// false when the cookie is absent or does not map to a known user.
func (r *Resolver) Resolve(req *http.Request) (*domain.User, bool) {
	cookie, err := req.Cookie(r.cookieName)
	if err != nil || cookie.Value == "" {
		return nil, false
	}
	return r.users.GetUserByEmail(cookie.Value)
}

// Issue sets the session cookie identifying the given user
func (r *Resolver) Issue(w http.ResponseWriter, user *domain.User) {
	http.SetCookie(w, &http.Cookie{
		Name:     r.cookieName,
		Value:    user.Email,
		Path:     "/",
		HttpOnly: true,
	})
}

// Clear expires the session cookie
func (r *Resolver) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     r.cookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
}
