package session

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rfnaufal/snake-spectacle/internal/domain"
)

type fakeUsers map[string]*domain.User

func (f fakeUsers) GetUserByEmail(email string) (*domain.User, bool) {
	u, ok := f[email]
	return u, ok
}

func TestResolve(t *testing.T) {
	alice := &domain.User{Email: "alice@x.com", Username: "Alice"}
	r := NewResolver("snake_session", fakeUsers{"alice@x.com": alice})

	t.Run("no cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		_, ok := r.Resolve(req)
		assert.False(t, ok)
	})

	t.Run("unknown email", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: "snake_session", Value: "ghost@x.com"})
		_, ok := r.Resolve(req)
		assert.False(t, ok)
	})

	t.Run("known user", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: "snake_session", Value: "alice@x.com"})
		user, ok := r.Resolve(req)
		require.True(t, ok)
		assert.Same(t, alice, user)
	})
}

func TestIssueAndClear(t *testing.T) {
	alice := &domain.User{Email: "alice@x.com"}
	r := NewResolver("snake_session", fakeUsers{"alice@x.com": alice})

	w := httptest.NewRecorder()
	r.Issue(w, alice)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "snake_session", cookies[0].Name)
	assert.Equal(t, "alice@x.com", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
	assert.Equal(t, "/", cookies[0].Path)

	w = httptest.NewRecorder()
	r.Clear(w)

	cookies = w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}
