package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/trouvaille/lostfound/internal/auth"
	"github.com/trouvaille/lostfound/internal/model"
)

func newMockAuthorizer() *auth.MockAuthorizer {
	az := auth.NewMockAuthorizer()
	az.Users["admin-token"] = &model.User{Username: "admin", IsAdmin: true}
	az.Users["visitor-token"] = &model.User{Username: "visitor"}
	return az
}

func TestRequireUser(t *testing.T) {
	az := newMockAuthorizer()
	var seen *model.User
	h := requireUser(az, func(w http.ResponseWriter, r *http.Request) {
		seen, _ = userFrom(r)
		w.WriteHeader(http.StatusOK)
	})

	cases := []struct {
		name   string
		header string
		status int
	}{
		{"no token", "", http.StatusUnauthorized},
		{"bad token", "Bearer nope", http.StatusUnauthorized},
		{"valid token", "Bearer visitor-token", http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			seen = nil
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rr := httptest.NewRecorder()
			h(rr, req)
			assert.Equal(t, tc.status, rr.Code)
			if tc.status == http.StatusOK {
				assert.NotNil(t, seen)
				assert.Equal(t, "visitor", seen.Username)
			}
		})
	}
}

func TestRequireAdmin(t *testing.T) {
	az := newMockAuthorizer()
	h := requireAdmin(az, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	req.Header.Set("Authorization", "Bearer visitor-token")
	rr := httptest.NewRecorder()
	h(rr, req)
	assert.Equal(t, http.StatusForbidden, rr.Code)

	req = httptest.NewRequest(http.MethodDelete, "/", nil)
	req.Header.Set("Authorization", "Bearer admin-token")
	rr = httptest.NewRecorder()
	h(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)
}
