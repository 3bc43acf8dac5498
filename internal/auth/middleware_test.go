package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Huntitude/locallibrary/internal/auth"
	"github.com/Huntitude/locallibrary/internal/httpx"
	"github.com/Huntitude/locallibrary/internal/testutil"
	"github.com/Huntitude/locallibrary/internal/user"
)

const testSecret = "test-secret"

func protected(t *testing.T) (http.Handler, *string, *string) {
	t.Helper()
	var gotUserID, gotRole string
	h := auth.Middleware(testSecret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID = httpx.UserIDFrom(r)
		gotRole = httpx.RoleFrom(r)
		w.WriteHeader(http.StatusOK)
	}))
	return h, &gotUserID, &gotRole
}

func TestMiddleware_ValidToken(t *testing.T) {
	h, gotUserID, gotRole := protected(t)

	token := testutil.GenerateTestToken(testSecret, testutil.TestLibrarian.ID, user.RoleLibrarian)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, testutil.NewRequestWithAuth(http.MethodGet, "/loans/all", nil, token))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, testutil.TestLibrarian.ID, *gotUserID)
	assert.Equal(t, user.RoleLibrarian, *gotRole)
}

func TestMiddleware_MissingToken(t *testing.T) {
	h, _, _ := protected(t)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, testutil.NewRequest(http.MethodGet, "/loans/mine", nil))

	resp := testutil.RecordHTTPResponse(w)
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	assert.Equal(t, false, resp.Body["success"])
}

func TestMiddleware_ExpiredToken(t *testing.T) {
	h, _, _ := protected(t)

	token := testutil.GenerateExpiredToken(testSecret, testutil.TestPatron.ID, user.RolePatron)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, testutil.NewRequestWithAuth(http.MethodGet, "/loans/mine", nil, token))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMiddleware_WrongSecret(t *testing.T) {
	h, _, _ := protected(t)

	token := testutil.GenerateTestToken("other-secret", testutil.TestPatron.ID, user.RolePatron)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, testutil.NewRequestWithAuth(http.MethodGet, "/loans/mine", nil, token))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
