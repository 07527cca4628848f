package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/ginext"
)

func sweepRouter(secret string) (http.Handler, *int) {
	calls := 0
	r := ginext.New("test")
	r.POST("/sweep", SweepAuth(secret), func(c *ginext.Context) {
		calls++
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})
	return r, &calls
}

func TestSweepAuth_ValidSecret(t *testing.T) {
	r, calls := sweepRouter("s3cret")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/sweep", nil)
	req.Header.Set("Authorization", "Bearer s3cret")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, *calls)
}

func TestSweepAuth_WrongSecret(t *testing.T) {
	r, calls := sweepRouter("s3cret")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/sweep", nil)
	req.Header.Set("Authorization", "Bearer guess")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, 0, *calls)
}

func TestSweepAuth_MissingHeader(t *testing.T) {
	r, calls := sweepRouter("s3cret")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/sweep", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, 0, *calls)
}

func TestSweepAuth_EmptySecretDisablesEndpoint(t *testing.T) {
	r, calls := sweepRouter("")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/sweep", nil)
	req.Header.Set("Authorization", "Bearer ")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, 0, *calls)
}
