package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"EquiLearn/internal/config"
)

// School registration and need submission accept tokenless requests: the
// request must reach the handler (and fail its own validation) rather than
// being turned away with a 401.
func TestSubmissionRoutesAreOpen(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := InitRouter(&config.Config{})

	cases := []struct {
		path string
		body string
	}{
		{"/api/schools", `{}`},
		{"/api/needs", `{}`},
	}
	for _, c := range cases {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, c.path, strings.NewReader(c.body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code, c.path)
	}
}

func TestAdminRoutesRequireAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := InitRouter(&config.Config{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/needs/pending", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
