package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/Netzalist-GmbH-Co-KG/virtualmuseum-sub001/internal/config"
)

func setupAuthRouter(key string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{}
	cfg.Auth.ApiKey = key
	r := gin.New()
	r.Use(APIKeyAuth(cfg))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func TestAPIKeyAuth(t *testing.T) {
	r := setupAuthRouter("installation-key")

	cases := []struct {
		name   string
		header string
		value  string
		want   int
	}{
		{"x-api-key accepted", "x-api-key", "installation-key", http.StatusOK},
		{"bearer accepted", "Authorization", "Bearer installation-key", http.StatusOK},
		{"wrong key rejected", "x-api-key", "other-key", http.StatusUnauthorized},
		{"missing key rejected", "", "", http.StatusUnauthorized},
		{"bare authorization rejected", "Authorization", "installation-key", http.StatusUnauthorized},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			if tc.header != "" {
				req.Header.Set(tc.header, tc.value)
			}
			r.ServeHTTP(w, req)
			assert.Equal(t, tc.want, w.Code)
		})
	}
}
