package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kosovai-backend/internal/pkg/jwtutil"
)

const testSecret = "test-secret"

func newProtectedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", SessionAuth(testSecret, "access_token"), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"username": c.GetString(ContextUsernameKey)})
	})
	return router
}

func get(router *gin.Engine, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestSessionAuthValidToken(t *testing.T) {
	router := newProtectedRouter()

	token, err := jwtutil.GenerateToken(testSecret, time.Hour, "user1")
	require.NoError(t, err)

	w := get(router, &http.Cookie{Name: "access_token", Value: token})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"username":"user1"}`, w.Body.String())
}

func TestSessionAuthRejections(t *testing.T) {
	router := newProtectedRouter()

	expired, err := jwtutil.GenerateToken(testSecret, -time.Minute, "user1")
	require.NoError(t, err)
	wrongKey, err := jwtutil.GenerateToken("other-secret", time.Hour, "user1")
	require.NoError(t, err)

	cases := map[string]*http.Cookie{
		"no cookie":       nil,
		"empty cookie":    {Name: "access_token", Value: ""},
		"garbage token":   {Name: "access_token", Value: "garbage"},
		"expired token":   {Name: "access_token", Value: expired},
		"wrong signature": {Name: "access_token", Value: wrongKey},
	}

	var bodies []string
	for name, cookie := range cases {
		t.Run(name, func(t *testing.T) {
			w := get(router, cookie)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
			bodies = append(bodies, w.Body.String())
		})
	}
	for _, body := range bodies {
		assert.Equal(t, bodies[0], body, "all rejection reasons must be indistinguishable")
	}
}
