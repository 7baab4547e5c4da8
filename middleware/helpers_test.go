package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestEngine(handlers ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(ErrorHandlerMiddleware(zap.NewNop().Sugar()))
	r.GET("/test", handlers...)
	return r
}

func doGet(t *testing.T, r http.Handler, authorization string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func ok(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"userId": c.GetString(UserIDKey)})
}
