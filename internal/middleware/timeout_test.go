package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestTimeoutWritesGatewayTimeout(t *testing.T) {
	gin.SetMode(gin.TestMode)

	wrote := make(chan struct{})
	r := gin.New()
	r.Use(Timeout(30 * time.Millisecond))
	r.GET("/slow", func(c *gin.Context) {
		time.Sleep(150 * time.Millisecond)
		c.JSON(http.StatusOK, gin.H{"late": true})
		close(wrote)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/slow", nil))

	// Wait for the handler's late write so the test proves it was
	// discarded rather than merely not yet attempted.
	<-wrote

	assert.Equal(t, http.StatusGatewayTimeout, w.Code)
	assert.Contains(t, w.Body.String(), "request timeout")
	assert.NotContains(t, w.Body.String(), "late")
}

func TestTimeoutFastHandlerUnaffected(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(Timeout(time.Second))
	r.GET("/fast", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/fast", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ok")
}
