package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kenemosam/saluni/pkg/httputil"
)

// timeoutWriter guards the response writer shared between the handler
// goroutine and the timeout path. Once the deadline fires, handler
// writes are discarded instead of racing the 504 response.
type timeoutWriter struct {
	gin.ResponseWriter
	mu       sync.Mutex
	timedOut bool
}

func (w *timeoutWriter) WriteHeader(code int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timedOut {
		return
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *timeoutWriter) Write(b []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timedOut {
		return len(b), nil
	}
	return w.ResponseWriter.Write(b)
}

func (w *timeoutWriter) WriteString(s string) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timedOut {
		return len(s), nil
	}
	return w.ResponseWriter.WriteString(s)
}

// timeout writes the 504 response unless the handler already produced
// one, and discards everything the handler writes afterwards.
func (w *timeoutWriter) timeout(body []byte) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.timedOut = true
	if w.ResponseWriter.Written() {
		return
	}
	w.ResponseWriter.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.ResponseWriter.WriteHeader(http.StatusGatewayTimeout)
	w.ResponseWriter.Write(body)
}

// Timeout caps request handling at the given duration
func Timeout(duration time.Duration) gin.HandlerFunc {
	timeoutBody, _ := json.Marshal(httputil.Response{
		Success: false,
		Error: &httputil.Error{
			Code:    http.StatusGatewayTimeout,
			Message: "request timeout",
		},
	})

	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), duration)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)

		tw := &timeoutWriter{ResponseWriter: c.Writer}
		c.Writer = tw

		done := make(chan struct{})
		go func() {
			c.Next()
			close(done)
		}()

		select {
		case <-done:
		case <-ctx.Done():
			if ctx.Err() == context.DeadlineExceeded {
				tw.timeout(timeoutBody)
			}
		}
	}
}
