package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"vision-gateway/pkg/log"
)

func newRouter(mw Middleware) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw.RequestID(), mw.RateLimit(), mw.Auth())
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	return r
}

func TestRequestID(t *testing.T) {
	r := newRouter(New(log.NewNop(), "", 0))

	t.Run("Generates an id", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		r.ServeHTTP(w, req)

		if w.Header().Get("X-Request-ID") == "" {
			t.Error("response must carry a request id")
		}
	})

	t.Run("Honors an inbound id", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("X-Request-ID", "req-42")
		r.ServeHTTP(w, req)

		if got := w.Header().Get("X-Request-ID"); got != "req-42" {
			t.Errorf("request id = %q, want req-42", got)
		}
	})
}

func TestRateLimit(t *testing.T) {
	t.Run("Throttles after the burst", func(t *testing.T) {
		// 10 req/min allows a burst of 1.
		r := newRouter(New(log.NewNop(), "", 10))

		codes := make([]int, 0, 3)
		for i := 0; i < 3; i++ {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			req.RemoteAddr = "10.0.0.1:1234"
			r.ServeHTTP(w, req)
			codes = append(codes, w.Code)
		}

		if codes[0] != http.StatusOK {
			t.Errorf("first request should pass, got %d", codes[0])
		}
		if codes[2] != http.StatusTooManyRequests {
			t.Errorf("third request should be throttled, got %d", codes[2])
		}
	})

	t.Run("Sources are isolated", func(t *testing.T) {
		r := newRouter(New(log.NewNop(), "", 10))

		first := httptest.NewRecorder()
		reqA := httptest.NewRequest(http.MethodGet, "/ping", nil)
		reqA.RemoteAddr = "10.0.0.1:1234"
		r.ServeHTTP(first, reqA)
		r.ServeHTTP(httptest.NewRecorder(), reqA)

		w := httptest.NewRecorder()
		reqB := httptest.NewRequest(http.MethodGet, "/ping", nil)
		reqB.RemoteAddr = "10.0.0.2:1234"
		r.ServeHTTP(w, reqB)

		if w.Code != http.StatusOK {
			t.Errorf("a fresh source must not inherit another source's bucket, got %d", w.Code)
		}
	})

	t.Run("Disabled when unconfigured", func(t *testing.T) {
		r := newRouter(New(log.NewNop(), "", 0))

		for i := 0; i < 20; i++ {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			r.ServeHTTP(w, req)
			if w.Code != http.StatusOK {
				t.Fatalf("request %d throttled with rate limiting disabled", i)
			}
		}
	})
}

func TestAuth(t *testing.T) {
	t.Run("No token configured is open", func(t *testing.T) {
		r := newRouter(New(log.NewNop(), "", 0))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		if w.Code != http.StatusOK {
			t.Errorf("expected 200, got %d", w.Code)
		}
	})

	t.Run("Valid bearer token", func(t *testing.T) {
		r := newRouter(New(log.NewNop(), "secret", 0))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("Authorization", "Bearer secret")
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Errorf("expected 200, got %d", w.Code)
		}
	})

	t.Run("Missing or wrong token rejected", func(t *testing.T) {
		r := newRouter(New(log.NewNop(), "secret", 0))

		for _, header := range []string{"", "Bearer wrong", "secret"} {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			if header != "" {
				req.Header.Set("Authorization", header)
			}
			r.ServeHTTP(w, req)
			if w.Code != http.StatusUnauthorized {
				t.Errorf("header %q: expected 401, got %d", header, w.Code)
			}
		}
	})
}
