package httpserver

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"vision-gateway/pkg/log"
)

func TestWebUI(t *testing.T) {
	gin.SetMode(gin.TestMode)
	srv := &HTTPServer{gin: gin.New(), l: log.NewNop()}
	srv.registerWebUI()

	w := httptest.NewRecorder()
	srv.gin.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("GET / = %d, want 200 (location=%q)", w.Code, w.Header().Get("Location"))
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("Content-Type = %q, want text/html", ct)
	}
	if !strings.Contains(w.Body.String(), "Vision Gateway") {
		t.Error("page body must render the UI")
	}
}
