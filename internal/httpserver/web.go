package httpserver

import (
	"embed"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed static
var webFS embed.FS

// registerWebUI serves the embedded single-page UI at the root. The page is
// written directly; http.FileServer would redirect index.html back to "/".
func (srv *HTTPServer) registerWebUI() {
	page, err := webFS.ReadFile("static/index.html")
	if err != nil {
		// The embed directive guarantees the file exists.
		panic(err)
	}

	srv.gin.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", page)
	})
}
