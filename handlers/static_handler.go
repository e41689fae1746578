package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
)

const notFoundPage = "<html><body><h1>404 - File Not Found</h1></body></html>"

// StaticHandler serves the bundled front-end from a directory.
type StaticHandler struct {
	root string
}

func NewStaticHandler(root string) *StaticHandler {
	return &StaticHandler{root: root}
}

func (h *StaticHandler) Serve(c *gin.Context) {
	requestPath := c.Request.URL.Path
	if requestPath == "/" {
		requestPath = "/index.html"
	}

	filePath := strings.TrimPrefix(requestPath, "/")
	if strings.Contains(filePath, "..") {
		c.Data(http.StatusForbidden, "text/plain", []byte("Forbidden"))
		return
	}

	fullPath := filepath.Join(h.root, filepath.FromSlash(filePath))
	info, err := os.Stat(fullPath)
	if err != nil || !info.Mode().IsRegular() {
		c.Data(http.StatusNotFound, "text/html", []byte(notFoundPage))
		return
	}

	data, err := os.ReadFile(fullPath)
	if err != nil {
		c.Data(http.StatusInternalServerError, "text/plain", []byte("Failed to read file"))
		return
	}

	c.Data(http.StatusOK, contentType(filePath), data)
}

func contentType(filePath string) string {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".html":
		return "text/html"
	case ".css":
		return "text/css"
	case ".js":
		return "application/javascript"
	case ".json":
		return "application/json"
	default:
		return "text/plain"
	}
}
