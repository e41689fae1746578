// Package handlers is made to handle requests
package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"playfair-backend/crypto"
	"playfair-backend/models"

	"github.com/gin-gonic/gin"
)

// Version is reported by the health check.
const Version = "1.0.0"

type PlayfairHandler struct {
	maxKeyLength int
}

func NewPlayfairHandler(maxKeyLength int) *PlayfairHandler {
	return &PlayfairHandler{
		maxKeyLength: maxKeyLength,
	}
}

func (h *PlayfairHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, models.HealthResponse{
		Status:  "healthy",
		Message: "Playfair cipher API is running",
		Version: Version,
	})
}

func (h *PlayfairHandler) Encrypt(c *gin.Context) {
	h.runCipher(c, (*crypto.Playfair).Encrypt)
}

func (h *PlayfairHandler) Decrypt(c *gin.Context) {
	h.runCipher(c, (*crypto.Playfair).Decrypt)
}

func (h *PlayfairHandler) runCipher(c *gin.Context, op func(*crypto.Playfair, string) string) {
	var req models.CipherRequest
	if status, err := bindRequest(c, &req); err != nil {
		c.JSON(status, models.CipherResponse{
			Success: false,
			Error:   fmt.Sprintf("Failed to parse request: %v", err),
		})
		return
	}

	if strings.TrimSpace(req.Key) == "" {
		c.JSON(http.StatusBadRequest, models.CipherResponse{
			Success: false,
			Error:   "Key is required",
		})
		return
	}

	if strings.TrimSpace(req.Text) == "" {
		c.JSON(http.StatusBadRequest, models.CipherResponse{
			Success: false,
			Error:   "Text is required",
		})
		return
	}

	if err := crypto.ValidateKey(req.Key, h.maxKeyLength); err != nil {
		c.JSON(http.StatusBadRequest, models.CipherResponse{
			Success: false,
			Error:   fmt.Sprintf("Invalid key: %v", err),
		})
		return
	}

	cipher := crypto.NewPlayfair(req.Key)
	c.JSON(http.StatusOK, models.CipherResponse{
		Success: true,
		Result:  op(cipher, req.Text),
	})
}

func (h *PlayfairHandler) KeySquare(c *gin.Context) {
	var req models.KeySquareRequest
	if status, err := bindRequest(c, &req); err != nil {
		c.JSON(status, models.KeySquareResponse{
			Success: false,
			Error:   fmt.Sprintf("Failed to parse request: %v", err),
		})
		return
	}

	if strings.TrimSpace(req.Key) == "" {
		c.JSON(http.StatusBadRequest, models.KeySquareResponse{
			Success: false,
			Error:   "Key is required",
		})
		return
	}

	if err := crypto.ValidateKey(req.Key, h.maxKeyLength); err != nil {
		c.JSON(http.StatusBadRequest, models.KeySquareResponse{
			Success: false,
			Error:   fmt.Sprintf("Invalid key: %v", err),
		})
		return
	}

	square := crypto.NewKeySquare(req.Key)
	c.JSON(http.StatusOK, models.KeySquareResponse{
		Success:   true,
		KeySquare: square.Rows(),
		Rendered:  square.String(),
	})
}

// MethodNotAllowed answers requests to API routes with the wrong verb.
func (h *PlayfairHandler) MethodNotAllowed(c *gin.Context) {
	c.JSON(http.StatusMethodNotAllowed, models.ErrorResponse{
		Success: false,
		Error:   "Method not allowed",
	})
}

// bindRequest decodes a JSON or url-encoded body into obj. An empty body
// leaves obj zero so the caller reports the missing fields.
func bindRequest(c *gin.Context, obj any) (int, error) {
	err := c.ShouldBind(obj)
	if err == nil || errors.Is(err, io.EOF) {
		return http.StatusOK, nil
	}

	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return http.StatusRequestEntityTooLarge, fmt.Errorf("body exceeds %d bytes", tooLarge.Limit)
	}
	return http.StatusBadRequest, err
}

// LimitBody caps the size of request bodies.
func LimitBody(n int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, n)
		}
		c.Next()
	}
}
