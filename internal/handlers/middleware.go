package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	corsAllowMethods = "GET, POST, PUT, DELETE, OPTIONS"
	corsAllowHeaders = "Authorization, Content-Type, Accept, Origin"
)

func (h *Handler) userIdMiddleware(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if header == "" {
		writeError(c, http.StatusUnauthorized, "missing Authorization header")
		return
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		writeError(c, http.StatusUnauthorized, "invalid Authorization header format")
		return
	}

	userId, err := h.services.ParseToken(parts[1])
	if err != nil {
		writeError(c, http.StatusUnauthorized, "invalid or expired token")
		return
	}

	c.Set("userId", userId)
	c.Next()
}

func (h *Handler) requestLogger(c *gin.Context) {
	start := time.Now()
	c.Next()
	h.log.Infow("http_request",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"status", c.Writer.Status(),
		"latency", time.Since(start),
		"client_ip", c.ClientIP(),
	)
}

func (h *Handler) originAllowed(origin string) bool {
	for _, o := range h.opts.AllowedOrigins {
		if o == "*" || o == origin {
			return true
		}
	}
	return false
}

// cors echoes allowed origins back so credentialed requests work with a "*" config.
func (h *Handler) cors(c *gin.Context) {
	origin := c.GetHeader("Origin")
	if origin == "" {
		c.Next()
		return
	}
	c.Header("Vary", "Origin")
	if !h.originAllowed(origin) {
		c.Next()
		return
	}

	c.Header("Access-Control-Allow-Origin", origin)
	c.Header("Access-Control-Allow-Credentials", "true")

	if c.Request.Method == http.MethodOptions && c.GetHeader("Access-Control-Request-Method") != "" {
		c.Header("Access-Control-Allow-Methods", corsAllowMethods)
		if reqHeaders := c.GetHeader("Access-Control-Request-Headers"); reqHeaders != "" {
			c.Header("Access-Control-Allow-Headers", reqHeaders)
		} else {
			c.Header("Access-Control-Allow-Headers", corsAllowHeaders)
		}
		c.Header("Access-Control-Max-Age", "600")
		c.AbortWithStatus(http.StatusNoContent)
		return
	}
	c.Next()
}
