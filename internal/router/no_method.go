package router

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"ourstory/pkg/response"
)

// NoMethod answers requests whose path is routed but whose verb is not.
// It mirrors the route table the modules register so the Allow header
// stays accurate; every other routed path is read-only.
func NoMethod() gin.HandlerFunc {
	return func(c *gin.Context) {
		switch path := c.Request.URL.Path; {
		case path == "/api/profiles":
			response.MethodNotAllowed(c, http.MethodGet, http.MethodPost, http.MethodDelete)
		case strings.HasPrefix(path, "/api/diary/"):
			response.MethodNotAllowed(c, http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete)
		default:
			response.MethodNotAllowed(c, http.MethodGet)
		}
	}
}
