package response

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// The API speaks a deliberately small wire format: success bodies carry
// the payload the route promises ({ok:true}, {profiles:[...]}, ...) and
// every failure is {"error": "<message>"} with a matching status code.

// OK responds 200 {"ok": true}.
func OK(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// CreatedID responds 200 {"ok": true, "id": id} for create operations
// that hand back a generated identifier.
func CreatedID(c *gin.Context, id string) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "id": id})
}

// Data responds 200 with an arbitrary payload object.
func Data(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

// Error responds with {"error": message} and the given status.
func Error(c *gin.Context, status int, message string) {
	if status == 0 {
		status = http.StatusBadRequest
	}
	c.JSON(status, gin.H{"error": message})
}

// MethodNotAllowed responds 405 with an Allow header listing the methods
// the route supports.
func MethodNotAllowed(c *gin.Context, allowed ...string) {
	c.Header("Allow", strings.Join(allowed, ", "))
	c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
}
