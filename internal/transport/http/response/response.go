// Package response writes the API envelope
//
//	{"success": bool, "message": string?, ...payload}
//
// Logical failures are still HTTP 200; only success tells them apart.
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func OK(c *gin.Context, message string, payload gin.H) {
	body := gin.H{"success": true}
	if message != "" {
		body["message"] = message
	}
	for k, v := range payload {
		body[k] = v
	}
	c.JSON(http.StatusOK, body)
}

func Fail(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{
		"success": false,
		"message": message,
	})
}

// Status writes the envelope with an explicit HTTP status, for probes that
// must be readable by load balancers.
func Status(c *gin.Context, status int, success bool, payload gin.H) {
	body := gin.H{"success": success}
	for k, v := range payload {
		body[k] = v
	}
	c.JSON(status, body)
}
