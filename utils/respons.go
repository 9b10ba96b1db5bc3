package utils

import "github.com/gin-gonic/gin"

// RespondJSON writes the standard envelope: {"success": true, "message": ...}
// plus any extra top-level fields the endpoint returns (orders, stats, ...).
func RespondJSON(c *gin.Context, code int, message string, extra gin.H) {
	body := gin.H{
		"success": code >= 200 && code < 300,
		"message": message,
	}
	for k, v := range extra {
		body[k] = v
	}
	c.JSON(code, body)
}

func RespondError(c *gin.Context, code int, err error) {
	c.JSON(code, gin.H{
		"success": false,
		"message": err.Error(),
	})
}
