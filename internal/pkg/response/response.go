// Package response writes the JSON envelope shared by every handler:
// {"success": true, "data": ...} on success,
// {"success": false, "error": {"code", "message", "details"?}} on failure.
package response

import "github.com/gin-gonic/gin"

func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{
		"success": true,
		"data":    data,
	})
}

func Error(c *gin.Context, status int, code string, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"error":   errorBody(code, message, nil),
	})
}

// ErrorWithDetails carries a machine-readable details payload, e.g. the
// field -> rule map from request validation.
func ErrorWithDetails(c *gin.Context, status int, code string, message string, details any) {
	c.JSON(status, gin.H{
		"success": false,
		"error":   errorBody(code, message, details),
	})
}

func errorBody(code string, message string, details any) gin.H {
	body := gin.H{
		"code":    code,
		"message": message,
	}
	if details != nil {
		body["details"] = details
	}
	return body
}
