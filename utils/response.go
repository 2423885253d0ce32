package utils

import "github.com/gin-gonic/gin"

func JSONSuccess(c *gin.Context, code int, data interface{}) {
	c.JSON(code, gin.H{"success": true, "data": data})
}

func JSONError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"success": false, "error": message})
}

// JSONErrorDetail attaches structured context to an error response, e.g. the
// conflicting date range on a double-booking attempt.
func JSONErrorDetail(c *gin.Context, code int, message string, details interface{}) {
	c.JSON(code, gin.H{"success": false, "error": message, "details": details})
}
