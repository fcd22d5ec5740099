package response

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"sharegeb/pkg/apperror"
)

// Fail writes the structured failure payload used by the JSON endpoints.
func Fail(c *gin.Context, err error) {
	code := apperror.MapErrorToStatus(err)

	// Log internal errors
	if code == http.StatusInternalServerError {
		log.Printf("[Internal Error]: %v", err)
	}

	c.JSON(code, gin.H{"success": false, "message": err.Error()})
}

// OK writes a success payload, merging any extra fields.
func OK(c *gin.Context, extra gin.H) {
	body := gin.H{"success": true}
	for k, v := range extra {
		body[k] = v
	}
	c.JSON(http.StatusOK, body)
}
