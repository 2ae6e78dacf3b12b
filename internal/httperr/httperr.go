package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

// The three 401 variants the API distinguishes: missing credentials,
// credentials that do not check out, and a valid identity lacking rights.

func NotAuthenticated(c *gin.Context) {
	Unauthorized(c, "not_authenticated", "Not authenticated.")
}

func CouldNotValidateUser(c *gin.Context) {
	Unauthorized(c, "could_not_validate_user", "Could not validate user.")
}

func AuthenticationFailed(c *gin.Context) {
	Unauthorized(c, "authentication_failed", "Authentication Failed")
}
