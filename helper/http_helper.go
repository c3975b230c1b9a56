package helper

import (
	"net/http"
	"strconv"

	"backoffice-api/action"
	"backoffice-api/apperr"
	"backoffice-api/models"

	"github.com/gin-gonic/gin"
)

// Respond writes an action result with the HTTP status implied by its kind.
// The body is always the wrapper envelope: data, serverError or
// validationErrors.
func Respond(c *gin.Context, res action.Result) {
	c.JSON(statusFor(res), res)
}

func statusFor(res action.Result) int {
	if res.OK() {
		return http.StatusOK
	}
	switch res.Kind() {
	case apperr.KindAuthRequired:
		return http.StatusUnauthorized
	case apperr.KindForbidden:
		return http.StatusForbidden
	case apperr.KindValidation:
		return http.StatusBadRequest
	case apperr.KindConflict:
		return http.StatusConflict
	case apperr.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// ActorFrom returns the actor resolved by the auth middleware, or nil for an
// anonymous request.
func ActorFrom(c *gin.Context) *models.Actor {
	v, exists := c.Get("actor")
	if !exists {
		return nil
	}
	actor, ok := v.(*models.Actor)
	if !ok {
		return nil
	}
	return actor
}

// ParseIDParam reads a numeric path parameter. On failure it writes the
// error envelope and reports false; the caller just returns.
func ParseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"serverError": "invalid " + name + " parameter"})
		return 0, false
	}
	return uint(id), true
}

// AbortUnauthorized ends the request from middleware with the same envelope
// shape the action wrapper produces.
func AbortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"serverError": message})
}
