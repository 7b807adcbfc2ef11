package utils

import (
	"lemonapi/services"

	"github.com/gin-gonic/gin"
)

const PrincipalKey = "principal"

// CurrentPrincipal returns the principal stowed by the auth middleware.
// The zero value means the request was not authenticated.
func CurrentPrincipal(c *gin.Context) services.Principal {
	if v, ok := c.Get(PrincipalKey); ok {
		if p, ok := v.(services.Principal); ok {
			return p
		}
	}
	return services.Principal{}
}
