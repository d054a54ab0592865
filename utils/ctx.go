package utils

import "github.com/gin-gonic/gin"

// CurrentUserID reads the authenticated user id set by the auth middleware.
// Cart and order handlers must use this, never an id supplied by the caller.
func CurrentUserID(c *gin.Context) uint {
	v, _ := c.Get("userId")
	if id, ok := v.(uint); ok {
		return id
	}
	return 0
}

// IsAdmin reports whether the authenticated user carries the admin flag.
func IsAdmin(c *gin.Context) bool {
	if v, ok := c.Get("isAdmin"); ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return false
}
