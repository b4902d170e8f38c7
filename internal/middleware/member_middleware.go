package middleware

import "github.com/gin-gonic/gin"

// MockMemberID is the fixed account every member endpoint is served as. The
// login token is a placeholder and is never inspected, so identity resolution
// is pinned here until real token verification exists.
const MockMemberID uint = 1

func CurrentMember() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", MockMemberID)
		c.Next()
	}
}
