package auth

import "github.com/gin-gonic/gin"

func fromContext(c *gin.Context, key string) string {
	if v, ok := c.Get(key); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// GetUserID returns the authenticated account's ID, or an empty string for
// unauthenticated requests.
func GetUserID(c *gin.Context) string {
	return fromContext(c, "userID")
}

// GetUserEmail returns the authenticated account's email, or an empty string.
func GetUserEmail(c *gin.Context) string {
	return fromContext(c, "userEmail")
}

// GetUserPhone returns the phone number claim, or an empty string when the
// account registered without one.
func GetUserPhone(c *gin.Context) string {
	return fromContext(c, "userPhone")
}
