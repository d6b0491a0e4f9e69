package cookie

import (
	"time"

	"github.com/gin-gonic/gin"
)

const AccessTokenCookieName = "access_token"

func SetAccessToken(c *gin.Context, accessToken string, expiry time.Duration) {
	c.SetCookie(
		AccessTokenCookieName,
		accessToken,
		int(expiry.Seconds()),
		"/",
		"",
		false,
		true, // HttpOnly
	)
}

func ClearAccessToken(c *gin.Context) {
	c.SetCookie(
		AccessTokenCookieName,
		"",
		-1,
		"/",
		"",
		false,
		true,
	)
}

func GetAccessToken(c *gin.Context) string {
	token, _ := c.Cookie(AccessTokenCookieName)
	return token
}
