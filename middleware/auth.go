package middleware

import (
	"net/http"
	"strings"
	"time"

	"sideb/config"
	"sideb/pkg/context"
	"sideb/pkg/jwt"
	"sideb/pkg/response"

	"github.com/gin-gonic/gin"
)

func Auth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Abort(c, http.StatusUnauthorized, "missing Authorization header")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Abort(c, http.StatusUnauthorized, "malformed Authorization header")
			return
		}

		claims, err := jwt.ParseToken(secret, "access", parts[1])
		if err != nil {
			response.Abort(c, http.StatusUnauthorized, err.Error())
			return
		}

		c.Set(context.CtxUserID, claims.UserID)
		c.Set(context.CtxEmail, claims.Email)

		c.Next()
	}
}

// AuthWithRotation behaves like Auth and additionally reissues the token in
// the X-New-Token response header once it enters the rotation window, so the
// admin editor stays signed in across a long writing session.
func AuthWithRotation(cfg *config.Jwt) gin.HandlerFunc {
	secret := []byte(cfg.Secret)
	buffer := time.Duration(cfg.BufferTime) * time.Second

	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Abort(c, http.StatusUnauthorized, "missing Authorization header")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Abort(c, http.StatusUnauthorized, "malformed Authorization header")
			return
		}

		claims, err := jwt.ParseToken(secret, "access", parts[1])
		if err != nil {
			response.Abort(c, http.StatusUnauthorized, err.Error())
			return
		}

		if buffer > 0 && jwt.ShouldRotate(claims, buffer) {
			refreshIn := cfg.RefreshIn
			if refreshIn <= 0 {
				refreshIn = cfg.ExpiresIn
			}
			token, err := jwt.GenerateToken(secret, claims.UserID, claims.Email, "access",
				time.Duration(refreshIn)*time.Second)
			if err == nil {
				c.Header("X-New-Token", token)
			}
		}

		c.Set(context.CtxUserID, claims.UserID)
		c.Set(context.CtxEmail, claims.Email)

		c.Next()
	}
}
