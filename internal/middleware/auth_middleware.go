package middleware

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AuthMiddleware verifies the HS256 bearer token (or access_token cookie)
// and copies its identity claims into the gin context. Tokens are issued by
// the HR platform's auth service; this service only verifies them.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !found {
			tokenString = ""
		}

		if tokenString == "" {
			if cookie, err := c.Cookie("access_token"); err == nil {
				tokenString = cookie
			}
		}

		if tokenString == "" {
			abort(c, ErrTokenNotFound, nil)
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method")
			}
			return []byte(os.Getenv("JWT_SECRET")), nil
		})

		if err != nil || !token.Valid {
			if errors.Is(err, jwt.ErrTokenExpired) {
				abort(c, ErrTokenExpired, nil)
				return
			}
			abort(c, ErrInvalidToken, nil)
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			abort(c, ErrInvalidToken, nil)
			return
		}

		identity := make(map[string]string, 3)
		for _, key := range []string{"user_id", "company_id", "employee_id"} {
			v, ok := claims[key].(string)
			if !ok || v == "" {
				abort(c, ErrInvalidToken, []string{key + " not found in token"})
				return
			}
			identity[key] = v
		}

		role, _ := claims["role"].(string)

		c.Set("user_id", identity["user_id"])
		c.Set("employee_id", identity["employee_id"])
		c.Set("company_id", identity["company_id"])
		c.Set("role", role)

		c.Next()
	}
}
