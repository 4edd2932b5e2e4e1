package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const userRoleKey = "userRole"

// Auth verifies either a bearer JWT minted by the marketplace auth service
// (HS256, shared secret) or a service-to-service X-API-Key checked against a
// bcrypt hash. With neither secret configured the API is open, matching local
// development.
func Auth(jwtSecret, apiKeyHash string) gin.HandlerFunc {
	if jwtSecret == "" && apiKeyHash == "" {
		return func(c *gin.Context) { c.Next() }
	}

	return func(c *gin.Context) {
		if apiKeyHash != "" {
			if key := c.GetHeader("X-API-Key"); key != "" {
				if bcrypt.CompareHashAndPassword([]byte(apiKeyHash), []byte(key)) == nil {
					c.Set(userRoleKey, "service")
					c.Next()
					return
				}
			}
		}

		if jwtSecret != "" {
			if role, err := verifyBearer(c.GetHeader("Authorization"), jwtSecret); err == nil {
				c.Set(userRoleKey, role)
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error":      "unauthorized",
			"request_id": GetRequestID(c),
		})
	}
}

func verifyBearer(header, secret string) (string, error) {
	raw := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	if raw == "" || raw == header {
		return "", fmt.Errorf("missing bearer token")
	}

	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", err
	}
	if !token.Valid {
		return "", fmt.Errorf("invalid token")
	}

	role, _ := claims["role"].(string)
	return role, nil
}

// GetUserRole returns the role set by Auth, empty when unauthenticated.
func GetUserRole(c *gin.Context) string {
	return c.GetString(userRoleKey)
}
