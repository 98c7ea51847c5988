package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	customerIDKey = "customerId"
	emailKey      = "email"
)

type Claims struct {
	CustomerID string `json:"customerId"`
	Email      string `json:"email"`
	jwt.RegisteredClaims
}

// AuthMiddleware accepts HS256 bearer tokens signed with secret and stores the
// customer id and email on the gin context.
func AuthMiddleware(secret []byte) gin.HandlerFunc {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			RespondWithError(c, http.StatusUnauthorized, "Authorization header required")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			RespondWithError(c, http.StatusUnauthorized, "Invalid authorization header format")
			c.Abort()
			return
		}

		claims := &Claims{}
		token, err := parser.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (any, error) {
			return secret, nil
		})
		if err != nil || !token.Valid {
			RespondWithError(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		if _, err := uuid.Parse(claims.CustomerID); err != nil {
			RespondWithError(c, http.StatusUnauthorized, "Token is missing a valid customer id")
			c.Abort()
			return
		}

		c.Set(customerIDKey, claims.CustomerID)
		c.Set(emailKey, claims.Email)
		c.Next()
	}
}

// GetCustomerID returns the customer authenticated by AuthMiddleware.
func GetCustomerID(c *gin.Context) (uuid.UUID, bool) {
	raw := c.GetString(customerIDKey)
	if raw == "" {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
