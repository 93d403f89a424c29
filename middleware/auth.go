package middleware

import (
	"net/http"
	"os"
	"strings"
	"sufipulse-api/config"
	"sufipulse-api/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const authContextKey = "authContext"

type Claims struct {
	UserID int    `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// AuthContext is the single authenticated-identity value controllers read.
// It replaces ad-hoc lookups of user id / role scattered per handler.
type AuthContext struct {
	UserID int
	Email  string
	Role   string
}

func (a AuthContext) IsAdmin() bool {
	return a.Role == models.RoleAdmin || a.Role == models.RoleSubAdmin
}

// CurrentAuth returns the AuthContext set by AuthMiddleware.
func CurrentAuth(c *gin.Context) (AuthContext, bool) {
	value, exists := c.Get(authContextKey)
	if !exists {
		return AuthContext{}, false
	}
	auth, ok := value.(AuthContext)
	return auth, ok
}

// AuthMiddleware validates the JWT and stores an AuthContext in the request context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
			return []byte(os.Getenv("JWT_SECRET")), nil
		})

		if err != nil || !token.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		claims, ok := token.Claims.(*Claims)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
			c.Abort()
			return
		}

		// Check if user still exists
		var user models.User
		if err := config.DB.Where("id = ?", claims.UserID).First(&user).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
			c.Abort()
			return
		}

		c.Set(authContextKey, AuthContext{
			UserID: user.ID,
			Email:  user.Email,
			Role:   user.Role,
		})

		c.Next()
	}
}

// RequireRole checks if the authenticated user has one of the given roles.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth, exists := CurrentAuth(c)
		if !exists {
			c.JSON(http.StatusForbidden, gin.H{"error": "Role not found"})
			c.Abort()
			return
		}

		allowed := false
		for _, role := range roles {
			if auth.Role == role {
				allowed = true
				break
			}
		}

		if !allowed {
			c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
			c.Abort()
			return
		}

		c.Next()
	}
}
