package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/iamvkosarev/replyme/internal/model"
)

const (
	bearerPrefix   = "Bearer"
	deviceIDHeader = "X-Device-ID"
	ownerKey       = "owner"
	userIDKey      = "user_id"
)

// deviceNamespace derives stable owner IDs from client-chosen device IDs.
var deviceNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("replyme/device"))

// Claims are the access token claims of the hosted auth service. The user ID
// is the subject.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// OwnerAuth resolves the request owner from a bearer access token or, failing
// that, from the X-Device-ID header. A present but invalid token is rejected
// rather than downgraded to the device.
func OwnerAuth(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString != "" {
			userID, err := parseUserID(tokenString, jwtSecret)
			if err != nil {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized", "message": "Invalid or expired token"})
				c.Abort()
				return
			}
			c.Set(ownerKey, model.Owner{ID: userID})
			c.Set(userIDKey, userID.String())
			c.Next()
			return
		}

		deviceID := strings.TrimSpace(c.GetHeader(deviceIDHeader))
		if deviceID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":   "unauthorized",
				"message": "Authorization token or X-Device-ID header required",
			})
			c.Abort()
			return
		}
		c.Set(ownerKey, model.Owner{ID: DeviceOwnerID(deviceID), Anonymous: true})
		c.Next()
	}
}

// UserRequired aborts requests that are not backed by a signed-in user.
// It must run after OwnerAuth.
func UserRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		owner, ok := GetOwner(c)
		if !ok || owner.Anonymous {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized", "message": "Sign in required"})
			c.Abort()
			return
		}
		c.Next()
	}
}

func GetOwner(c *gin.Context) (model.Owner, bool) {
	value, exists := c.Get(ownerKey)
	if !exists {
		return model.Owner{}, false
	}
	owner, ok := value.(model.Owner)
	return owner, ok
}

func DeviceOwnerID(deviceID string) uuid.UUID {
	return uuid.NewSHA1(deviceNamespace, []byte(deviceID))
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != bearerPrefix {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func parseUserID(tokenString, jwtSecret string) (uuid.UUID, error) {
	if jwtSecret == "" {
		return uuid.Nil, fmt.Errorf("jwt secret is not configured")
	}
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(jwtSecret), nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	if !token.Valid {
		return uuid.Nil, fmt.Errorf("invalid token")
	}
	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to parse subject %q: %w", claims.Subject, err)
	}
	return userID, nil
}
