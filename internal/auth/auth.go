package auth

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"

	"gitlab.com/olena.kushnir/contacts-api/internal/logging"
	"gitlab.com/olena.kushnir/contacts-api/internal/metrics"
	"gitlab.com/olena.kushnir/contacts-api/internal/model"
)

// identityKey is the gin context key under which the resolved caller
// identity is stored.
const identityKey = "identity"

// Claims are the JWT claims carried by the bearer token. Token issuance
// (signup, login, refresh) happens in the external auth service; this
// module only validates tokens and, for tests and tooling, generates them.
type Claims struct {
	UserID int64  `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Identity is the authenticated principal resolved for a request.
type Identity struct {
	UserID int64
	Email  string
	Role   string
}

// GenerateToken creates a signed HS256 token for the given user.
func GenerateToken(signingKey string, expiration time.Duration, user model.User) (string, error) {
	claims := Claims{
		UserID: user.Id,
		Email:  user.Email,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(signingKey))
}

// ValidateToken parses and validates a signed token string.
func ValidateToken(signingKey, tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(
		tokenString,
		&Claims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(signingKey), nil
		},
	)
	if err != nil {
		return nil, err
	}
	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, errors.New("invalid token")
}

// Middleware validates the bearer token and stores the caller identity in
// the gin context. Requests without a valid token are rejected with 401.
func Middleware(signingKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		metrics.AuthAttemptsCounter.Inc()

		tokenString := c.GetHeader("Authorization")
		if tokenString == "" {
			metrics.AuthErrorsCounter.Inc()
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "authentication required"})
			return
		}
		if len(tokenString) > 7 && strings.EqualFold(tokenString[0:7], "bearer ") {
			tokenString = tokenString[7:]
		}

		claims, err := ValidateToken(signingKey, tokenString)
		if err != nil {
			logging.FromGin(c).Warn("invalid token", zap.Error(err))
			metrics.AuthErrorsCounter.Inc()
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "invalid token"})
			return
		}

		c.Set(identityKey, Identity{
			UserID: claims.UserID,
			Email:  claims.Email,
			Role:   claims.Role,
		})
		c.Set(loggerContextKey, logging.FromGin(c).With(
			zap.Int64("user_id", claims.UserID),
			zap.String("email", claims.Email),
		))
		c.Next()
	}
}

// loggerContextKey mirrors the logging package's context key so the
// per-request logger picks up the user fields.
const loggerContextKey = "logger"

// RequireAdmin gates endpoints that bypass the ownership filter. It must
// run after Middleware.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, ok := CurrentUser(c)
		if !ok || caller.Role != model.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "admin role required"})
			return
		}
		c.Next()
	}
}

// CurrentUser returns the identity stored by Middleware.
func CurrentUser(c *gin.Context) (Identity, bool) {
	value, ok := c.Get(identityKey)
	if !ok {
		return Identity{}, false
	}
	identity, ok := value.(Identity)
	return identity, ok
}
