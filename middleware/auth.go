package middleware

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/auth0/go-jwt-middleware/v2"
	"github.com/auth0/go-jwt-middleware/v2/validator"
	"github.com/gin-gonic/gin"

	"github.com/salem2025/sport-store-api/config"
	"github.com/salem2025/sport-store-api/models"
)

// CustomClaims carries the application claims embedded in issued tokens
type CustomClaims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

// Validate satisfies the validator.CustomClaims interface. The role value
// is checked per-route by RequireRole, not here.
func (c CustomClaims) Validate(ctx context.Context) error {
	return nil
}

// HasRole checks whether the claims grant the expected role
func (c CustomClaims) HasRole(expected string) bool {
	if expected == models.RoleAdmin {
		return models.IsAdminRole(c.Role)
	}
	return c.Role == expected
}

// EnsureValidToken is a middleware that checks the validity of our JWT.
// Tokens are HS256-signed with the configured shared secret.
func EnsureValidToken(cfg *config.Config) gin.HandlerFunc {
	keyFunc := func(ctx context.Context) (interface{}, error) {
		return []byte(cfg.JWTSecret), nil
	}

	jwtValidator, err := validator.New(
		keyFunc,
		validator.HS256,
		cfg.JWTIssuer,
		[]string{cfg.JWTAudience},
		validator.WithCustomClaims(
			func() validator.CustomClaims {
				return &CustomClaims{}
			},
		),
		validator.WithAllowedClockSkew(time.Minute),
	)
	if err != nil {
		log.Fatalf("Failed to set up the jwt validator: %v", err)
	}

	errorHandler := func(w http.ResponseWriter, r *http.Request, err error) {
		log.Printf("Encountered error while validating JWT: %v", err)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		if _, writeErr := w.Write([]byte(`{"success":false,"error":{"code":"INVALID_TOKEN","message":"Failed to validate JWT."}}`)); writeErr != nil {
			log.Printf("Failed to write error response: %v", writeErr)
		}
	}

	middleware := jwtmiddleware.New(
		jwtValidator.ValidateToken,
		jwtmiddleware.WithErrorHandler(errorHandler),
	)

	return func(c *gin.Context) {
		encounteredError := true
		var handler http.HandlerFunc = func(w http.ResponseWriter, r *http.Request) {
			encounteredError = false

			// Store the validated claims in Gin context
			token := r.Context().Value(jwtmiddleware.ContextKey{}).(*validator.ValidatedClaims)

			// The subject claim carries the numeric user id
			c.Set("user_id", token.RegisteredClaims.Subject)
			c.Set("validated_claims", token)

			c.Next()
		}

		// Use the JWT middleware to check the token
		middleware.CheckJWT(handler).ServeHTTP(c.Writer, c.Request)

		if encounteredError {
			// The error handler already wrote the response
			c.Abort()
		}
	}
}

// GetUserID extracts the authenticated user's id from the Gin context
func GetUserID(c *gin.Context) (uint, error) {
	subject, exists := c.Get("user_id")
	if !exists {
		return 0, &AuthError{Code: "MISSING_USER_ID", Message: "User ID not found in context"}
	}

	subjectStr, ok := subject.(string)
	if !ok {
		return 0, &AuthError{Code: "INVALID_USER_ID", Message: "User ID is not a string"}
	}

	id, err := strconv.ParseUint(subjectStr, 10, 64)
	if err != nil {
		return 0, &AuthError{Code: "INVALID_USER_ID", Message: "User ID is not numeric"}
	}

	return uint(id), nil
}

// GetClaims extracts the validated JWT claims from the Gin context
func GetClaims(c *gin.Context) (*validator.ValidatedClaims, error) {
	claims, exists := c.Get("validated_claims")
	if !exists {
		return nil, &AuthError{Code: "MISSING_CLAIMS", Message: "Claims not found in context"}
	}

	validatedClaims, ok := claims.(*validator.ValidatedClaims)
	if !ok {
		return nil, &AuthError{Code: "INVALID_CLAIMS", Message: "Claims are not in the expected format"}
	}

	return validatedClaims, nil
}

// GetRole extracts the role claim from the validated token
func GetRole(c *gin.Context) (string, error) {
	claims, err := GetClaims(c)
	if err != nil {
		return "", err
	}

	customClaims, ok := claims.CustomClaims.(*CustomClaims)
	if !ok {
		return "", &AuthError{Code: "INVALID_CLAIMS", Message: "Custom claims are not in the expected format"}
	}

	return customClaims.Role, nil
}

// RequireRole is a middleware that checks if the token carries a role
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := GetClaims(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "MISSING_CLAIMS",
					"message": "Could not retrieve token claims",
				},
			})
			c.Abort()
			return
		}

		customClaims, ok := claims.CustomClaims.(*CustomClaims)
		if !ok || !customClaims.HasRole(role) {
			c.JSON(http.StatusForbidden, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "FORBIDDEN",
					"message": "Insufficient permissions to access this resource",
				},
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// AuthError represents an authentication error
type AuthError struct {
	Code    string
	Message string
}

func (e *AuthError) Error() string {
	return e.Message
}
