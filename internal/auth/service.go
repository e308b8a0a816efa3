package auth

import (
	"fmt"
	"time"

	"court-scheduling-backend/internal/database/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const tokenIssuer = "court-scheduling-backend"

// Principal is the authenticated caller of a scheduling operation
type Principal struct {
	UserID uuid.UUID       `json:"user_id"`
	Role   models.UserRole `json:"role"`
	Name   string          `json:"name"`
}

// HasRole reports whether the principal holds one of roles
func (p *Principal) HasRole(roles ...models.UserRole) bool {
	if p == nil {
		return false
	}
	for _, r := range roles {
		if p.Role == r {
			return true
		}
	}
	return false
}

// AuthService issues and validates bearer tokens
type AuthService struct {
	secret []byte
	expiry time.Duration
}

// AuthClaims represents JWT token claims
type AuthClaims struct {
	UserID               string `json:"user_id" example:"6f1c2a8e-2b7d-4a8e-9d4c-2f8e1b3a7c55"`
	Role                 string `json:"role" example:"court_scheduler"`
	Name                 string `json:"name" example:"Registrar Perera"`
	jwt.RegisteredClaims `swaggerignore:"true"`
}

// AuthValidateResponse represents the response from the token validation endpoint
type AuthValidateResponse struct {
	Valid  bool        `json:"valid" example:"true"`
	Claims *AuthClaims `json:"claims"`
}

// NewAuthService creates a new authentication service
func NewAuthService(secret string, expiry time.Duration) (*AuthService, error) {
	if secret == "" {
		return nil, fmt.Errorf("JWT secret is required")
	}
	if expiry <= 0 {
		expiry = time.Hour
	}
	return &AuthService{secret: []byte(secret), expiry: expiry}, nil
}

// GenerateJWT creates a JWT token for the principal
func (s *AuthService) GenerateJWT(p Principal) (string, error) {
	now := time.Now()
	claims := &AuthClaims{
		UserID: p.UserID.String(),
		Role:   string(p.Role),
		Name:   p.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    tokenIssuer,
			Subject:   p.UserID.String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateJWT validates and parses a JWT token
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithIssuer(tokenIssuer))

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*AuthClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}

// Principal converts validated claims into a Principal
func (c *AuthClaims) Principal() (*Principal, error) {
	id, err := uuid.Parse(c.UserID)
	if err != nil {
		return nil, fmt.Errorf("invalid user id in token: %w", err)
	}
	role := models.UserRole(c.Role)
	switch role {
	case models.UserRoleClient, models.UserRoleLawyer, models.UserRoleCourtScheduler:
	default:
		return nil, fmt.Errorf("unknown role %q in token", c.Role)
	}
	return &Principal{UserID: id, Role: role, Name: c.Name}, nil
}
